package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// encodingName is the fixed BPE encoding used for exact counts.
const encodingName = "cl100k_base"

// Exact counts tokens with the cl100k_base byte-pair encoding.
// Initialization loads the encoding vocabulary (which tiktoken may
// fetch on first use), so construction can fail; callers are expected
// to fall back to Approximate.
type Exact struct {
	enc *tiktoken.Tiktoken
}

// NewExact initializes the tiktoken encoder.
func NewExact() (*Exact, error) {
	enc, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("init %s encoding: %w", encodingName, err)
	}
	return &Exact{enc: enc}, nil
}

// Count returns the number of BPE symbols the text encodes to.
func (e *Exact) Count(text string) int {
	return len(e.enc.Encode(text, nil, nil))
}

// Name identifies the active encoding.
func (e *Exact) Name() string {
	return fmt.Sprintf("tiktoken (%s)", encodingName)
}
