package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_Approximate(t *testing.T) {
	s, err := Select(PrefApproximate)
	require.NoError(t, err)

	_, ok := s.(*Approximate)
	assert.True(t, ok, "forced approximate preference should return the Approximate strategy")
	assert.Contains(t, s.Name(), "approximate")
}

func TestSelect_AutoAlwaysResolves(t *testing.T) {
	// Auto must produce a usable strategy whether or not the tiktoken
	// encoding data is available in this environment.
	s, err := Select(PrefAuto)
	require.NoError(t, err)
	require.NotNil(t, s)

	assert.NotEmpty(t, s.Name())
	assert.Equal(t, 0, s.Count(""))
	assert.Greater(t, s.Count("hello world"), 0)
}

func TestSelect_EmptyPrefMeansAuto(t *testing.T) {
	s, err := Select("")
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestSelect_UnknownPref(t *testing.T) {
	_, err := Select("bogus")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}
