package cli

import (
	"fmt"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/tokenscope/tokenscope/internal/config"
	"github.com/tokenscope/tokenscope/internal/source"
	"github.com/tokenscope/tokenscope/internal/tokenizer"
)

// NewCheckCmd creates the check command.
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify external collaborators before a compare run",
		Long: `Checks the pieces a compare run needs: the snapshot binary, curl for
raw HTML fetching (net/http is the fallback), the tokenizer mode, and
the fixtures directory. Informational only; nothing is modified.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck()
		},
	}
}

func runCheck() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if binary, err := source.FindBinary(cfg.Snapshot.Binary); err == nil {
		printSuccess("snapshot binary: %s", binary)
	} else {
		printWarning("snapshot binary not found")
		fmt.Println("  " + dim("Build cortex-browser (`make release`) or set snapshot.binary in config"))
	}

	if curl, err := exec.LookPath("curl"); err == nil {
		printSuccess("curl: %s", curl)
	} else {
		printWarning("curl not found, URL fetches will use net/http")
	}

	counter, err := tokenizer.Select(cfg.Tokenizer.Strategy)
	if err != nil {
		return err
	}
	printSuccess("tokenizer: %s", counter.Name())

	fixtures := source.DefaultInputs(cfg.FixturesDir, "")
	if len(fixtures) > 0 {
		printSuccess("fixtures: %d html file(s) in %s", len(fixtures), cfg.FixturesDir)
	} else {
		printWarning("no fixtures in %s", cfg.FixturesDir)
	}

	printInfo("config", config.NewPaths().ConfigFile)
	printInfo("fetch cache", config.NewPaths().CacheDir)

	return nil
}
