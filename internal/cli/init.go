package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tokenscope/tokenscope/internal/config"
)

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Creates ~/.config/tokenscope/config.yaml with the default settings
(fixtures directory, snapshot binary discovery, timeouts, tokenizer
strategy, fetch cache TTL) so they can be edited in one place.

Compare runs work without this file; every setting has a built-in
default.`,
		RunE: runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	paths := config.NewPaths()

	if config.Exists() {
		fmt.Println("Tokenscope is already configured.")
		fmt.Printf("Config file: %s\n\n", paths.ConfigFile)

		if !promptYesNo("Do you want to overwrite it with defaults?") {
			return nil
		}
		fmt.Println()
	}

	if err := config.Save(config.Default()); err != nil {
		return err
	}

	printSuccess("wrote %s", paths.ConfigFile)
	printInfo("fixtures_dir", config.DefaultFixturesDir)
	printInfo("default_url", config.DefaultURL)
	printInfo("tokenizer.strategy", config.DefaultStrategy)
	fmt.Println()
	fmt.Println("Edit the file to point " + info("snapshot.binary") + " at your cortex-browser build.")
	return nil
}

// promptYesNo asks a yes/no question on stdin.
func promptYesNo(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
