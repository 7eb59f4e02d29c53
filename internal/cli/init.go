package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/relog-dev/relog/internal/config"
	"github.com/relog-dev/relog/internal/errors"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter .relog.toml",
	Long: `Write a starter .relog.toml into the current directory.

The generated file documents every setting with its default commented
out, plus example [sections] and [components] tables. Existing config
files are left alone unless you confirm or pass --force.

Examples:
  relog init              # Create .relog.toml (prompts if a config exists)
  relog init --force      # Overwrite without prompting`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolP("force", "f", false, "Overwrite an existing config without prompting")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	out := cmd.OutOrStdout()

	target := config.DefaultConfigPath(".")
	existing := config.DiscoverConfigFile(".")

	if existing != "" && !force {
		fmt.Fprintf(out, "Config already exists at %s\n", existing)
		if !promptYesNo(cmd, "Write "+target+" anyway?") {
			fmt.Fprintf(out, "✓ Config: unchanged\n")
			return nil
		}
	}

	if err := os.WriteFile(target, []byte(config.GetDefaultConfigTemplate()), 0644); err != nil {
		return errors.OutfileNotWritable(target, err)
	}

	switch {
	case existing == target:
		fmt.Fprintf(out, "✓ Config: overwritten at %s\n", target)
	case existing != "":
		// TOML wins discovery, so the old file stops taking effect.
		fmt.Fprintf(out, "✓ Config: created at %s (shadows %s)\n", target, existing)
	default:
		fmt.Fprintf(out, "✓ Config: created at %s\n", target)
	}

	fmt.Fprintf(out, "\nEdit the [sections] table to customize changelog headings.\n")
	return nil
}

func promptYesNo(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.OutOrStdout(), "%s [y/N]: ", question)

	reader := bufio.NewReader(cmd.InOrStdin())
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(strings.ToLower(answer))

	return answer == "y" || answer == "yes"
}
