package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vibecode/reloadnotice/src/notice"
)

var rootCmd = &cobra.Command{
	Use:   "reloadnotice",
	Short: "Print the auto-reload troubleshooting notice",
	Long:  "reloadnotice prints the Vibecode App auto-reload notice and exits. Arguments are ignored.",
	// Every argument, flag-shaped or not, is accepted and ignored.
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeNotice(cmd.OutOrStdout())
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// writeNotice renders the notice in memory and emits it with a single write.
func writeNotice(w io.Writer) error {
	if _, err := io.WriteString(w, notice.Text()); err != nil {
		return fmt.Errorf("writing notice: %w", err)
	}
	return nil
}

// Execute runs the root command against the process arguments.
func Execute() error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}
