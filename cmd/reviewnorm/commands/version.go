package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/reviewnorm/internal/output"
	"github.com/jmylchreest/reviewnorm/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		if format == string(output.FormatText) {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Full())
			return err
		}

		w, _, closeOut, err := openOutput(cmd)
		if err != nil {
			return err
		}
		if err := w.Write(version.Get()); err != nil {
			_ = closeOut()
			return err
		}
		return closeOut()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.Version = version.String()
}
