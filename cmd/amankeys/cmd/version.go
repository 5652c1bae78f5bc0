package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/amankeys/pkg/version"
)

func newVersionCmd() *cobra.Command {
	var asJSON, short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print the amankeys version with the commit, build date and Go toolchain
it was built from. Values not stamped at build time are read from the
module data embedded by the Go toolchain.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asJSON && short {
				return fmt.Errorf("--json and --short cannot be combined")
			}
			return printVersion(cmd.OutOrStdout(), version.Get(), asJSON, short)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print build information as JSON")
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")

	return cmd
}

func printVersion(w io.Writer, info version.Info, asJSON, short bool) error {
	switch {
	case short:
		_, err := fmt.Fprintln(w, info.Version)
		return err
	case asJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	default:
		_, err := fmt.Fprintf(w, "amankeys %s\n  commit  %s\n  built   %s\n  go      %s %s/%s\n",
			info.Version, info.ShortCommit(), info.Date, info.GoVersion, info.OS, info.Arch)
		return err
	}
}
