package commands

import (
	"github.com/spf13/cobra"

	"github.com/asn2qif/asn2qif/internal/buildinfo"
)

// NewRootCommand creates the asn2qif command. It takes the path of one ASN
// Bank CSV export and writes the QIF file beside it.
func NewRootCommand() *cobra.Command {
	var dialectPath string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "asn2qif <csv-file>",
		Short:   "Convert an ASN Bank CSV export to QIF",
		Long:    "Convert an ASN Bank CSV export to a QIF bank file with the same name and a .qif extension.",
		Version: buildinfo.Banner(),
		Args:    cobra.ExactArgs(1),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, args[0], dialectPath, verbose)
		},
	}

	rootCmd.Flags().StringVar(&dialectPath, "dialect", "", "YAML file describing the CSV dialect")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every converted row")

	return rootCmd
}
