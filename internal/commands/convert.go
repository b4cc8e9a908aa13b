package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asn2qif/asn2qif/internal/config"
	"github.com/asn2qif/asn2qif/internal/convert"
	"github.com/asn2qif/asn2qif/internal/logger"
)

func runConvert(cmd *cobra.Command, input, dialectPath string, verbose bool) error {
	dialect := config.Default()
	if dialectPath != "" {
		d, err := config.Load(dialectPath)
		if err != nil {
			return err
		}
		dialect = d
	}

	sum, err := convert.File(input, convert.Options{
		Dialect: dialect,
		Logger:  logger.New(cmd.ErrOrStderr(), verbose),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d transactions to %s (net %s)\n",
		sum.Transactions, sum.Output, sum.Net.StringFixed(2))
	return nil
}
