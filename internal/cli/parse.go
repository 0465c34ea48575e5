// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/spf13/cobra"
)

func newParseCmd(a *app) *cobra.Command {
	var export bool

	cmd := &cobra.Command{
		Use:   "parse <value>...",
		Short: "Parse and normalize fraction literals",
		Long: `Parse reads each argument as a fraction literal and prints it in
canonical form. Accepted forms: "3", "-0.25", "1/5", ".2", "NaN", "-inf".

Example:
  ratcalc parse 6/8 0.125
  ratcalc parse 3/8 --export`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				v, err := a.factory().Parse(arg)
				if err != nil {
					return err
				}
				if export {
					err = v.Export(out)
				} else {
					err = a.printValue(out, v)
				}
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&export, "export", false, "print the fraction and its decimal approximation")

	return cmd
}
