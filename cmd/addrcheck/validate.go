package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitwit/addrcheck"
	"github.com/vitwit/addrcheck/types"
	"github.com/vitwit/addrcheck/utils"
)

// errInvalidAddress makes the process exit non-zero without printing an
// error; the result itself has already been written.
var errInvalidAddress = errors.New("address is invalid")

func (a *app) newValidateCmd() *cobra.Command {
	var (
		asJSON  bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "validate <address> <network>",
		Short: "Validate an address for a network",
		Example: `  addrcheck validate 1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa BTC
  addrcheck validate --json 0x742d35cc6634c0532925a3b844bc454e4438f44e ETH`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := addrcheck.NewFromConfig(a.cfg, addrcheck.WithLogger(a.log))

			res, diagErr := v.Diagnose(args[0], args[1])
			if asJSON {
				out, err := utils.SerializeValidationResult(res)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
			} else {
				printResult(cmd, res)
			}

			if verbose && diagErr != nil {
				var addrErr *types.AddrError
				if errors.As(diagErr, &addrErr) {
					cmd.PrintErrf("reason: %s (%s)\n", addrErr.Code, addrErr.Message)
				} else {
					cmd.PrintErrf("reason: %v\n", diagErr)
				}
			}

			if !res.IsValid {
				return errInvalidAddress
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print why an address was rejected")
	return cmd
}

func printResult(cmd *cobra.Command, res types.ValidationResult) {
	if !res.IsValid {
		fmt.Fprintln(cmd.OutOrStdout(), "invalid")
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "valid\t%s\t%s\n", res.Network, res.NetworkName)
}
