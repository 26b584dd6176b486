package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vitwit/addrcheck"
)

func (a *app) newNetworksCmd() *cobra.Command {
	var oneLine bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List supported network identifiers",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			nets := addrcheck.SupportedNetworks()
			if oneLine {
				fmt.Fprintln(cmd.OutOrStdout(), strings.Join(nets, " "))
				return
			}
			for _, n := range nets {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
		},
	}

	cmd.Flags().BoolVar(&oneLine, "one-line", false, "print all identifiers on a single line")
	return cmd
}
