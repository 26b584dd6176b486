package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vitwit/addrcheck/logger"
	"github.com/vitwit/addrcheck/types"
	"github.com/vitwit/addrcheck/utils"
)

// app holds state shared by the subcommands once flags are parsed.
type app struct {
	configPath string
	logLevel   string
	strict     bool

	cfg *types.Config
	log logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:               "addrcheck",
		Short:             "Validate cryptocurrency addresses",
		Long:              "addrcheck validates addresses for Bitcoin, Ethereum, Solana, Cardano, Polkadot and other networks.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.load,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a JSON or YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&a.strict, "strict", false, "verify checksums for Polkadot, Tron, Cardano Byron and CashAddr")

	root.AddCommand(
		a.newValidateCmd(),
		a.newNetworksCmd(),
		a.newServeCmd(),
		newVersionCmd(),
	)
	return root
}

// load reads the config file and applies flag overrides.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg := types.DefaultConfig()
	if a.configPath != "" {
		loaded, err := utils.LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("strict") {
		cfg.Strict = a.strict
	}
	if err := utils.ValidateConfig(cfg); err != nil {
		return err
	}

	l, err := logger.NewZapLogger(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}

	a.cfg = cfg
	a.log = l
	return nil
}
