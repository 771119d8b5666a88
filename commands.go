package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ethMintBot/internal/config"
	"ethMintBot/internal/runner"
	"ethMintBot/internal/wallet"
)

func addressCommand(rc *RootCommand) *cobra.Command {
	return &cobra.Command{
		Use:          "address",
		Short:        "Print the address of every key in the key file",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(rc.viper, logger)
			if err != nil {
				return err
			}

			keys, err := wallet.LoadKeys(cfg.KeyFile)
			if err != nil {
				return err
			}

			p := runner.NewPrinter(cmd.OutOrStdout())
			for i, key := range keys {
				w, err := wallet.FromHex(key)
				if err != nil {
					p.Failed(i+1, err)
					continue
				}
				p.Addresses(i+1, w.Address())
			}
			return nil
		},
	}
}

func configCommand(rc *RootCommand) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	initCmd := &cobra.Command{
		Use:          "init",
		Short:        "Write a config file template",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := rc.cfgFile
			if path == "" {
				path = DEFAULT_CONFIG_FILE
			}

			path, err := config.InitDefaultConfig(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config initialized: %s\n", path)
			return nil
		},
	}

	configCmd.AddCommand(initCmd)
	return configCmd
}
