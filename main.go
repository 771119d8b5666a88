package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"ethMintBot/internal/account"
	"ethMintBot/internal/bundle"
	"ethMintBot/internal/chain"
	"ethMintBot/internal/config"
	"ethMintBot/internal/logging"
	"ethMintBot/internal/minter"
	"ethMintBot/internal/runner"
	"ethMintBot/internal/wallet"
)

type RootCommand struct {
	baseCmd  *cobra.Command
	viper    *viper.Viper
	cfgFile  string
	logLevel string
	verbose  bool
}

var logger = logging.NewLogger("root")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	newRootCommand().Execute(ctx)
}

func newRootCommand() *RootCommand {
	rc := &RootCommand{viper: viper.New()}

	rc.baseCmd = &cobra.Command{
		Use:   APP_NAME,
		Short: "Send one mint transaction from every wallet of a key file",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := logging.SetLevel(rc.verbose, rc.logLevel); err != nil {
				return err
			}
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("failed to load .env: %w", err)
			}
			rc.setConfigFile()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return rc.runMint(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rc.baseCmd.PersistentFlags()
	flags.StringVarP(&rc.cfgFile, "config", "c", "", "Path to config file (default ./"+DEFAULT_CONFIG_FILE+")")
	flags.StringVarP(&rc.logLevel, "log-level", "l", "info", "Log level: trace|debug|info|warn|error|fatal|panic")
	flags.BoolVarP(&rc.verbose, "verbose", "v", false, "Verbose mode (print logs)")

	flags.String("rpc-endpoint", config.DefaultRPCEndpoint, "JSON-RPC endpoint")
	flags.String("key-file", config.DefaultKeyFile, "File with one private key per line")
	flags.String("contract", config.DefaultContract, "Address of the mint contract")
	flags.Int("workers", config.DefaultWorkers, "Number of wallets processed concurrently")
	flags.Duration("timeout", 0, "Deadline for a single wallet, 0 means none")
	flags.String("relay-endpoint", "", "Submit transactions as bundles through this relay")
	flags.Bool("relay-simulate", false, "Simulate every bundle before sending it")
	bindFlags(rc.viper, flags)

	rc.baseCmd.AddCommand(
		addressCommand(rc),
		configCommand(rc),
	)
	return rc
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func (rc *RootCommand) setConfigFile() {
	if rc.cfgFile != "" {
		rc.viper.SetConfigFile(rc.cfgFile)
		return
	}
	rc.viper.SetConfigName(DEFAULT_CONFIG_NAME)
	rc.viper.SetConfigType(DEFAULT_CONFIG_TYPE)
	rc.viper.AddConfigPath(".")
}

func (rc *RootCommand) runMint(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.Load(rc.viper, logger)
	if err != nil {
		return err
	}

	keys, err := wallet.LoadKeys(cfg.KeyFile)
	if err != nil {
		return err
	}
	logger.Info().Int("wallets", len(keys)).Msg("Keys loaded")

	client, err := chain.Connect(ctx, cfg.RPCEndpoint, logging.NewLogger("chain"))
	if err != nil {
		return err
	}
	defer client.Close()

	raw := chain.NewRawClient(cfg.RPCEndpoint, logging.NewLogger("raw_rpc"))

	var sender minter.Sender
	if cfg.RelayEndpoint != "" {
		sender, err = bundle.NewSender(
			cfg.RelayEndpoint, nil, raw, cfg.RelaySimulate, cfg.Timeout, logging.NewLogger("bundle"))
		if err != nil {
			return err
		}
	}

	m := minter.NewMinter(client, sender, minter.Config{
		Contract: cfg.Contract,
		Selector: cfg.Selector(),
		GasLimit: cfg.GasLimit,
		GasPrice: cfg.GasPriceWei(),
	}, logging.NewLogger("minter"))

	amount, err := cfg.MintAmountWei()
	if err != nil {
		return err
	}

	r := runner.NewRunner(
		account.NewInspector(client, logging.NewLogger("inspector")),
		m,
		raw,
		runner.Config{
			MintAmount: amount,
			Workers:    cfg.Workers,
			Timeout:    cfg.Timeout,
		},
		cmd.OutOrStdout(),
		logging.NewLogger("runner"),
	)

	_, err = r.Run(ctx, keys)
	return err
}

// Execute runs the root command and handles any errors
func (rc *RootCommand) Execute(ctx context.Context) {
	if err := rc.baseCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		os.Exit(1)
	}
}
