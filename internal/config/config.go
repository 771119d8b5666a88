package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math/big"
	"os"
	"path/filepath"
	"reflect"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/params"
	"github.com/holiman/uint256"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const EnvPrefix = "MINTBOT"

// MaxDecimals is the largest scale for which 10^decimals still fits into uint256.
const MaxDecimals = 77

var (
	ErrInvalidConfig  = errors.New("invalid config")
	ErrAmountOverflow = errors.New("amount does not fit into uint256")
)

type Config struct {
	RPCEndpoint string `mapstructure:"rpc_endpoint"`
	KeyFile     string `mapstructure:"key_file"`

	Contract     common.Address  `mapstructure:"contract"`
	MintSelector hexutil.Bytes   `mapstructure:"mint_selector"`
	MintAmount   decimal.Decimal `mapstructure:"mint_amount"`
	Decimals     int32           `mapstructure:"decimals"`

	GasLimit     uint64          `mapstructure:"gas_limit"`
	GasPriceGwei decimal.Decimal `mapstructure:"gas_price_gwei"`

	Workers int           `mapstructure:"workers"`
	Timeout time.Duration `mapstructure:"timeout"`

	RelayEndpoint string `mapstructure:"relay_endpoint"`
	RelaySimulate bool   `mapstructure:"relay_simulate"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(RPCEndpointField, DefaultRPCEndpoint)
	v.SetDefault(KeyFileField, DefaultKeyFile)
	v.SetDefault(ContractField, DefaultContract)
	v.SetDefault(MintSelectorField, DefaultMintSelector)
	v.SetDefault(MintAmountField, DefaultMintAmount)
	v.SetDefault(DecimalsField, DefaultDecimals)
	v.SetDefault(GasLimitField, DefaultGasLimit)
	v.SetDefault(GasPriceGweiField, DefaultGasPriceGwei)
	v.SetDefault(WorkersField, DefaultWorkers)
	v.SetDefault(TimeoutField, "0s")
	v.SetDefault(RelayEndpointField, "")
	v.SetDefault(RelaySimulateField, false)
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := decode(v)
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads the optional config file and the environment on top of the defaults.
// A missing config file is not an error.
func Load(v *viper.Viper, logger zerolog.Logger) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	err := v.ReadInConfig()
	switch {
	case err == nil:
		logger.Debug().Msgf("Config file used: %s", v.ConfigFileUsed())
	case errors.As(err, new(viper.ConfigFileNotFoundError)), errors.Is(err, fs.ErrNotExist):
		logger.Debug().Msg("Config file not found, using defaults")
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().Msg("Configuration loaded successfully")
	return cfg, nil
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, updateDecoderConfig); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

func updateDecoderConfig(config *mapstructure.DecoderConfig) {
	config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		decodeDecimal,
		mapstructure.TextUnmarshallerHookFunc(),
		config.DecodeHook,
	)
}

// decodeDecimal accepts numbers as well as strings, so `mint_amount = 5` and `mint_amount = "5"` both work.
func decodeDecimal(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
	if t != reflect.TypeOf(decimal.Decimal{}) {
		return data, nil
	}
	switch f.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(reflect.ValueOf(data).Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(reflect.ValueOf(data).Uint()), 0), nil
	case reflect.Float32, reflect.Float64:
		return decimal.NewFromFloat(reflect.ValueOf(data).Float()), nil
	}
	return data, nil
}

// Validate perform some simple configuration validation
func (c *Config) Validate() error {
	if c.RPCEndpoint == "" {
		return fmt.Errorf("%w: %q is missing in config", ErrInvalidConfig, RPCEndpointField)
	}
	if c.KeyFile == "" {
		return fmt.Errorf("%w: %q is missing in config", ErrInvalidConfig, KeyFileField)
	}
	if c.Contract == (common.Address{}) {
		return fmt.Errorf("%w: %q is missing in config", ErrInvalidConfig, ContractField)
	}
	if len(c.MintSelector) != 4 {
		return fmt.Errorf("%w: %q must be 4 bytes, got %d", ErrInvalidConfig, MintSelectorField, len(c.MintSelector))
	}
	if c.Decimals < 0 || c.Decimals > MaxDecimals {
		return fmt.Errorf("%w: %q must be between 0 and %d", ErrInvalidConfig, DecimalsField, MaxDecimals)
	}
	if _, err := c.MintAmountWei(); err != nil {
		return fmt.Errorf("%w: %q: %w", ErrInvalidConfig, MintAmountField, err)
	}
	if c.GasLimit == 0 {
		return fmt.Errorf("%w: %q must be positive", ErrInvalidConfig, GasLimitField)
	}
	if c.GasPriceGwei.IsNegative() {
		return fmt.Errorf("%w: %q must not be negative", ErrInvalidConfig, GasPriceGweiField)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: %q must be at least 1", ErrInvalidConfig, WorkersField)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: %q must not be negative", ErrInvalidConfig, TimeoutField)
	}
	return nil
}

func (c *Config) Selector() [4]byte {
	var sel [4]byte
	copy(sel[:], c.MintSelector)
	return sel
}

// MintAmountWei is the mint amount in the smallest unit: MintAmount * 10^Decimals.
func (c *Config) MintAmountWei() (*big.Int, error) {
	if c.Decimals > MaxDecimals {
		return nil, ErrAmountOverflow
	}
	scaled := c.MintAmount.Shift(c.Decimals)
	if !scaled.IsInteger() {
		return nil, fmt.Errorf("%s is finer than 10^-%d", c.MintAmount, c.Decimals)
	}
	if scaled.IsNegative() {
		return nil, fmt.Errorf("%s is negative", c.MintAmount)
	}
	amount := scaled.BigInt()
	if _, overflow := uint256.FromBig(amount); overflow {
		return nil, ErrAmountOverflow
	}
	return amount, nil
}

func (c *Config) GasPriceWei() *big.Int {
	return c.GasPriceGwei.Mul(decimal.NewFromInt(params.GWei)).BigInt()
}

// InitDefaultConfig writes the commented template to configPath, refusing to overwrite an existing file.
func InitDefaultConfig(configPath string) (string, error) {
	dirPath := filepath.Dir(configPath)
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(InitConfigTemplate); err != nil {
		return "", fmt.Errorf("failed to write template to config file: %w", err)
	}
	return configPath, nil
}
