package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const (
	// FieldError can be used instead of Err(err) if you have only the error message string.
	FieldError = "err"

	FieldComponent = "component"
	FieldChainId   = "chainId"

	FieldDuration = "duration"
	FieldUrl      = "url"
	FieldReqId    = "reqId"

	FieldRpcMethod = "rpcMethod"

	FieldAccountAddress = "accountAddress"
	FieldAccountNonce   = "accountNonce"
	FieldWalletIndex    = "walletIndex"

	FieldTxHash     = "txHash"
	FieldBundleHash = "bundleHash"

	FieldBlockNumber = "blockNumber"
)

var output io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}

// SetOutput redirects loggers created afterwards.
func SetOutput(w io.Writer) {
	output = w
}

func NewLogger(component string) zerolog.Logger {
	return zerolog.New(output).
		With().
		Timestamp().
		Str(FieldComponent, component).
		Logger()
}

// SetLevel disables logging completely unless verbose is set.
func SetLevel(verbose bool, level string) error {
	if !verbose {
		zerolog.SetGlobalLevel(zerolog.Disabled)
		return nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}
