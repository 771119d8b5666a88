package main

import "ethMintBot/internal/config"

const (
	APP_NAME = "ethMintBot"

	DEFAULT_CONFIG_NAME = "mintbot" // ./mintbot.toml
	DEFAULT_CONFIG_TYPE = "toml"
	DEFAULT_CONFIG_FILE = DEFAULT_CONFIG_NAME + "." + DEFAULT_CONFIG_TYPE
)

// command line flag -> config key
var flagKeys = map[string]string{
	"rpc-endpoint":   config.RPCEndpointField,
	"key-file":       config.KeyFileField,
	"contract":       config.ContractField,
	"workers":        config.WorkersField,
	"timeout":        config.TimeoutField,
	"relay-endpoint": config.RelayEndpointField,
	"relay-simulate": config.RelaySimulateField,
}
