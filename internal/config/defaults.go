package config

const (
	DefaultRPCEndpoint = "https://sepolia.base.org/"
	DefaultKeyFile     = "privatekey.txt"
	DefaultContract    = "0xaf33add7918f685b2a82c1077bd8c07d220ffa04"

	// mint(address,uint256)
	DefaultMintSelector = "0x40c10f19"
	DefaultMintAmount   = "100000000" // whole units
	DefaultDecimals     = 18

	DefaultGasLimit     = 100000
	DefaultGasPriceGwei = "2"

	DefaultWorkers = 1
)

const (
	RPCEndpointField   = "rpc_endpoint"
	KeyFileField       = "key_file"
	ContractField      = "contract"
	MintSelectorField  = "mint_selector"
	MintAmountField    = "mint_amount"
	DecimalsField      = "decimals"
	GasLimitField      = "gas_limit"
	GasPriceGweiField  = "gas_price_gwei"
	WorkersField       = "workers"
	TimeoutField       = "timeout"
	RelayEndpointField = "relay_endpoint"
	RelaySimulateField = "relay_simulate"
)

const InitConfigTemplate = `# Configuration for ethMintBot
# Every key can also be set with a MINTBOT_<KEY> environment variable or a command line flag.

# JSON-RPC endpoint of the chain
# rpc_endpoint = "https://sepolia.base.org/"

# File with one secret key per line
# key_file = "privatekey.txt"

# Contract receiving the mint call and the 4-byte selector of mint(address,uint256)
# contract = "0xaf33add7918f685b2a82c1077bd8c07d220ffa04"
# mint_selector = "0x40c10f19"

# Amount minted to every wallet, in whole units, scaled by 10^decimals
# mint_amount = "100000000"
# decimals = 18

# Static gas parameters
# gas_limit = 100000
# gas_price_gwei = "2"

# Number of wallets processed at the same time and an optional per-wallet deadline
# workers = 1
# timeout = "30s"

# Submit mint transactions as bundles through a Flashbots-compatible relay
# relay_endpoint = "https://relay.flashbots.net"
# relay_simulate = false
`
