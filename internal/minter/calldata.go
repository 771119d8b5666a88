package minter

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

var (
	ErrAmountOverflow = errors.New("amount does not fit into uint256")
	ErrNegativeAmount = errors.New("amount is negative")
)

// (address,uint256), the argument list of mint
var mintArguments = abi.Arguments{
	{Name: "to", Type: mustNewType("address")},
	{Name: "amount", Type: mustNewType("uint256")},
}

func mustNewType(t string) abi.Type {
	typ, err := abi.NewType(t, "", nil)
	if err != nil {
		panic(err)
	}
	return typ
}

// EncodeMintCall returns selector || pad32(to) || pad32(amount).
func EncodeMintCall(selector [4]byte, to common.Address, amount *big.Int) ([]byte, error) {
	if amount.Sign() < 0 {
		return nil, ErrNegativeAmount
	}
	if _, overflow := uint256.FromBig(amount); overflow {
		return nil, ErrAmountOverflow
	}

	args, err := mintArguments.Pack(to, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to pack mint arguments: %w", err)
	}

	data := make([]byte, 0, len(selector)+len(args))
	data = append(data, selector[:]...)
	return append(data, args...), nil
}
