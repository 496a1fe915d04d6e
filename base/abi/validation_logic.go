package abi

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

var ValidationLogicABI abi.ABI

var assetComponents = `[{"type":"bytes4","name":"assetClass"},{"type":"address","name":"contractAddress"},{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"value"}]`

var orderComponents = `[{"type":"address","name":"maker"},{"type":"tuple[]","name":"makeAssets","components":` + assetComponents + `},{"type":"address","name":"taker"},{"type":"tuple[]","name":"takeAssets","components":` + assetComponents + `},{"type":"uint256","name":"salt"},{"type":"uint256","name":"start"},{"type":"uint256","name":"end"},{"type":"uint256","name":"nonce"},{"type":"uint8","name":"auctionType"}]`

var sigComponents = `[{"type":"uint8","name":"v"},{"type":"bytes32","name":"r"},{"type":"bytes32","name":"s"}]`

var validationLogicABI = `[{"type":"function","name":"validateOrder_","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"tuple","name":"order","components":` + orderComponents + `},{"type":"tuple","name":"sig","components":` + sigComponents + `}],"outputs":[{"type":"bytes32"}]},{"type":"function","name":"validateMatch_","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"tuple","name":"sellOrder","components":` + orderComponents + `},{"type":"tuple","name":"buyOrder","components":` + orderComponents + `}],"outputs":[{"type":"bool"}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(validationLogicABI))
	if err != nil {
		panic("Failed to parse validation logic abi")
	}
	ValidationLogicABI = _abi
}

type ValidationAsset struct {
	AssetClass      [4]byte
	ContractAddress common.Address
	TokenId         *big.Int
	Value           *big.Int
}

type ValidationOrder struct {
	Maker       common.Address
	MakeAssets  []ValidationAsset
	Taker       common.Address
	TakeAssets  []ValidationAsset
	Salt        *big.Int
	Start       *big.Int
	End         *big.Int
	Nonce       *big.Int
	AuctionType uint8
}

type ValidationSig struct {
	V uint8
	R [32]byte
	S [32]byte
}
