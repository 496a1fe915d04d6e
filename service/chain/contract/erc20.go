package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/nftcom/goledger/base/abi"
	bCtx "github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/domain/nativeorder"
	"github.com/nftcom/goledger/service/chain"
)

type Erc20 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc20(chainService chain.Client) *Erc20 {
	return &Erc20{
		chainService: chainService,
		abi:          baseabi.ERC20TokenABI,
	}
}

var _ nativeorder.BalanceReader = (*Erc20)(nil)

func (e *Erc20) BalanceOf(ctx bCtx.Ctx, chainId domain.ChainId, wallet, token domain.Address) (string, error) {
	method := "balanceOf"
	unpacked, err := e.chainService.Call(ctx, int32(chainId), common.HexToAddress(token.ToLowerStr()), nil, e.abi, method, common.HexToAddress(wallet.ToLowerStr()))
	if err != nil {
		return "", err
	}
	return unpacked[0].(*big.Int).String(), nil
}

// NativeBalanceOf reads the wallet's balance of the chain's native coin.
func (e *Erc20) NativeBalanceOf(ctx bCtx.Ctx, chainId domain.ChainId, wallet domain.Address) (string, error) {
	balance, err := e.chainService.BalanceAt(ctx, int32(chainId), common.HexToAddress(wallet.ToLowerStr()), nil)
	if err != nil {
		return "", err
	}
	return balance.String(), nil
}
