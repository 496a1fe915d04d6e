package contract

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	baseabi "github.com/nftcom/goledger/base/abi"
	bCtx "github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/base/log"
	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/domain/nativeorder"
	"github.com/nftcom/goledger/service/chain"
)

// ValidationLogic is the read-only surface of the on-chain marketplace
// validation contract. validateOrder_ recomputes the order struct hash from
// the submitted fields; validateMatch_ checks whether two orders can settle
// against each other.
type ValidationLogic interface {
	ValidateOrder(ctx bCtx.Ctx, chainId domain.ChainId, order *baseabi.ValidationOrder, sig *baseabi.ValidationSig) (domain.OrderHash, error)
	ValidateMatch(ctx bCtx.Ctx, chainId domain.ChainId, sellOrder, buyOrder *baseabi.ValidationOrder) (bool, error)
}

type validationLogicImpl struct {
	chainService chain.Client
	addresses    map[domain.ChainId]string
}

func NewValidationLogic(chainService chain.Client, addresses map[domain.ChainId]string) ValidationLogic {
	return &validationLogicImpl{
		chainService: chainService,
		addresses:    addresses,
	}
}

func (v *validationLogicImpl) ValidateOrder(ctx bCtx.Ctx, chainId domain.ChainId, order *baseabi.ValidationOrder, sig *baseabi.ValidationSig) (domain.OrderHash, error) {
	addr, ok := v.addresses[chainId]
	if !ok {
		return "", chain.ErrUnsupportedChain
	}
	method := "validateOrder_"
	unpacked, err := v.chainService.Call(ctx, int32(chainId), common.HexToAddress(addr), nil, baseabi.ValidationLogicABI, method, *order, *sig)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
		}).Error("chainService.Call failed")
		return "", err
	}
	hash := unpacked[0].([32]byte)
	return domain.OrderHash(common.BytesToHash(hash[:]).Hex()), nil
}

func (v *validationLogicImpl) ValidateMatch(ctx bCtx.Ctx, chainId domain.ChainId, sellOrder, buyOrder *baseabi.ValidationOrder) (bool, error) {
	addr, ok := v.addresses[chainId]
	if !ok {
		return false, chain.ErrUnsupportedChain
	}
	method := "validateMatch_"
	unpacked, err := v.chainService.Call(ctx, int32(chainId), common.HexToAddress(addr), nil, baseabi.ValidationLogicABI, method, *sellOrder, *buyOrder)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
		}).Error("chainService.Call failed")
		return false, err
	}
	return unpacked[0].(bool), nil
}

// AssetClassId derives the bytes4 selector the contract uses for an asset
// class, the first four bytes of keccak256 over the class name.
func AssetClassId(class nativeorder.AssetClass) [4]byte {
	var id [4]byte
	copy(id[:], crypto.Keccak256([]byte(class))[:4])
	return id
}

func toValidationAssets(assets []nativeorder.Asset) ([]baseabi.ValidationAsset, error) {
	res := make([]baseabi.ValidationAsset, 0, len(assets))
	for _, a := range assets {
		tokenId := big.NewInt(0)
		if len(a.TokenId) > 0 {
			bn, ok := new(big.Int).SetString(string(a.TokenId), 10)
			if !ok {
				return nil, domain.ErrInvalidNumberFormat
			}
			tokenId = bn
		}
		value, ok := new(big.Int).SetString(a.Value, 10)
		if !ok {
			return nil, domain.ErrInvalidNumberFormat
		}
		res = append(res, baseabi.ValidationAsset{
			AssetClass:      AssetClassId(a.Class),
			ContractAddress: common.HexToAddress(a.ContractAddress.ToLowerStr()),
			TokenId:         tokenId,
			Value:           value,
		})
	}
	return res, nil
}

func toValidationOrder(maker, taker domain.Address, makeAssets, takeAssets []nativeorder.Asset, salt, start, end, nonce int64, auctionType nativeorder.AuctionType) (*baseabi.ValidationOrder, error) {
	mas, err := toValidationAssets(makeAssets)
	if err != nil {
		return nil, err
	}
	tas, err := toValidationAssets(takeAssets)
	if err != nil {
		return nil, err
	}
	return &baseabi.ValidationOrder{
		Maker:       common.HexToAddress(maker.ToLowerStr()),
		MakeAssets:  mas,
		Taker:       common.HexToAddress(taker.ToLowerStr()),
		TakeAssets:  tas,
		Salt:        big.NewInt(salt),
		Start:       big.NewInt(start),
		End:         big.NewInt(end),
		Nonce:       big.NewInt(nonce),
		AuctionType: nativeorder.AuctionTypeIndex(auctionType),
	}, nil
}

func toValidationSig(sig nativeorder.Signature) *baseabi.ValidationSig {
	return &baseabi.ValidationSig{
		V: sig.V,
		R: common.HexToHash(sig.R),
		S: common.HexToHash(sig.S),
	}
}

// OrderFromAsk maps a stored ask onto the tuple shape validateOrder_ expects.
func OrderFromAsk(ask *nativeorder.Ask) (*baseabi.ValidationOrder, *baseabi.ValidationSig, error) {
	order, err := toValidationOrder(ask.MakerAddress, ask.TakerAddress, ask.MakeAssets, ask.TakeAssets, ask.Salt, ask.Start, ask.End, ask.Nonce, ask.AuctionType)
	if err != nil {
		return nil, nil, err
	}
	return order, toValidationSig(ask.Signature), nil
}

// OrderFromBid maps a stored bid onto the tuple shape validateOrder_ expects.
func OrderFromBid(bid *nativeorder.Bid) (*baseabi.ValidationOrder, *baseabi.ValidationSig, error) {
	order, err := toValidationOrder(bid.MakerAddress, bid.TakerAddress, bid.MakeAssets, bid.TakeAssets, bid.Salt, bid.Start, bid.End, bid.Nonce, bid.AuctionType)
	if err != nil {
		return nil, nil, err
	}
	return order, toValidationSig(bid.Signature), nil
}
