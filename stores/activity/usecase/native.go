package usecase

import (
	"encoding/json"
	"time"

	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/domain/activity"
)

const exchangeNftcom = "nftcom"

type nativeRawAsset struct {
	Class           string         `json:"class"`
	ContractAddress domain.Address `json:"contractAddress"`
	TokenId         domain.TokenId `json:"tokenId"`
	Value           string         `json:"value"`
}

type nativeRawOrder struct {
	StructHash   string           `json:"structHash"`
	MakerAddress domain.Address   `json:"makerAddress"`
	TakerAddress domain.Address   `json:"takerAddress"`
	MakeAsset    []nativeRawAsset `json:"makeAsset"`
	TakeAsset    []nativeRawAsset `json:"takeAsset"`
	Start        int64            `json:"start"`
	End          int64            `json:"end"`
}

// mapNativeOrder reads the nft out of makeAsset for listings and takeAsset
// for bids; the maker gives the nft away in one direction and receives it in
// the other.
func mapNativeOrder(activityType activity.ActivityType, rawOrder []byte, chainId domain.ChainId, contractAddress domain.Address) (*mappedOrder, error) {
	raw := nativeRawOrder{}
	if err := json.Unmarshal(rawOrder, &raw); err != nil {
		return nil, domain.ErrMalformedOrder
	}
	if raw.StructHash == "" || raw.MakerAddress.IsEmpty() {
		return nil, domain.ErrMalformedOrder
	}

	assets := raw.MakeAsset
	if activityType == activity.ActivityTypeBid {
		assets = raw.TakeAsset
	}

	network := networkName(chainId)
	nftIds := []domain.NftKey{}
	for _, asset := range assets {
		if asset.TokenId == "" {
			continue
		}
		contract := asset.ContractAddress
		if contract.IsEmpty() {
			contract = contractAddress
		}
		nftIds = append(nftIds, domain.MakeNftKey(network, contract, asset.TokenId))
	}
	if len(nftIds) == 0 {
		return nil, domain.ErrMalformedOrder
	}

	var taker *domain.Address
	if !raw.TakerAddress.IsEmpty() {
		addr := raw.TakerAddress.ToLower()
		taker = &addr
	}

	// zero start means always open, stamp with ingestion time instead
	timestamp := time.Now().UTC()
	if raw.Start > 0 {
		timestamp = unixTime(raw.Start)
	}

	return &mappedOrder{
		orderHash:    domain.OrderHash(raw.StructHash),
		exchange:     exchangeNftcom,
		maker:        raw.MakerAddress.ToLower(),
		taker:        taker,
		nftIds:       nftIds,
		timestamp:    timestamp,
		expiration:   unixExpiration(raw.End),
		protocolData: string(rawOrder),
	}, nil
}
