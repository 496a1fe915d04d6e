package usecase

import (
	"encoding/json"

	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/domain/activity"
)

const exchangeX2y2 = "x2y2"

type x2y2RawOrder struct {
	ItemHash  string         `json:"item_hash"`
	Maker     domain.Address `json:"maker"`
	Taker     domain.Address `json:"taker"`
	CreatedAt int64          `json:"created_at"`
	EndAt     int64          `json:"end_at"`
	Token     *struct {
		Contract domain.Address `json:"contract"`
		TokenId  domain.TokenId `json:"token_id"`
	} `json:"token"`
}

func mapX2y2Order(activityType activity.ActivityType, rawOrder []byte, chainId domain.ChainId, contractAddress domain.Address) (*mappedOrder, error) {
	raw := x2y2RawOrder{}
	if err := json.Unmarshal(rawOrder, &raw); err != nil {
		return nil, domain.ErrMalformedOrder
	}
	if raw.ItemHash == "" || raw.Maker.IsEmpty() || raw.Token == nil || raw.Token.TokenId == "" {
		return nil, domain.ErrMalformedOrder
	}

	contract := raw.Token.Contract
	if contract.IsEmpty() {
		contract = contractAddress
	}

	var taker *domain.Address
	if !raw.Taker.IsEmpty() {
		addr := raw.Taker.ToLower()
		taker = &addr
	}

	return &mappedOrder{
		orderHash:    domain.OrderHash(raw.ItemHash),
		exchange:     exchangeX2y2,
		maker:        raw.Maker.ToLower(),
		taker:        taker,
		nftIds:       []domain.NftKey{domain.MakeNftKey(networkName(chainId), contract, raw.Token.TokenId)},
		timestamp:    unixTime(raw.CreatedAt),
		expiration:   unixExpiration(raw.EndAt),
		protocolData: string(rawOrder),
	}, nil
}
