package usecase

import (
	"encoding/json"

	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/domain/activity"
)

const exchangeLooksrare = "looksrare"

type looksrareRawOrder struct {
	Hash       string           `json:"hash"`
	Signer     domain.Address   `json:"signer"`
	Collection domain.Address   `json:"collection"`
	ItemIds    []domain.TokenId `json:"itemIds"`
	StartTime  int64            `json:"startTime"`
	EndTime    int64            `json:"endTime"`
}

func mapLooksrareOrder(activityType activity.ActivityType, rawOrder []byte, chainId domain.ChainId, contractAddress domain.Address) (*mappedOrder, error) {
	raw := looksrareRawOrder{}
	if err := json.Unmarshal(rawOrder, &raw); err != nil {
		return nil, domain.ErrMalformedOrder
	}
	if raw.Hash == "" || raw.Signer.IsEmpty() || len(raw.ItemIds) == 0 {
		return nil, domain.ErrMalformedOrder
	}

	contract := raw.Collection
	if contract.IsEmpty() {
		contract = contractAddress
	}

	network := networkName(chainId)
	nftIds := make([]domain.NftKey, 0, len(raw.ItemIds))
	for _, itemId := range raw.ItemIds {
		nftIds = append(nftIds, domain.MakeNftKey(network, contract, itemId))
	}

	return &mappedOrder{
		orderHash:    domain.OrderHash(raw.Hash),
		exchange:     exchangeLooksrare,
		maker:        raw.Signer.ToLower(),
		nftIds:       nftIds,
		timestamp:    unixTime(raw.StartTime),
		expiration:   unixExpiration(raw.EndTime),
		protocolData: string(rawOrder),
	}, nil
}
