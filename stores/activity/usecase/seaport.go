package usecase

import (
	"encoding/json"

	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/domain/activity"
)

const exchangeOpensea = "opensea"

type seaportOfferItem struct {
	Token                string `json:"token"`
	IdentifierOrCriteria string `json:"identifierOrCriteria"`
}

type seaportRawOrder struct {
	OrderHash      string `json:"order_hash"`
	ListingTime    int64  `json:"listing_time"`
	ExpirationTime int64  `json:"expiration_time"`
	Maker          *struct {
		Address domain.Address `json:"address"`
	} `json:"maker"`
	Taker *struct {
		Address domain.Address `json:"address"`
	} `json:"taker"`
	ProtocolData *struct {
		Parameters struct {
			Offer         []seaportOfferItem `json:"offer"`
			Consideration []seaportOfferItem `json:"consideration"`
		} `json:"parameters"`
	} `json:"protocol_data"`
}

// mapSeaportOrder keeps the seaport protocol_data subdocument verbatim so
// price extraction can read parameters.consideration later.
func mapSeaportOrder(activityType activity.ActivityType, rawOrder []byte, chainId domain.ChainId, contractAddress domain.Address) (*mappedOrder, error) {
	raw := seaportRawOrder{}
	if err := json.Unmarshal(rawOrder, &raw); err != nil {
		return nil, domain.ErrMalformedOrder
	}
	if raw.OrderHash == "" || raw.Maker == nil || raw.Maker.Address.IsEmpty() || raw.ProtocolData == nil {
		return nil, domain.ErrMalformedOrder
	}

	// carve the native payload back out without reencoding it
	envelope := struct {
		ProtocolData json.RawMessage `json:"protocol_data"`
	}{}
	if err := json.Unmarshal(rawOrder, &envelope); err != nil {
		return nil, domain.ErrMalformedOrder
	}

	items := raw.ProtocolData.Parameters.Offer
	if activityType == activity.ActivityTypeBid {
		items = raw.ProtocolData.Parameters.Consideration
	}

	network := networkName(chainId)
	nftIds := []domain.NftKey{}
	for _, item := range items {
		if item.IdentifierOrCriteria == "" || item.IdentifierOrCriteria == "0" {
			continue
		}
		contract := domain.Address(item.Token)
		if contract.IsEmpty() {
			contract = contractAddress
		}
		nftIds = append(nftIds, domain.MakeNftKey(network, contract, domain.TokenId(item.IdentifierOrCriteria)))
	}
	if len(nftIds) == 0 {
		return nil, domain.ErrMalformedOrder
	}

	var taker *domain.Address
	if raw.Taker != nil && !raw.Taker.Address.IsEmpty() {
		addr := raw.Taker.Address.ToLower()
		taker = &addr
	}

	return &mappedOrder{
		orderHash:    domain.OrderHash(raw.OrderHash),
		exchange:     exchangeOpensea,
		maker:        raw.Maker.Address.ToLower(),
		taker:        taker,
		nftIds:       nftIds,
		timestamp:    unixTime(raw.ListingTime),
		expiration:   unixExpiration(raw.ExpirationTime),
		protocolData: string(envelope.ProtocolData),
	}, nil
}
