package activity

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/nftcom/goledger/domain"
)

// Orders keep their protocol-native payload verbatim in ProtocolData; price
// and currency are only pulled out when a read path needs them. The native
// shapes are structurally incompatible: Seaport sums consideration amounts,
// LooksRare v2 and X2Y2 expose a flat price field, and the native protocol
// reads the first take asset.

type seaportConsiderationItem struct {
	StartAmount string `json:"startAmount"`
	Token       string `json:"token"`
}

type seaportProtocolData struct {
	Parameters struct {
		Consideration []seaportConsiderationItem `json:"consideration"`
	} `json:"parameters"`
}

type looksrareProtocolData struct {
	Price    string `json:"price"`
	Currency string `json:"currency"`
}

type x2y2ProtocolData struct {
	Price    string `json:"price"`
	Currency string `json:"currency"`
}

type nativeAssetData struct {
	ContractAddress string `json:"contractAddress"`
	Value           string `json:"value"`
}

type nativeProtocolData struct {
	TakeAsset []nativeAssetData `json:"takeAsset"`
}

// ExtractPrice parses the protocol-native payload of an order and returns
// its price in the payment currency's base unit.
func ExtractPrice(o *Order) (decimal.Decimal, error) {
	switch o.Protocol {
	case ProtocolSeaport:
		data := seaportProtocolData{}
		if err := json.Unmarshal([]byte(o.ProtocolData), &data); err != nil {
			return decimal.Zero, xerrors.Errorf("parse seaport payload: %w", err)
		}
		if len(data.Parameters.Consideration) == 0 {
			return decimal.Zero, domain.ErrMalformedOrder
		}
		sum := decimal.Zero
		for _, c := range data.Parameters.Consideration {
			amount, err := decimal.NewFromString(c.StartAmount)
			if err != nil {
				return decimal.Zero, xerrors.Errorf("parse consideration amount %q: %w", c.StartAmount, err)
			}
			sum = sum.Add(amount)
		}
		return sum, nil
	case ProtocolLooksrare:
		data := looksrareProtocolData{}
		if err := json.Unmarshal([]byte(o.ProtocolData), &data); err != nil {
			return decimal.Zero, xerrors.Errorf("parse looksrare payload: %w", err)
		}
		if data.Price == "" {
			return decimal.Zero, domain.ErrMalformedOrder
		}
		return decimal.NewFromString(data.Price)
	case ProtocolX2Y2:
		data := x2y2ProtocolData{}
		if err := json.Unmarshal([]byte(o.ProtocolData), &data); err != nil {
			return decimal.Zero, xerrors.Errorf("parse x2y2 payload: %w", err)
		}
		if data.Price == "" {
			return decimal.Zero, domain.ErrMalformedOrder
		}
		return decimal.NewFromString(data.Price)
	case ProtocolNative:
		data := nativeProtocolData{}
		if err := json.Unmarshal([]byte(o.ProtocolData), &data); err != nil {
			return decimal.Zero, xerrors.Errorf("parse native payload: %w", err)
		}
		if len(data.TakeAsset) == 0 {
			return decimal.Zero, domain.ErrMalformedOrder
		}
		return decimal.NewFromString(data.TakeAsset[0].Value)
	}
	return decimal.Zero, domain.ErrInvalidProtocol
}

// ExtractCurrency parses the protocol-native payload of an order and returns
// the payment token address. The zero address means the chain's native coin.
func ExtractCurrency(o *Order) (domain.Address, error) {
	switch o.Protocol {
	case ProtocolSeaport:
		data := seaportProtocolData{}
		if err := json.Unmarshal([]byte(o.ProtocolData), &data); err != nil {
			return "", xerrors.Errorf("parse seaport payload: %w", err)
		}
		if len(data.Parameters.Consideration) == 0 {
			return "", domain.ErrMalformedOrder
		}
		return domain.Address(data.Parameters.Consideration[0].Token).ToLower(), nil
	case ProtocolLooksrare:
		data := looksrareProtocolData{}
		if err := json.Unmarshal([]byte(o.ProtocolData), &data); err != nil {
			return "", xerrors.Errorf("parse looksrare payload: %w", err)
		}
		if data.Currency == "" {
			return "", domain.ErrMalformedOrder
		}
		return domain.Address(data.Currency).ToLower(), nil
	case ProtocolX2Y2:
		data := x2y2ProtocolData{}
		if err := json.Unmarshal([]byte(o.ProtocolData), &data); err != nil {
			return "", xerrors.Errorf("parse x2y2 payload: %w", err)
		}
		if data.Currency == "" {
			return "", domain.ErrMalformedOrder
		}
		return domain.Address(data.Currency).ToLower(), nil
	case ProtocolNative:
		data := nativeProtocolData{}
		if err := json.Unmarshal([]byte(o.ProtocolData), &data); err != nil {
			return "", xerrors.Errorf("parse native payload: %w", err)
		}
		if len(data.TakeAsset) == 0 {
			return "", domain.ErrMalformedOrder
		}
		return domain.Address(data.TakeAsset[0].ContractAddress).ToLower(), nil
	}
	return "", domain.ErrInvalidProtocol
}
