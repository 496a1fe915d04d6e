package activity

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nftcom/goledger/domain"
)

func TestExtractPriceSeaportSumsConsideration(t *testing.T) {
	req := require.New(t)

	o := &Order{
		Protocol: ProtocolSeaport,
		ProtocolData: `{
			"parameters": {
				"consideration": [
					{"startAmount": "950000000000000000", "token": "0x0000000000000000000000000000000000000000"},
					{"startAmount": "25000000000000000", "token": "0x0000000000000000000000000000000000000000"},
					{"startAmount": "25000000000000000", "token": "0x0000000000000000000000000000000000000000"}
				]
			}
		}`,
	}

	price, err := ExtractPrice(o)
	req.NoError(err)
	req.Equal("1000000000000000000", price.String())

	currency, err := ExtractCurrency(o)
	req.NoError(err)
	req.Equal(domain.EmptyAddress, currency)
}

func TestExtractPriceLooksrareFlatField(t *testing.T) {
	req := require.New(t)

	o := &Order{
		Protocol:     ProtocolLooksrare,
		ProtocolData: `{"price": "2500000000000000000", "currency": "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"}`,
	}

	price, err := ExtractPrice(o)
	req.NoError(err)
	req.Equal("2500000000000000000", price.String())

	currency, err := ExtractCurrency(o)
	req.NoError(err)
	req.Equal(domain.Address("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"), currency)
}

func TestExtractPriceX2Y2FlatField(t *testing.T) {
	req := require.New(t)

	o := &Order{
		Protocol:     ProtocolX2Y2,
		ProtocolData: `{"price": "990000000000000000", "currency": "0x0000000000000000000000000000000000000000"}`,
	}

	price, err := ExtractPrice(o)
	req.NoError(err)
	req.Equal("990000000000000000", price.String())
}

func TestExtractPriceNativeTakeAsset(t *testing.T) {
	req := require.New(t)

	o := &Order{
		Protocol:     ProtocolNative,
		ProtocolData: `{"takeAsset": [{"contractAddress": "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2", "value": "3000000000000000000"}]}`,
	}

	price, err := ExtractPrice(o)
	req.NoError(err)
	req.Equal("3000000000000000000", price.String())

	currency, err := ExtractCurrency(o)
	req.NoError(err)
	req.Equal(domain.Address("0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"), currency)
}

func TestExtractPriceMalformedPayload(t *testing.T) {
	req := require.New(t)

	cases := []struct {
		name  string
		order *Order
	}{
		{
			name:  "seaport without consideration",
			order: &Order{Protocol: ProtocolSeaport, ProtocolData: `{"parameters": {"consideration": []}}`},
		},
		{
			name:  "looksrare without price",
			order: &Order{Protocol: ProtocolLooksrare, ProtocolData: `{"currency": "0xc02aaa39b223fe8d0a0e5c4f27ead9083c756cc2"}`},
		},
		{
			name:  "native without take asset",
			order: &Order{Protocol: ProtocolNative, ProtocolData: `{"takeAsset": []}`},
		},
	}

	for _, c := range cases {
		_, err := ExtractPrice(c.order)
		req.ErrorIs(err, domain.ErrMalformedOrder, c.name)
	}

	_, err := ExtractPrice(&Order{Protocol: Protocol("unknown"), ProtocolData: `{}`})
	req.ErrorIs(err, domain.ErrInvalidProtocol)
}
