package looksrare

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/domain"
)

type countingRoundTripper struct {
	calls int
}

func (c *countingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	c.calls++
	return nil, http.ErrHandlerTimeout
}

func Test_GetOrders_UnsupportedChain(t *testing.T) {
	req := require.New(t)
	rt := &countingRoundTripper{}
	c := NewClient(&ClientCfg{
		HttpClient: &http.Client{Transport: rt},
		Timeout:    10 * time.Second,
	})
	ctx := bCtx.Background()

	resp, err := c.GetOrders(
		ctx,
		domain.ChainId(999),
		WithCollection(domain.Address("0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d")),
		WithItemId(domain.TokenId("1")),
		WithQuoteType(QuoteTypeAsk),
		WithAscending(true),
	)
	req.NoError(err)
	req.Empty(resp.Data)
	req.Zero(rt.calls)
}
