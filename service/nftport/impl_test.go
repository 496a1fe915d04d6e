package nftport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/service/cache"
	"github.com/nftcom/goledger/service/cache/provider/primitive"
)

// rewriteTransport sends requests addressed to the production api to the
// test server instead.
type rewriteTransport struct {
	target *url.URL
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = t.target.Scheme
	req.URL.Host = t.target.Host
	return http.DefaultTransport.RoundTrip(req)
}

type pagedServer struct {
	srv  *httptest.Server
	seen []*http.Request
}

// newPagedServer serves a two page transaction history: the first page
// carries a continuation token, the second ends the walk.
func newPagedServer(t *testing.T) *pagedServer {
	t.Helper()
	ps := &pagedServer{}
	ps.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ps.seen = append(ps.seen, r)

		resp := TransactionsResp{Response: "OK"}
		switch r.URL.Query().Get("continuation") {
		case "":
			resp.Continuation = "page-2"
			resp.Transactions = []Transaction{{Type: TransactionTypeSale, TransactionHash: "0xaaa"}}
		case "page-2":
			resp.Transactions = []Transaction{{Type: TransactionTypeTransfer, TransactionHash: "0xbbb"}}
		default:
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	return ps
}

func (ps *pagedServer) client(c cache.Service) Client {
	target, _ := url.Parse(ps.srv.URL)
	return NewClient(&ClientCfg{
		HttpClient: &http.Client{Transport: &rewriteTransport{target: target}},
		Timeout:    10 * time.Second,
		Apikey:     "test-key",
		Cache:      c,
	})
}

func TestGetTransactionsFollowsContinuation(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	ps := newPagedServer(t)
	defer ps.srv.Close()
	c := ps.client(nil)

	txs, err := c.GetTransactionsByContract(ctx, 1, "0xdcf0de6b17785a143d006e1515a6afd123cde8ba", []TransactionType{TransactionTypeSale, TransactionTypeTransfer}, 50)
	req.NoError(err)

	// both pages accumulate into one result
	req.Len(txs, 2)
	req.Equal(domain.TxHash("0xaaa"), txs[0].TransactionHash)
	req.Equal(domain.TxHash("0xbbb"), txs[1].TransactionHash)

	req.Len(ps.seen, 2)
	first, second := ps.seen[0], ps.seen[1]
	req.Equal("/v0/transactions/nfts/0xdcf0de6b17785a143d006e1515a6afd123cde8ba", first.URL.Path)
	req.Equal("ethereum", first.URL.Query().Get("chain"))
	req.Equal([]string{"sale", "transfer"}, first.URL.Query()["type"])
	req.Equal("50", first.URL.Query().Get("page_size"))
	req.Equal("test-key", first.Header.Get("Authorization"))
	req.Equal("page-2", second.URL.Query().Get("continuation"))

	// no cache configured, a repeated walk re-fetches every page
	_, err = c.GetTransactionsByContract(ctx, 1, "0xdcf0de6b17785a143d006e1515a6afd123cde8ba", []TransactionType{TransactionTypeSale, TransactionTypeTransfer}, 50)
	req.NoError(err)
	req.Len(ps.seen, 4)
}

func TestGetTransactionsCacheMemoizesPages(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	ps := newPagedServer(t)
	defer ps.srv.Close()
	c := ps.client(cache.New(cache.ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "nftport",
		Cache: primitive.NewPrimitive("nftport", 16),
	}))

	txs, err := c.GetTransactionsByNft(ctx, 1, "0xdcf0de6b17785a143d006e1515a6afd123cde8ba", "42", []TransactionType{TransactionTypeSale}, 50)
	req.NoError(err)
	req.Len(txs, 2)
	req.Len(ps.seen, 2)

	// the repeated walk is served page by page from the cache
	txs, err = c.GetTransactionsByNft(ctx, 1, "0xdcf0de6b17785a143d006e1515a6afd123cde8ba", "42", []TransactionType{TransactionTypeSale}, 50)
	req.NoError(err)
	req.Len(txs, 2)
	req.Len(ps.seen, 2)

	// a different token is a different key
	_, err = c.GetTransactionsByNft(ctx, 1, "0xdcf0de6b17785a143d006e1515a6afd123cde8ba", "43", []TransactionType{TransactionTypeSale}, 50)
	req.NoError(err)
	req.Len(ps.seen, 4)
}

func TestGetTransactionsUnsupportedChain(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	ps := newPagedServer(t)
	defer ps.srv.Close()
	c := ps.client(nil)

	_, err := c.GetTransactionsByContract(ctx, 999, "0xdcf0de6b17785a143d006e1515a6afd123cde8ba", []TransactionType{TransactionTypeSale}, 50)
	req.ErrorIs(err, ErrUnsupportedChain)
	req.Empty(ps.seen)
}
