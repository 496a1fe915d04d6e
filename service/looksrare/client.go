package looksrare

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	bCtx "github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/domain"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
)

// QuoteType follows the looksrare v2 wire encoding
type QuoteType int

const (
	QuoteTypeBid QuoteType = 0
	QuoteTypeAsk QuoteType = 1
)

type GetOrdersOptions struct {
	Collection *domain.Address
	ItemId     *domain.TokenId
	QuoteType  *QuoteType
	Ascending  *bool
}

type GetOrdersOptionsFunc func(*GetOrdersOptions) error

func ParseGetOrdersOptions(opts ...GetOrdersOptionsFunc) (GetOrdersOptions, error) {
	opt := GetOrdersOptions{}
	for _, f := range opts {
		err := f(&opt)
		if err != nil {
			return opt, err
		}
	}
	return opt, nil
}

func WithCollection(address domain.Address) GetOrdersOptionsFunc {
	return func(opt *GetOrdersOptions) error {
		opt.Collection = &address
		return nil
	}
}

func WithItemId(tokenId domain.TokenId) GetOrdersOptionsFunc {
	return func(opt *GetOrdersOptions) error {
		opt.ItemId = &tokenId
		return nil
	}
}

func WithQuoteType(quoteType QuoteType) GetOrdersOptionsFunc {
	return func(opt *GetOrdersOptions) error {
		opt.QuoteType = &quoteType
		return nil
	}
}

func WithAscending(asc bool) GetOrdersOptionsFunc {
	return func(opt *GetOrdersOptions) error {
		opt.Ascending = &asc
		return nil
	}
}

type Client interface {
	// GetOrders returns an empty response without issuing any request when
	// chainId is outside the supported set.
	GetOrders(ctx bCtx.Ctx, chainId domain.ChainId, opts ...GetOrdersOptionsFunc) (*OrdersResp, error)
}

type ClientCfg struct {
	HttpClient *http.Client
	Timeout    time.Duration
	Apikey     string
}

type Order struct {
	Id         string           `json:"id"`
	Hash       string           `json:"hash"`
	QuoteType  QuoteType        `json:"quoteType"`
	Signer     domain.Address   `json:"signer"`
	Collection domain.Address   `json:"collection"`
	Currency   domain.Address   `json:"currency"`
	Price      string           `json:"price"`
	ItemIds    []domain.TokenId `json:"itemIds"`
	StartTime  int64            `json:"startTime"`
	EndTime    int64            `json:"endTime"`
	Status     string           `json:"status"`
}

func (o *Order) Raw() (json.RawMessage, error) {
	return json.Marshal(o)
}

type OrdersResp struct {
	Success bool    `json:"success"`
	Data    []Order `json:"data"`
}
