package x2y2

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

type OrderSide string

const (
	OrderSideListing OrderSide = "list"
	OrderSideOffer   OrderSide = "offer"
)

type GetOrdersOptions struct {
	Contract  *domain.Address
	TokenId   *domain.TokenId
	Side      *OrderSide
	Ascending *bool
	Limit     *int
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

func WithContract(address domain.Address) GetOrdersOptionsFunc {
	return func(opt *GetOrdersOptions) error {
		opt.Contract = &address
		return nil
	}
}

func WithTokenId(tokenId domain.TokenId) GetOrdersOptionsFunc {
	return func(opt *GetOrdersOptions) error {
		opt.TokenId = &tokenId
		return nil
	}
}

func WithSide(side OrderSide) GetOrdersOptionsFunc {
	return func(opt *GetOrdersOptions) error {
		opt.Side = &side
		return nil
	}
}

func WithAscending(asc bool) GetOrdersOptionsFunc {
	return func(opt *GetOrdersOptions) error {
		opt.Ascending = &asc
		return nil
	}
}

func WithLimit(limit int) GetOrdersOptionsFunc {
	return func(opt *GetOrdersOptions) error {
		opt.Limit = &limit
		return nil
	}
}

type Client interface {
	GetOrders(ctx bCtx.Ctx, chainId domain.ChainId, opts ...GetOrdersOptionsFunc) (*OrdersResp, error)
}

type ClientCfg struct {
	HttpClient *http.Client
	Timeout    time.Duration
	Apikey     string
}

type Order struct {
	Id        int64          `json:"id"`
	ItemHash  string         `json:"item_hash"`
	Maker     domain.Address `json:"maker"`
	Taker     domain.Address `json:"taker"`
	Currency  domain.Address `json:"currency"`
	Price     string         `json:"price"`
	CreatedAt int64          `json:"created_at"`
	EndAt     int64          `json:"end_at"`
	Token     Token          `json:"token"`
}

type Token struct {
	Contract domain.Address `json:"contract"`
	TokenId  domain.TokenId `json:"token_id"`
}

func (o *Order) Raw() (json.RawMessage, error) {
	return json.Marshal(o)
}

type OrdersResp struct {
	Success bool    `json:"success"`
	Next    string  `json:"next"`
	Orders  []Order `json:"data"`
}
