package seaport

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
	OrderSideListing OrderSide = "listings"
	OrderSideOffer   OrderSide = "offers"
)

type GetOrdersOptions struct {
	ContractAddress *domain.Address
	TokenId         *domain.TokenId
	Side            *OrderSide
	Ascending       *bool
	Limit           *int
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

func WithContractAddress(address domain.Address) GetOrdersOptionsFunc {
	return func(opt *GetOrdersOptions) error {
		opt.ContractAddress = &address
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
	OrderHash      string          `json:"order_hash"`
	ListingTime    int64           `json:"listing_time"`
	ExpirationTime int64           `json:"expiration_time"`
	CurrentPrice   string          `json:"current_price"`
	Side           string          `json:"side"`
	Maker          Account         `json:"maker"`
	Taker          *Account        `json:"taker"`
	ProtocolData   json.RawMessage `json:"protocol_data"`
}

type Account struct {
	Address domain.Address `json:"address"`
}

type OrdersResp struct {
	Next   string  `json:"next"`
	Orders []Order `json:"orders"`
}
