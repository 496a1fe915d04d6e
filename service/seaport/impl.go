package seaport

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"time"

	bCtx "github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/base/httpretry"
	"github.com/nftcom/goledger/base/log"
	"github.com/nftcom/goledger/domain"
)

const (
	apikeyHeader = "X-API-KEY"
	v2Api        = "https://api.opensea.io/v2"
)

var ErrUnsupportedChain = errors.New("unsupported chain")

// chain path segments the orders endpoint understands
var chainNames = map[domain.ChainId]string{
	1: "ethereum",
	5: "goerli",
}

func NewClient(cfg *ClientCfg) Client {
	httpClient := cfg.HttpClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &client{
		client:  httpretry.New(httpClient),
		timeout: cfg.Timeout,
		apikey:  cfg.Apikey,
	}
}

type client struct {
	client  *httpretry.Client
	timeout time.Duration
	apikey  string
}

func (c *client) GetOrders(ctx bCtx.Ctx, chainId domain.ChainId, opts ...GetOrdersOptionsFunc) (*OrdersResp, error) {
	opt, err := ParseGetOrdersOptions(opts...)
	if err != nil {
		return nil, err
	}

	chainName, ok := chainNames[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}

	side := OrderSideListing
	if opt.Side != nil {
		side = *opt.Side
	}

	base, err := url.Parse(fmt.Sprintf("%s/orders/%s/seaport/%s", v2Api, chainName, side))
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("order_by", "eth_price")

	if opt.Ascending != nil && *opt.Ascending {
		params.Add("order_direction", "asc")
	} else {
		params.Add("order_direction", "desc")
	}

	if opt.ContractAddress != nil {
		params.Add("asset_contract_address", opt.ContractAddress.ToLowerStr())
	}

	if opt.TokenId != nil {
		params.Add("token_ids", string(*opt.TokenId))
	}

	if opt.Limit != nil {
		params.Add("limit", strconv.Itoa(*opt.Limit))
	}

	base.RawQuery = params.Encode()
	url := base.String()

	data, err := c.get(ctx, url)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.get failed")
		return nil, err
	}

	resp := OrdersResp{}
	if err := json.Unmarshal(data, &resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}

	return &resp, nil
}

func (c *client) get(ctx bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequest("GET", url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set(apikeyHeader, c.apikey)
		return req, nil
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return nil, ErrStatusCodeNotOk
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return body, nil
}
