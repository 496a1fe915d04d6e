package looksrare

import (
	"encoding/json"
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
	apikeyHeader = "X-Looks-Api-Key"
	v2Api        = "https://api.looksrare.org/api/v2"
)

// looksrare only serves these chains; anything else short-circuits to an
// empty response
var supportedChains = map[domain.ChainId]bool{
	1: true,
	5: true,
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

	if !supportedChains[chainId] {
		return &OrdersResp{Success: true}, nil
	}

	base, err := url.Parse(v2Api + "/orders")
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("status", "VALID")

	if opt.Ascending != nil && *opt.Ascending {
		params.Add("sort", "PRICE_ASC")
	} else {
		params.Add("sort", "PRICE_DESC")
	}

	if opt.Collection != nil {
		params.Add("collection", opt.Collection.ToLowerStr())
	}

	if opt.ItemId != nil {
		params.Add("itemId", string(*opt.ItemId))
	}

	if opt.QuoteType != nil {
		params.Add("quoteType", strconv.Itoa(int(*opt.QuoteType)))
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
		if c.apikey != "" {
			req.Header.Set(apikeyHeader, c.apikey)
		}
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
