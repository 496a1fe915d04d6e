package nftport

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	bCtx "github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/base/httpretry"
	"github.com/nftcom/goledger/base/log"
	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/service/cache"
)

const (
	authHeader = "Authorization"
	v0Api      = "https://api.nftport.xyz/v0"
)

var chainNames = map[domain.ChainId]string{
	1:   "ethereum",
	5:   "goerli",
	137: "polygon",
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
		cache:   cfg.Cache,
	}
}

type client struct {
	client  *httpretry.Client
	timeout time.Duration
	apikey  string
	cache   cache.Service
}

func (c *client) GetTransactionsByContract(ctx bCtx.Ctx, chainId domain.ChainId, contract domain.Address, types []TransactionType, pageSize int) ([]Transaction, error) {
	endpoint := fmt.Sprintf("%s/transactions/nfts/%s", v0Api, contract.ToLowerStr())
	return c.getAllPages(ctx, chainId, endpoint, types, pageSize)
}

func (c *client) GetTransactionsByNft(ctx bCtx.Ctx, chainId domain.ChainId, contract domain.Address, tokenId domain.TokenId, types []TransactionType, pageSize int) ([]Transaction, error) {
	endpoint := fmt.Sprintf("%s/transactions/nfts/%s/%s", v0Api, contract.ToLowerStr(), tokenId)
	return c.getAllPages(ctx, chainId, endpoint, types, pageSize)
}

func (c *client) getAllPages(ctx bCtx.Ctx, chainId domain.ChainId, endpoint string, types []TransactionType, pageSize int) ([]Transaction, error) {
	chainName, ok := chainNames[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}

	var txs []Transaction
	continuation := ""
	for {
		resp, err := c.getPage(ctx, chainName, endpoint, types, continuation, pageSize)
		if err != nil {
			ctx.WithFields(log.Fields{
				"endpoint":     endpoint,
				"continuation": continuation,
				"err":          err,
			}).Error("c.getPage failed")
			return nil, err
		}
		txs = append(txs, resp.Transactions...)
		if resp.Continuation == "" {
			break
		}
		continuation = resp.Continuation
	}
	return txs, nil
}

func (c *client) getPage(ctx bCtx.Ctx, chainName, endpoint string, types []TransactionType, continuation string, pageSize int) (*TransactionsResp, error) {
	base, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Add("chain", chainName)
	for _, t := range types {
		params.Add("type", string(t))
	}
	if continuation != "" {
		params.Add("continuation", continuation)
	}
	if pageSize > 0 {
		params.Add("page_size", strconv.Itoa(pageSize))
	}

	base.RawQuery = params.Encode()
	url := base.String()

	if c.cache == nil {
		return c.fetchPage(ctx, url)
	}

	key := pageKey(endpoint, chainName, types, continuation, pageSize)
	resp := &TransactionsResp{}
	err = c.cache.GetByFunc(ctx, key, resp, func() (interface{}, error) {
		return c.fetchPage(ctx, url)
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func pageKey(endpoint, chainName string, types []TransactionType, continuation string, pageSize int) string {
	parts := []string{endpoint, chainName}
	for _, t := range types {
		parts = append(parts, string(t))
	}
	parts = append(parts, continuation, strconv.Itoa(pageSize))
	return strings.Join(parts, ":")
}

func (c *client) fetchPage(ctx bCtx.Ctx, url string) (*TransactionsResp, error) {
	data, err := c.get(ctx, url)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("c.get failed")
		return nil, err
	}
	resp := &TransactionsResp{}
	if err := json.Unmarshal(data, resp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return resp, nil
}

func (c *client) get(ctx bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Do(ctx, func() (*http.Request, error) {
		req, err := http.NewRequest("GET", url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set(authHeader, c.apikey)
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
