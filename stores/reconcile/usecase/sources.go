package usecase

import (
	"encoding/json"

	bCtx "github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/domain/activity"
	"github.com/nftcom/goledger/service/looksrare"
	"github.com/nftcom/goledger/service/seaport"
	"github.com/nftcom/goledger/service/x2y2"
)

type SeaportSource struct {
	client seaport.Client
}

func NewSeaportSource(client seaport.Client) SeaportSource {
	return SeaportSource{client}
}

func (s SeaportSource) fetchTop(ctx bCtx.Ctx, chainId domain.ChainId, query orderQuery) ([]byte, error) {
	side := seaport.OrderSideListing
	ascending := true
	if query.activityType == activity.ActivityTypeBid {
		side = seaport.OrderSideOffer
		ascending = false
	}

	resp, err := s.client.GetOrders(ctx, chainId,
		seaport.WithContractAddress(query.request.ContractAddress),
		seaport.WithTokenId(query.request.TokenId),
		seaport.WithSide(side),
		seaport.WithAscending(ascending),
		seaport.WithLimit(1),
	)
	if err != nil {
		return nil, err
	}
	if len(resp.Orders) == 0 {
		return nil, nil
	}
	return json.Marshal(resp.Orders[0])
}

type LooksrareSource struct {
	client looksrare.Client
}

func NewLooksrareSource(client looksrare.Client) LooksrareSource {
	return LooksrareSource{client}
}

func (s LooksrareSource) fetchTop(ctx bCtx.Ctx, chainId domain.ChainId, query orderQuery) ([]byte, error) {
	quoteType := looksrare.QuoteTypeAsk
	ascending := true
	if query.activityType == activity.ActivityTypeBid {
		quoteType = looksrare.QuoteTypeBid
		ascending = false
	}

	resp, err := s.client.GetOrders(ctx, chainId,
		looksrare.WithCollection(query.request.ContractAddress),
		looksrare.WithItemId(query.request.TokenId),
		looksrare.WithQuoteType(quoteType),
		looksrare.WithAscending(ascending),
	)
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, nil
	}
	return resp.Data[0].Raw()
}

type X2y2Source struct {
	client x2y2.Client
}

func NewX2y2Source(client x2y2.Client) X2y2Source {
	return X2y2Source{client}
}

func (s X2y2Source) fetchTop(ctx bCtx.Ctx, chainId domain.ChainId, query orderQuery) ([]byte, error) {
	side := x2y2.OrderSideListing
	ascending := true
	if query.activityType == activity.ActivityTypeBid {
		side = x2y2.OrderSideOffer
		ascending = false
	}

	resp, err := s.client.GetOrders(ctx, chainId,
		x2y2.WithContract(query.request.ContractAddress),
		x2y2.WithTokenId(query.request.TokenId),
		x2y2.WithSide(side),
		x2y2.WithAscending(ascending),
		x2y2.WithLimit(1),
	)
	if err != nil {
		return nil, err
	}
	if len(resp.Orders) == 0 {
		return nil, nil
	}
	return resp.Orders[0].Raw()
}
