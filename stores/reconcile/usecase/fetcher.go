package usecase

import (
	"time"

	bCtx "github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/base/log"
	"github.com/nftcom/goledger/base/metrics"
	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/domain/activity"
	"github.com/nftcom/goledger/domain/reconcile"
)

const (
	defaultBatchSize = 4
	defaultThrottle  = time.Second
)

type orderQuery struct {
	request      reconcile.FetchRequest
	activityType activity.ActivityType
}

// orderSource adapts one marketplace client to the worklist engine. It
// returns the raw payload of the best-priced order for one query, or nil
// when the marketplace has none.
type orderSource interface {
	fetchTop(ctx bCtx.Ctx, chainId domain.ChainId, query orderQuery) ([]byte, error)
}

type fetcherImpl struct {
	protocol        activity.Protocol
	source          orderSource
	activityUseCase activity.UseCase
	metrics         metrics.Service
	batchSize       int
	throttle        time.Duration
	sleep           func(bCtx.Ctx, time.Duration)
}

func newFetcher(protocol activity.Protocol, source orderSource, activityUseCase activity.UseCase) *fetcherImpl {
	return &fetcherImpl{
		protocol:        protocol,
		source:          source,
		activityUseCase: activityUseCase,
		metrics:         metrics.New("fetcher." + string(protocol)),
		batchSize:       defaultBatchSize,
		throttle:        defaultThrottle,
		sleep:           sleepCtx,
	}
}

// NewSeaportFetcher reconciles seaport orders into the ledger.
func NewSeaportFetcher(client SeaportSource, activityUseCase activity.UseCase) reconcile.Fetcher {
	return newFetcher(activity.ProtocolSeaport, client, activityUseCase)
}

// NewLooksrareFetcher reconciles looksrare v2 orders into the ledger.
func NewLooksrareFetcher(client LooksrareSource, activityUseCase activity.UseCase) reconcile.Fetcher {
	return newFetcher(activity.ProtocolLooksrare, client, activityUseCase)
}

// NewX2y2Fetcher reconciles x2y2 orders into the ledger.
func NewX2y2Fetcher(client X2y2Source, activityUseCase activity.UseCase) reconcile.Fetcher {
	return newFetcher(activity.ProtocolX2Y2, client, activityUseCase)
}

// FetchOrders processes the worklist LIFO, one query at a time, sleeping
// after every batch to stay under marketplace rate limits. Listings are
// queried ascending and offers descending so the top of the first page is
// the best order either way.
func (f *fetcherImpl) FetchOrders(ctx bCtx.Ctx, chainId domain.ChainId, requests []reconcile.FetchRequest, includeOffers bool) (*reconcile.FetchResult, error) {
	worklist := make([]orderQuery, 0, len(requests)*2)
	for _, request := range requests {
		worklist = append(worklist, orderQuery{request, activity.ActivityTypeListing})
		if includeOffers {
			worklist = append(worklist, orderQuery{request, activity.ActivityTypeBid})
		}
	}

	result := &reconcile.FetchResult{}
	processed := 0
	failed := 0
	for len(worklist) > 0 {
		// a job may be stopped between iterations, in-flight calls run to
		// completion
		if err := ctx.Err(); err != nil {
			return result, err
		}

		query := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		if err := f.fetchOne(ctx, chainId, query, result); err != nil {
			failed++
			ctx.WithFields(log.Fields{
				"err":      err,
				"protocol": f.protocol,
				"contract": query.request.ContractAddress,
				"tokenId":  query.request.TokenId,
			}).Warn("query failed, continuing worklist")
		}

		processed++
		if processed%f.batchSize == 0 && len(worklist) > 0 {
			f.sleep(ctx, f.throttle)
		}
	}

	f.metrics.BumpSum("queries.failed", float64(failed))
	f.metrics.BumpSum("queries.processed", float64(processed))
	return result, nil
}

func (f *fetcherImpl) fetchOne(ctx bCtx.Ctx, chainId domain.ChainId, query orderQuery, result *reconcile.FetchResult) error {
	raw, err := f.source.fetchTop(ctx, chainId, query)
	if err != nil {
		return err
	}
	if raw == nil {
		return nil
	}

	_, order, err := f.activityUseCase.BuildOrder(ctx, f.protocol, query.activityType, raw, chainId, query.request.ContractAddress)
	if err != nil {
		return err
	}

	if query.activityType == activity.ActivityTypeListing {
		result.Listings = append(result.Listings, order)
	} else {
		result.Offers = append(result.Offers, order)
	}
	return nil
}

func sleepCtx(ctx bCtx.Ctx, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
