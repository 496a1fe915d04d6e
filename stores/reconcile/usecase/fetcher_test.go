package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/domain/activity"
	mActivity "github.com/nftcom/goledger/domain/activity/mocks"
	"github.com/nftcom/goledger/domain/reconcile"
)

type stubSource struct {
	seen    []orderQuery
	failing map[domain.TokenId]bool
	empty   map[domain.TokenId]bool
}

func (s *stubSource) fetchTop(ctx bCtx.Ctx, chainId domain.ChainId, query orderQuery) ([]byte, error) {
	s.seen = append(s.seen, query)
	if s.failing[query.request.TokenId] {
		return nil, errors.New("marketplace down")
	}
	if s.empty[query.request.TokenId] {
		return nil, nil
	}
	return []byte(`{"order":"` + string(query.request.TokenId) + `"}`), nil
}

func testFetcher(source orderSource, activityUseCase activity.UseCase) (*fetcherImpl, *int) {
	f := newFetcher(activity.ProtocolSeaport, source, activityUseCase)
	sleeps := 0
	f.sleep = func(bCtx.Ctx, time.Duration) { sleeps++ }
	return f, &sleeps
}

func testRequests(tokenIds ...domain.TokenId) []reconcile.FetchRequest {
	requests := make([]reconcile.FetchRequest, 0, len(tokenIds))
	for _, tokenId := range tokenIds {
		requests = append(requests, reconcile.FetchRequest{
			ContractAddress: "0xc0ffee",
			TokenId:         tokenId,
		})
	}
	return requests
}

func TestFetchOrdersToleratesFailedQueries(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	source := &stubSource{
		failing: map[domain.TokenId]bool{"2": true},
	}
	uc := &mActivity.UseCase{}
	uc.On("BuildOrder", ctx, activity.ProtocolSeaport, activity.ActivityTypeListing, mock.Anything, domain.ChainId(1), domain.Address("0xc0ffee")).
		Return(&activity.Activity{}, &activity.Order{}, nil)

	f, _ := testFetcher(source, uc)
	result, err := f.FetchOrders(ctx, 1, testRequests("1", "2", "3", "4", "5"), false)
	req.NoError(err)

	// the failed query is skipped, the other four still land
	req.Len(result.Listings, 4)
	req.Len(result.Offers, 0)
	req.Len(source.seen, 5)
	uc.AssertNumberOfCalls(t, "BuildOrder", 4)
}

func TestFetchOrdersSkipsEmptyMarketplace(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	source := &stubSource{
		empty: map[domain.TokenId]bool{"1": true},
	}
	uc := &mActivity.UseCase{}

	f, _ := testFetcher(source, uc)
	result, err := f.FetchOrders(ctx, 1, testRequests("1"), false)
	req.NoError(err)
	req.Empty(result.Listings)
	uc.AssertNotCalled(t, "BuildOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFetchOrdersLifoAndOffers(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	source := &stubSource{}
	uc := &mActivity.UseCase{}
	uc.On("BuildOrder", ctx, activity.ProtocolSeaport, mock.Anything, mock.Anything, domain.ChainId(1), domain.Address("0xc0ffee")).
		Return(&activity.Activity{}, &activity.Order{}, nil)

	f, _ := testFetcher(source, uc)
	result, err := f.FetchOrders(ctx, 1, testRequests("1", "2"), true)
	req.NoError(err)
	req.Len(result.Listings, 2)
	req.Len(result.Offers, 2)

	// last pushed is processed first
	req.Equal(domain.TokenId("2"), source.seen[0].request.TokenId)
	req.Equal(activity.ActivityTypeBid, source.seen[0].activityType)
	req.Equal(domain.TokenId("1"), source.seen[3].request.TokenId)
	req.Equal(activity.ActivityTypeListing, source.seen[3].activityType)
}

func TestFetchOrdersThrottlesBetweenBatches(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	source := &stubSource{}
	uc := &mActivity.UseCase{}
	uc.On("BuildOrder", ctx, activity.ProtocolSeaport, mock.Anything, mock.Anything, domain.ChainId(1), domain.Address("0xc0ffee")).
		Return(&activity.Activity{}, &activity.Order{}, nil)

	f, sleeps := testFetcher(source, uc)
	f.batchSize = 2

	_, err := f.FetchOrders(ctx, 1, testRequests("1", "2", "3", "4", "5"), false)
	req.NoError(err)
	// batches of 2 over 5 queries, no sleep after the final query
	req.Equal(2, *sleeps)
}

func TestFetchOrdersStopsOnCancel(t *testing.T) {
	req := require.New(t)

	ctx, cancel := bCtx.WithCancel(bCtx.Background())
	cancel()

	source := &stubSource{}
	uc := &mActivity.UseCase{}

	f, _ := testFetcher(source, uc)
	result, err := f.FetchOrders(ctx, 1, testRequests("1", "2"), false)
	req.Error(err)
	req.Empty(result.Listings)
	req.Empty(source.seen)
	uc.AssertNotCalled(t, "BuildOrder", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
