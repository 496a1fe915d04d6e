package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/base/metrics"
	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/domain/activity"
	mActivity "github.com/nftcom/goledger/domain/activity/mocks"
	mNativeorder "github.com/nftcom/goledger/domain/nativeorder/mocks"
	"github.com/nftcom/goledger/domain/reconcile"
	mReconcile "github.com/nftcom/goledger/domain/reconcile/mocks"
	"github.com/nftcom/goledger/service/nftport"
	mNftport "github.com/nftcom/goledger/service/nftport/mocks"
)

type syncMocks struct {
	seaport            *mReconcile.Fetcher
	looksrare          *mReconcile.Fetcher
	activityUseCase    *mActivity.UseCase
	nativeOrderUseCase *mNativeorder.UseCase
	nftportClient      *mNftport.Client
}

func testSyncUseCase() (*reconcileUseCaseImpl, *syncMocks) {
	m := &syncMocks{
		seaport:            &mReconcile.Fetcher{},
		looksrare:          &mReconcile.Fetcher{},
		activityUseCase:    &mActivity.UseCase{},
		nativeOrderUseCase: &mNativeorder.UseCase{},
		nftportClient:      &mNftport.Client{},
	}
	return &reconcileUseCaseImpl{
		fetchers: map[activity.Protocol]reconcile.Fetcher{
			activity.ProtocolSeaport:   m.seaport,
			activity.ProtocolLooksrare: m.looksrare,
		},
		activityUseCase:    m.activityUseCase,
		nativeOrderUseCase: m.nativeOrderUseCase,
		transactionClient:  m.nftportClient,
		metrics:            metrics.New("reconcile"),
	}, m
}

func TestSyncOrdersRunsEveryProtocol(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	uc, m := testSyncUseCase()
	requests := []reconcile.FetchRequest{{ContractAddress: "0xc0ffee", TokenId: "1"}}

	m.seaport.On("FetchOrders", ctx, domain.ChainId(1), requests, true).
		Return(&reconcile.FetchResult{Listings: []*activity.Order{{}}}, nil).Once()
	m.looksrare.On("FetchOrders", ctx, domain.ChainId(1), requests, true).
		Return(&reconcile.FetchResult{}, nil).Once()

	req.NoError(uc.SyncOrders(ctx, 1, requests, true))
	m.seaport.AssertExpectations(t)
	m.looksrare.AssertExpectations(t)
}

func TestSyncOrdersFailedProtocolDoesNotBlockOthers(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	uc, m := testSyncUseCase()
	requests := []reconcile.FetchRequest{{ContractAddress: "0xc0ffee", TokenId: "1"}}

	m.seaport.On("FetchOrders", ctx, domain.ChainId(1), requests, false).
		Return(nil, errors.New("marketplace down")).Once()
	m.looksrare.On("FetchOrders", ctx, domain.ChainId(1), requests, false).
		Return(&reconcile.FetchResult{}, nil).Once()

	err := uc.SyncOrders(ctx, 1, requests, false)
	req.Error(err)
	m.looksrare.AssertExpectations(t)
}

func TestSyncTransactions(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	uc, m := testSyncUseCase()

	txs := []nftport.Transaction{
		{
			Type:            nftport.TransactionTypeSale,
			Marketplace:     "opensea",
			TransactionHash: "0xsale",
			BlockNumber:     100,
			BuyerAddress:    "0xbuyer",
			SellerAddress:   "0xseller",
			PriceDetails:    &nftport.PriceDetails{Price: 1.5, ContractAddr: "0xweth"},
			Nft:             &nftport.Nft{ContractAddress: "0xc0ffee", TokenId: "42"},
			TransactionDate: "2022-09-19T04:49:13",
		},
		{
			Type:            nftport.TransactionTypeTransfer,
			TransactionHash: "0xmove",
			TransferFrom:    "0xalice",
			TransferTo:      "0xbob",
		},
		// missing hash, skipped
		{Type: nftport.TransactionTypeTransfer},
	}
	m.nftportClient.On("GetTransactionsByContract", ctx, domain.ChainId(1), domain.Address("0xc0ffee"),
		[]nftport.TransactionType{nftport.TransactionTypeSale, nftport.TransactionTypeTransfer}, historyPageSize).
		Return(txs, nil).Once()

	m.activityUseCase.On("BuildTransaction", ctx, activity.ProtocolSeaport, mock.MatchedBy(func(input activity.TransactionInput) bool {
		return input.TransactionType == activity.ActivityTypeSale &&
			input.Price == "1.5" &&
			input.Currency == domain.Address("0xweth") &&
			input.Sender == domain.Address("0xseller") &&
			input.Receiver == domain.Address("0xbuyer") &&
			input.TokenId == domain.TokenId("42")
	})).Return(&activity.Activity{}, &activity.Transaction{}, nil).Once()

	m.activityUseCase.On("BuildTransaction", ctx, activity.ProtocolNative, mock.MatchedBy(func(input activity.TransactionInput) bool {
		return input.TransactionType == activity.ActivityTypeTransfer &&
			input.Sender == domain.Address("0xalice") &&
			input.Receiver == domain.Address("0xbob")
	})).Return(&activity.Activity{}, &activity.Transaction{}, nil).Once()

	landed, err := uc.SyncTransactions(ctx, 1, "0xc0ffee")
	req.NoError(err)
	req.Equal(2, landed)
	m.activityUseCase.AssertExpectations(t)
}

func TestSyncTransactionsUpstreamFailure(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	uc, m := testSyncUseCase()

	m.nftportClient.On("GetTransactionsByContract", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("http.status != 200")).Once()

	_, err := uc.SyncTransactions(ctx, 1, "0xc0ffee")
	req.ErrorIs(err, domain.ErrExternalAPI)
	m.activityUseCase.AssertNotCalled(t, "BuildTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func TestSyncNativeLiveness(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	uc, m := testSyncUseCase()

	m.nativeOrderUseCase.On("PruneStaleBids", ctx, domain.ChainId(1)).Return(3, nil).Once()

	pruned, err := uc.SyncNativeLiveness(ctx, 1)
	req.NoError(err)
	req.Equal(3, pruned)
}
