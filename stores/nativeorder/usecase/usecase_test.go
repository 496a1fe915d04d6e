package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/base/metrics"
	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/domain/nativeorder"
	mNativeorder "github.com/nftcom/goledger/domain/nativeorder/mocks"
)

type useCaseMocks struct {
	askRepo       *mNativeorder.AskRepo
	bidRepo       *mNativeorder.BidRepo
	swapRepo      *mNativeorder.SwapRepo
	validator     *mNativeorder.Validator
	balanceReader *mNativeorder.BalanceReader
}

func testUseCase(now int64) (*nativeOrderUseCaseImpl, *useCaseMocks) {
	m := &useCaseMocks{
		askRepo:       &mNativeorder.AskRepo{},
		bidRepo:       &mNativeorder.BidRepo{},
		swapRepo:      &mNativeorder.SwapRepo{},
		validator:     &mNativeorder.Validator{},
		balanceReader: &mNativeorder.BalanceReader{},
	}
	return &nativeOrderUseCaseImpl{
		askRepo:       m.askRepo,
		bidRepo:       m.bidRepo,
		swapRepo:      m.swapRepo,
		validator:     m.validator,
		balanceReader: m.balanceReader,
		metrics:       metrics.New("nativeorder"),
		now:           func() time.Time { return time.Unix(now, 0) },
	}, m
}

func TestPlaceBidRejections(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	uc, m := testUseCase(2000)

	// unknown ask
	m.askRepo.On("FindOne", ctx, "missing-ask").Return(nil, domain.ErrNotFound).Once()
	bid := *testBid()
	bid.AskId = "missing-ask"
	_, err := uc.PlaceBid(ctx, bid)
	req.ErrorIs(err, domain.ErrNotFound)

	// executed ask rejects with forbidden
	executed := testAsk()
	executed.Executed = true
	m.askRepo.On("FindOne", ctx, "ask-1").Return(executed, nil).Once()
	_, err = uc.PlaceBid(ctx, *testBid())
	req.ErrorIs(err, domain.ErrForbidden)

	// self bid rejects with forbidden
	selfAsk := testAsk()
	m.askRepo.On("FindOne", ctx, "ask-1").Return(selfAsk, nil).Once()
	selfBid := *testBid()
	selfBid.MakerAddress = selfAsk.MakerAddress
	_, err = uc.PlaceBid(ctx, selfBid)
	req.ErrorIs(err, domain.ErrForbidden)

	// failed cross-order validation rejects with validation failed
	m.askRepo.On("FindOne", ctx, "ask-1").Return(testAsk(), nil).Once()
	m.validator.On("ValidateBidAgainstAsk", ctx, mock.Anything, mock.Anything, mock.Anything).Return(false).Once()
	_, err = uc.PlaceBid(ctx, *testBid())
	req.ErrorIs(err, domain.ErrValidationFailed)

	m.bidRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestPlaceBidAccepted(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	uc, m := testUseCase(2000)

	m.askRepo.On("FindOne", ctx, "ask-1").Return(testAsk(), nil).Once()
	m.validator.On("ValidateBidAgainstAsk", ctx, mock.Anything, mock.Anything, mock.Anything).Return(true).Once()
	m.bidRepo.On("Upsert", ctx, mock.AnythingOfType("*nativeorder.Bid")).Return(nil).Once()

	bid := *testBid()
	bid.Start = 1000
	placed, err := uc.PlaceBid(ctx, bid)
	req.NoError(err)
	req.NotEmpty(placed.Id)
	// 1e18 stake live for 1000 seconds
	req.Equal(1e18*1000, placed.Score)

	m.bidRepo.AssertExpectations(t)
}

func TestCreateSwapAtMostOnce(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	uc, m := testUseCase(2000)

	m.askRepo.On("FindOne", ctx, "ask-1").Return(testAsk(), nil)
	m.bidRepo.On("FindOne", ctx, "bid-1").Return(testBid(), nil)
	m.swapRepo.On("Insert", ctx, mock.AnythingOfType("*nativeorder.Swap")).Return(nil).Once()
	m.swapRepo.On("Insert", ctx, mock.AnythingOfType("*nativeorder.Swap")).Return(domain.ErrConflict).Once()

	swap := nativeorder.Swap{AskId: "ask-1", BidId: "bid-1", TxHash: "0xfeed", ChainId: 1}

	first, err := uc.CreateSwap(ctx, swap)
	req.NoError(err)
	req.NotEmpty(first.Id)

	_, err = uc.CreateSwap(ctx, swap)
	req.ErrorIs(err, domain.ErrConflict)

	m.swapRepo.AssertExpectations(t)
}

func TestPruneStaleBids(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	uc, m := testUseCase(2000)

	funded := testBid()
	funded.Id = "bid-funded"
	broke := testBid()
	broke.Id = "bid-broke"
	unreadable := testBid()
	unreadable.Id = "bid-unreadable"

	m.bidRepo.On("FindAll", ctx, mock.AnythingOfType("nativeorder.BidFindAllOptionsFunc")).
		Return([]*nativeorder.Bid{funded, broke, unreadable}, nil).Once()

	token := funded.MakeAssets[0].ContractAddress
	m.balanceReader.On("BalanceOf", ctx, domain.ChainId(1), funded.MakerAddress, token).Return("2000000000000000000", nil).Once()
	m.balanceReader.On("BalanceOf", ctx, domain.ChainId(1), broke.MakerAddress, token).Return("1", nil).Once()
	m.balanceReader.On("BalanceOf", ctx, domain.ChainId(1), unreadable.MakerAddress, token).Return("", domain.ErrStaleLiveness).Once()

	m.bidRepo.On("SoftDelete", ctx, "bid-broke", mock.AnythingOfType("time.Time")).Return(nil).Once()

	pruned, err := uc.PruneStaleBids(ctx, 1)
	req.NoError(err)
	req.Equal(1, pruned)

	m.bidRepo.AssertExpectations(t)
	m.bidRepo.AssertNotCalled(t, "SoftDelete", ctx, "bid-funded", mock.Anything)
	m.bidRepo.AssertNotCalled(t, "SoftDelete", ctx, "bid-unreadable", mock.Anything)
}

func TestPruneStaleBidsNativeCoin(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	uc, m := testUseCase(2000)

	// bids backed by the native coin check the wallet's coin balance, not
	// an erc20 balance on the zero address
	ethBroke := testBid()
	ethBroke.Id = "bid-eth-broke"
	ethBroke.MakeAssets = []nativeorder.Asset{
		{Class: nativeorder.AssetClassEth, Value: "1000000000000000000"},
	}
	ethFunded := testBid()
	ethFunded.Id = "bid-eth-funded"
	ethFunded.MakerAddress = "0x2222222222222222222222222222222222222222"
	ethFunded.MakeAssets = []nativeorder.Asset{
		{Class: nativeorder.AssetClassEth, Value: "1000000000000000000"},
	}

	m.bidRepo.On("FindAll", ctx, mock.AnythingOfType("nativeorder.BidFindAllOptionsFunc")).
		Return([]*nativeorder.Bid{ethBroke, ethFunded}, nil).Once()

	m.balanceReader.On("NativeBalanceOf", ctx, domain.ChainId(1), ethBroke.MakerAddress).Return("1", nil).Once()
	m.balanceReader.On("NativeBalanceOf", ctx, domain.ChainId(1), ethFunded.MakerAddress).Return("2000000000000000000", nil).Once()

	m.bidRepo.On("SoftDelete", ctx, "bid-eth-broke", mock.AnythingOfType("time.Time")).Return(nil).Once()

	pruned, err := uc.PruneStaleBids(ctx, 1)
	req.NoError(err)
	req.Equal(1, pruned)

	m.bidRepo.AssertExpectations(t)
	m.bidRepo.AssertNotCalled(t, "SoftDelete", ctx, "bid-eth-funded", mock.Anything)
	m.balanceReader.AssertNotCalled(t, "BalanceOf", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPruneStaleBidsSkipsAssetlessBid(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	uc, m := testUseCase(2000)

	assetless := testBid()
	assetless.Id = "bid-assetless"
	assetless.MakeAssets = nil

	m.bidRepo.On("FindAll", ctx, mock.AnythingOfType("nativeorder.BidFindAllOptionsFunc")).
		Return([]*nativeorder.Bid{assetless}, nil).Once()

	pruned, err := uc.PruneStaleBids(ctx, 1)
	req.NoError(err)
	req.Zero(pruned)

	m.bidRepo.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything, mock.Anything)
	m.balanceReader.AssertNotCalled(t, "BalanceOf", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	m.balanceReader.AssertNotCalled(t, "NativeBalanceOf", mock.Anything, mock.Anything, mock.Anything)
}
