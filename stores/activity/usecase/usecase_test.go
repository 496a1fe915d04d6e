package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/domain/activity"
	mActivity "github.com/nftcom/goledger/domain/activity/mocks"
)

var seaportListing = []byte(`{
	"order_hash": "0xabc0000000000000000000000000000000000000000000000000000000000001",
	"listing_time": 1660000000,
	"expiration_time": 1670000000,
	"maker": {"address": "0xCE4468e7cE84aceb74363F4EA64e5A038176F369"},
	"taker": null,
	"protocol_data": {
		"parameters": {
			"offer": [
				{"token": "0xdcf0de6b17785a143d006e1515a6afd123cde8ba", "identifierOrCriteria": "42"}
			],
			"consideration": [
				{"token": "0x0000000000000000000000000000000000000000", "identifierOrCriteria": "0", "startAmount": "1000000000000000000"}
			]
		}
	}
}`)

func TestBuildOrderIdempotent(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	activityRepo := &mActivity.Repo{}
	orderRepo := &mActivity.OrderRepo{}
	uc := NewActivityUseCase(activityRepo, orderRepo, &mActivity.CancelRepo{}, &mActivity.TransactionRepo{})

	chainId := domain.ChainId(1)
	hash := "0xabc0000000000000000000000000000000000000000000000000000000000001"
	contract := domain.Address("0xdcf0de6b17785a143d006e1515a6afd123cde8ba")

	// first ingestion: nothing stored yet
	activityRepo.On("FindByTypeId", ctx, chainId, hash).Return(nil, domain.ErrNotFound).Once()
	activityRepo.On("Upsert", ctx, mock.AnythingOfType("*activity.Activity")).Return(nil).Once()
	orderRepo.On("Upsert", ctx, mock.AnythingOfType("*activity.Order")).Return(nil).Twice()

	first, firstOrder, err := uc.BuildOrder(ctx, activity.ProtocolSeaport, activity.ActivityTypeListing, seaportListing, chainId, contract)
	req.NoError(err)
	req.NotEmpty(first.Id)
	req.Equal(hash, first.ActivityTypeId)
	req.Equal(domain.OrderHash(hash), firstOrder.OrderHash)
	req.Equal(first.Id, firstOrder.ActivityId)
	req.Equal([]domain.NftKey{domain.MakeNftKey("ethereum", contract, "42")}, first.NftIds)

	// second ingestion resolves to the stored activity, no new insert
	activityRepo.On("FindByTypeId", ctx, chainId, hash).Return(first, nil).Once()

	second, _, err := uc.BuildOrder(ctx, activity.ProtocolSeaport, activity.ActivityTypeListing, seaportListing, chainId, contract)
	req.NoError(err)
	req.Equal(first.Id, second.Id)

	activityRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
}

func TestBuildOrderMalformed(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	activityRepo := &mActivity.Repo{}
	uc := NewActivityUseCase(activityRepo, &mActivity.OrderRepo{}, &mActivity.CancelRepo{}, &mActivity.TransactionRepo{})

	_, _, err := uc.BuildOrder(ctx, activity.ProtocolSeaport, activity.ActivityTypeListing, []byte(`{"maker":{}}`), 1, "0xdcf0de6b17785a143d006e1515a6afd123cde8ba")
	req.ErrorIs(err, domain.ErrMalformedOrder)

	_, _, err = uc.BuildOrder(ctx, activity.ProtocolSeaport, activity.ActivityTypeListing, []byte(`not json`), 1, "0xdcf0de6b17785a143d006e1515a6afd123cde8ba")
	req.ErrorIs(err, domain.ErrMalformedOrder)

	_, _, err = uc.BuildOrder(ctx, activity.Protocol("rarible"), activity.ActivityTypeListing, seaportListing, 1, "0xdcf0de6b17785a143d006e1515a6afd123cde8ba")
	req.ErrorIs(err, domain.ErrInvalidProtocol)

	activityRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestBuildCancelUnknownOrder(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	orderRepo := &mActivity.OrderRepo{}
	cancelRepo := &mActivity.CancelRepo{}
	uc := NewActivityUseCase(&mActivity.Repo{}, orderRepo, cancelRepo, &mActivity.TransactionRepo{})

	orderRepo.On("FindByHash", ctx, domain.ChainId(1), domain.OrderHash("0xdead")).Return(nil, domain.ErrNotFound).Once()

	_, _, err := uc.BuildCancel(ctx, activity.ProtocolLooksrare, activity.CancelInput{
		Exchange:        "looksrare",
		ForeignType:     activity.ActivityTypeListing,
		OrderHash:       domain.OrderHash("0xdead"),
		TransactionHash: domain.TxHash("0xbeef"),
		ChainId:         1,
	})
	req.ErrorIs(err, domain.ErrNotFound)
	cancelRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestBuildCancelMarksPriorCancelled(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	activityRepo := &mActivity.Repo{}
	orderRepo := &mActivity.OrderRepo{}
	cancelRepo := &mActivity.CancelRepo{}
	ingestedAt := time.Unix(1665000000, 0)
	uc := &activityUseCaseImpl{
		activityRepo:    activityRepo,
		orderRepo:       orderRepo,
		cancelRepo:      cancelRepo,
		transactionRepo: &mActivity.TransactionRepo{},
		now:             func() time.Time { return ingestedAt },
	}

	chainId := domain.ChainId(1)
	orderHash := domain.OrderHash("0xabc")
	txHash := domain.TxHash("0xbeef")

	prior := &activity.Activity{
		Id:             "prior-activity",
		ActivityType:   activity.ActivityTypeListing,
		ActivityTypeId: string(orderHash),
		Status:         activity.ActivityStatusValid,
		ChainId:        chainId,
		NftIds:         []domain.NftKey{"ethereum/0xdcf0de6b17785a143d006e1515a6afd123cde8ba/42"},
		Timestamp:      time.Unix(1660000000, 0).UTC(),
	}
	priorOrder := &activity.Order{
		ActivityId:   prior.Id,
		OrderHash:    orderHash,
		MakerAddress: "0xce4468e7ce84aceb74363f4ea64e5a038176f369",
		ChainId:      chainId,
	}

	orderRepo.On("FindByHash", ctx, chainId, orderHash).Return(priorOrder, nil).Once()
	activityRepo.On("FindByTypeId", ctx, chainId, string(orderHash)).Return(prior, nil).Once()
	activityRepo.On("FindByTypeId", ctx, chainId, string(txHash)).Return(nil, domain.ErrNotFound).Once()
	activityRepo.On("Upsert", ctx, mock.AnythingOfType("*activity.Activity")).Return(nil).Once()
	cancelRepo.On("Upsert", ctx, mock.AnythingOfType("*activity.Cancel")).Return(nil).Once()
	activityRepo.On("Update", ctx, prior.ToId(), mock.AnythingOfType("activity.ActivityPatchable")).Return(nil).Once()

	act, cancel, err := uc.BuildCancel(ctx, activity.ProtocolLooksrare, activity.CancelInput{
		Exchange:        "looksrare",
		ForeignType:     activity.ActivityTypeListing,
		OrderHash:       orderHash,
		TransactionHash: txHash,
		ChainId:         chainId,
	})
	req.NoError(err)
	req.Equal(activity.ActivityTypeCancel, act.ActivityType)
	req.Equal(prior.Id, cancel.ForeignKeyId)
	// stamped with ingestion time so the feed sorts the cancel after the
	// order it cancels
	req.Equal(ingestedAt.UTC(), act.Timestamp)
	req.NotEqual(prior.Timestamp, act.Timestamp)

	activityRepo.AssertExpectations(t)
	cancelRepo.AssertExpectations(t)
}

func TestBuildTransaction(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	activityRepo := &mActivity.Repo{}
	transactionRepo := &mActivity.TransactionRepo{}
	uc := NewActivityUseCase(activityRepo, &mActivity.OrderRepo{}, &mActivity.CancelRepo{}, transactionRepo)

	chainId := domain.ChainId(1)
	txHash := domain.TxHash("0xfeed")

	activityRepo.On("FindByTypeId", ctx, chainId, string(txHash)).Return(nil, domain.ErrNotFound).Once()
	activityRepo.On("Upsert", ctx, mock.AnythingOfType("*activity.Activity")).Return(nil).Once()
	transactionRepo.On("Upsert", ctx, mock.AnythingOfType("*activity.Transaction")).Return(nil).Once()

	act, tx, err := uc.BuildTransaction(ctx, activity.ProtocolSeaport, activity.TransactionInput{
		Exchange:        "opensea",
		TransactionType: activity.ActivityTypePurchase,
		Price:           "1000000000000000000",
		Currency:        "0x0000000000000000000000000000000000000000",
		TransactionHash: txHash,
		BlockNumber:     "15000000",
		ContractAddress: "0xDCF0de6b17785a143D006E1515A6aFD123cDE8ba",
		TokenId:         "42",
		Sender:          "0xce4468e7ce84aceb74363f4ea64e5a038176f369",
		Receiver:        "0xDF8650b0Ca1260F7a2F4fDff9082AEde554f65Ad",
		Timestamp:       time.Unix(1660000000, 0).UTC(),
		ChainId:         chainId,
	})
	req.NoError(err)
	req.Equal(activity.ActivityStatusExecuted, act.Status)
	// purchase is attributed to the buyer
	req.Equal(domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad"), act.WalletAddress)
	req.Equal(domain.Address("0xdcf0de6b17785a143d006e1515a6afd123cde8ba"), tx.NftContractAddress)

	activityRepo.AssertExpectations(t)
	transactionRepo.AssertExpectations(t)
}
