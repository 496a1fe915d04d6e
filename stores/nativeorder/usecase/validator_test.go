package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/domain/nativeorder"
	mContract "github.com/nftcom/goledger/service/chain/contract/mocks"
)

const bidHash = "0x00000000000000000000000000000000000000000000000000000000000000aa"

func testAsk() *nativeorder.Ask {
	return &nativeorder.Ask{
		Id:           "ask-1",
		StructHash:   "0x00000000000000000000000000000000000000000000000000000000000000bb",
		AuctionType:  nativeorder.AuctionTypeFixedPrice,
		MakerAddress: "0xce4468e7ce84aceb74363f4ea64e5a038176f369",
		MakeAssets: []nativeorder.Asset{
			{Class: nativeorder.AssetClassErc721, ContractAddress: "0xdcf0de6b17785a143d006e1515a6afd123cde8ba", TokenId: "42", Value: "1"},
		},
		TakerAddress: domain.EmptyAddress,
		TakeAssets: []nativeorder.Asset{
			{Class: nativeorder.AssetClassErc20, ContractAddress: "0xb4fbf271143f4fbf7b91a5ded31805e42b2208d6", Value: "1000000000000000000"},
		},
		ChainId: 1,
	}
}

func testBid() *nativeorder.Bid {
	return &nativeorder.Bid{
		Id:           "bid-1",
		AskId:        "ask-1",
		StructHash:   domain.OrderHash(bidHash),
		AuctionType:  nativeorder.AuctionTypeFixedPrice,
		MakerAddress: "0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad",
		MakeAssets: []nativeorder.Asset{
			{Class: nativeorder.AssetClassErc20, ContractAddress: "0xb4fbf271143f4fbf7b91a5ded31805e42b2208d6", Value: "1000000000000000000"},
		},
		TakerAddress: domain.EmptyAddress,
		TakeAssets: []nativeorder.Asset{
			{Class: nativeorder.AssetClassErc721, ContractAddress: "0xdcf0de6b17785a143d006e1515a6afd123cde8ba", TokenId: "42", Value: "1"},
		},
		ChainId: 1,
	}
}

func testValidator(vl *mContract.ValidationLogic, now int64) *validatorImpl {
	return &validatorImpl{
		validationLogic: vl,
		now:             func() time.Time { return time.Unix(now, 0) },
	}
}

func TestValidateBidAgainstAsk(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	vl := &mContract.ValidationLogic{}
	v := testValidator(vl, 2000)

	vl.On("ValidateOrder", ctx, domain.ChainId(1), mock.Anything, mock.Anything).Return(domain.OrderHash(bidHash), nil)
	vl.On("ValidateMatch", ctx, domain.ChainId(1), mock.Anything, mock.Anything).Return(true, nil)

	req.True(v.ValidateBidAgainstAsk(ctx, testAsk(), testBid(), "0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad"))
}

func TestValidateBidHashMismatch(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	vl := &mContract.ValidationLogic{}
	v := testValidator(vl, 2000)

	vl.On("ValidateOrder", ctx, domain.ChainId(1), mock.Anything, mock.Anything).Return(domain.OrderHash("0x00000000000000000000000000000000000000000000000000000000000000cc"), nil)

	req.False(v.ValidateBidAgainstAsk(ctx, testAsk(), testBid(), "0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad"))
	vl.AssertNotCalled(t, "ValidateMatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestValidateBidFailsClosedOnChainError(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	vl := &mContract.ValidationLogic{}
	v := testValidator(vl, 2000)

	vl.On("ValidateOrder", ctx, domain.ChainId(1), mock.Anything, mock.Anything).Return(domain.OrderHash(""), errors.New("execution reverted"))

	req.False(v.ValidateBidAgainstAsk(ctx, testAsk(), testBid(), "0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad"))
}

func TestValidateBidExpiredWindow(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	vl := &mContract.ValidationLogic{}
	v := testValidator(vl, 2000)

	vl.On("ValidateOrder", ctx, domain.ChainId(1), mock.Anything, mock.Anything).Return(domain.OrderHash(bidHash), nil)

	// ask window closed in the past
	ask := testAsk()
	ask.End = 1000
	req.False(v.ValidateBidAgainstAsk(ctx, ask, testBid(), "0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad"))

	// bid not live yet
	bid := testBid()
	bid.Start = 3000
	req.False(v.ValidateBidAgainstAsk(ctx, testAsk(), bid, "0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad"))

	vl.AssertNotCalled(t, "ValidateMatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestValidateBidZeroWindowAlwaysOpen(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	vl := &mContract.ValidationLogic{}
	v := testValidator(vl, 2000)

	vl.On("ValidateOrder", ctx, domain.ChainId(1), mock.Anything, mock.Anything).Return(domain.OrderHash(bidHash), nil)
	vl.On("ValidateMatch", ctx, domain.ChainId(1), mock.Anything, mock.Anything).Return(true, nil)

	ask := testAsk()
	ask.Start = 0
	ask.End = 0
	req.True(v.ValidateBidAgainstAsk(ctx, ask, testBid(), "0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad"))
}

func TestValidateBidTakerRestriction(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	vl := &mContract.ValidationLogic{}
	v := testValidator(vl, 2000)

	vl.On("ValidateOrder", ctx, domain.ChainId(1), mock.Anything, mock.Anything).Return(domain.OrderHash(bidHash), nil)
	vl.On("ValidateMatch", ctx, domain.ChainId(1), mock.Anything, mock.Anything).Return(true, nil)

	// addressed to someone else
	ask := testAsk()
	ask.TakerAddress = "0xce4468e7ce84aceb74363f4ea64e5a038176f369"
	req.False(v.ValidateBidAgainstAsk(ctx, ask, testBid(), "0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad"))

	// addressed to this bidder, mixed case
	ask = testAsk()
	ask.TakerAddress = "0xDF8650b0Ca1260F7a2F4fDff9082AEde554f65Ad"
	req.True(v.ValidateBidAgainstAsk(ctx, ask, testBid(), "0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad"))

	// the wallet submitting the bid is what the restriction checks, not the
	// bid's recorded maker
	ask = testAsk()
	ask.TakerAddress = "0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad"
	req.False(v.ValidateBidAgainstAsk(ctx, ask, testBid(), "0x1111111111111111111111111111111111111111"))
}

func TestValidateBidMatchRejected(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	vl := &mContract.ValidationLogic{}
	v := testValidator(vl, 2000)

	vl.On("ValidateOrder", ctx, domain.ChainId(1), mock.Anything, mock.Anything).Return(domain.OrderHash(bidHash), nil)
	vl.On("ValidateMatch", ctx, domain.ChainId(1), mock.Anything, mock.Anything).Return(false, nil).Once()

	req.False(v.ValidateBidAgainstAsk(ctx, testAsk(), testBid(), "0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad"))

	vl.On("ValidateMatch", ctx, domain.ChainId(1), mock.Anything, mock.Anything).Return(false, errors.New("execution reverted")).Once()

	req.False(v.ValidateBidAgainstAsk(ctx, testAsk(), testBid(), "0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad"))
}
