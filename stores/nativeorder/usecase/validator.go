package usecase

import (
	"strings"
	"time"

	bCtx "github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/base/log"
	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/domain/nativeorder"
	"github.com/nftcom/goledger/service/chain/contract"
)

type validatorImpl struct {
	validationLogic contract.ValidationLogic
	now             func() time.Time
}

// NewValidator builds the advisory cross-order validator. Every failure path
// returns false, never an error: a reverted call or malformed order rejects
// the one bid under validation and nothing else.
func NewValidator(validationLogic contract.ValidationLogic) nativeorder.Validator {
	return &validatorImpl{
		validationLogic: validationLogic,
		now:             time.Now,
	}
}

func (v *validatorImpl) ValidateBidAgainstAsk(ctx bCtx.Ctx, ask *nativeorder.Ask, bid *nativeorder.Bid, wallet domain.Address) bool {
	if ask == nil || bid == nil {
		return false
	}

	// stage 1: the chain recomputes the struct hash from the submitted
	// fields; a mismatch means the bid does not describe the order it
	// claims to
	bidOrder, bidSig, err := contract.OrderFromBid(bid)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"bidId": bid.Id,
		}).Warn("bid has malformed assets")
		return false
	}

	recomputed, err := v.validationLogic.ValidateOrder(ctx, bid.ChainId, bidOrder, bidSig)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"bidId": bid.Id,
		}).Warn("validateOrder_ call failed")
		return false
	}
	if !strings.EqualFold(string(recomputed), string(bid.StructHash)) {
		ctx.WithFields(log.Fields{
			"bidId":      bid.Id,
			"claimed":    bid.StructHash,
			"recomputed": recomputed,
		}).Warn("struct hash mismatch")
		return false
	}

	// stage 2: both windows live, taker open or addressed to the wallet
	// placing the bid, and the chain agrees the asset lists can settle
	now := v.now().Unix()
	if !windowLive(ask.Start, ask.End, now) || !windowLive(bid.Start, bid.End, now) {
		return false
	}

	if !ask.TakerAddress.IsEmpty() && !ask.TakerAddress.Equals(wallet) {
		return false
	}

	askOrder, _, err := contract.OrderFromAsk(ask)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"askId": ask.Id,
		}).Warn("ask has malformed assets")
		return false
	}

	ok, err := v.validationLogic.ValidateMatch(ctx, ask.ChainId, askOrder, bidOrder)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"askId": ask.Id,
			"bidId": bid.Id,
		}).Warn("validateMatch_ call failed")
		return false
	}
	return ok
}

// zero on either bound means that bound is always open
func windowLive(start, end, now int64) bool {
	if start != 0 && start >= now {
		return false
	}
	if end != 0 && end <= now {
		return false
	}
	return true
}
