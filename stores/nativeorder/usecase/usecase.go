package usecase

import (
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/base/log"
	"github.com/nftcom/goledger/base/metrics"
	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/domain/nativeorder"
)

type nativeOrderUseCaseImpl struct {
	askRepo       nativeorder.AskRepo
	bidRepo       nativeorder.BidRepo
	swapRepo      nativeorder.SwapRepo
	validator     nativeorder.Validator
	balanceReader nativeorder.BalanceReader
	metrics       metrics.Service
	now           func() time.Time
}

func NewNativeOrderUseCase(askRepo nativeorder.AskRepo, bidRepo nativeorder.BidRepo, swapRepo nativeorder.SwapRepo, validator nativeorder.Validator, balanceReader nativeorder.BalanceReader) nativeorder.UseCase {
	return &nativeOrderUseCaseImpl{
		askRepo:       askRepo,
		bidRepo:       bidRepo,
		swapRepo:      swapRepo,
		validator:     validator,
		balanceReader: balanceReader,
		metrics:       metrics.New("nativeorder"),
		now:           time.Now,
	}
}

func (im *nativeOrderUseCaseImpl) GetAsk(ctx ctx.Ctx, id string) (*nativeorder.Ask, error) {
	return im.askRepo.FindOne(ctx, id)
}

func (im *nativeOrderUseCaseImpl) PlaceAsk(ctx ctx.Ctx, ask nativeorder.Ask) (*nativeorder.Ask, error) {
	if ask.StructHash == "" || ask.MakerAddress.IsEmpty() || len(ask.MakeAssets) == 0 || len(ask.TakeAssets) == 0 {
		return nil, domain.ErrMalformedOrder
	}

	// the same signed order resubmitted resolves to the stored ask
	existing, err := im.askRepo.FindByStructHash(ctx, ask.ChainId, ask.StructHash)
	if err == nil {
		return existing, nil
	} else if err != domain.ErrNotFound {
		return nil, err
	}

	ask.Id = uuid.New().String()
	ask.MakerAddress = ask.MakerAddress.ToLower()
	ask.TakerAddress = ask.TakerAddress.ToLower()
	ask.CreatedAt = im.now().UTC()
	if err := im.askRepo.Upsert(ctx, &ask); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"ask": ask,
		}).Error("askRepo.Upsert failed")
		return nil, err
	}
	im.metrics.BumpSum("ask.placed", 1)
	return &ask, nil
}

func (im *nativeOrderUseCaseImpl) PlaceBid(ctx ctx.Ctx, bid nativeorder.Bid) (*nativeorder.Bid, error) {
	if bid.StructHash == "" || bid.MakerAddress.IsEmpty() || len(bid.MakeAssets) == 0 {
		return nil, domain.ErrMalformedOrder
	}

	ask, err := im.askRepo.FindOne(ctx, bid.AskId)
	if err == domain.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		return nil, err
	}

	if ask.Executed {
		return nil, domain.ErrForbidden
	}
	if ask.MakerAddress.Equals(bid.MakerAddress) {
		// the asker cannot bid on their own order
		return nil, domain.ErrForbidden
	}

	if !im.validator.ValidateBidAgainstAsk(ctx, ask, &bid, bid.MakerAddress) {
		im.metrics.BumpSum("bid.rejected", 1)
		return nil, domain.ErrValidationFailed
	}

	bid.Id = uuid.New().String()
	bid.MakerAddress = bid.MakerAddress.ToLower()
	bid.TakerAddress = bid.TakerAddress.ToLower()
	bid.CreatedAt = im.now().UTC()
	bid.Score = bidScore(&bid, im.now().Unix())
	if err := im.bidRepo.Upsert(ctx, &bid); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"bid": bid,
		}).Error("bidRepo.Upsert failed")
		return nil, err
	}
	im.metrics.BumpSum("bid.placed", 1)
	return &bid, nil
}

func (im *nativeOrderUseCaseImpl) CreateSwap(ctx ctx.Ctx, swap nativeorder.Swap) (*nativeorder.Swap, error) {
	if _, err := im.askRepo.FindOne(ctx, swap.AskId); err != nil {
		return nil, err
	}
	if _, err := im.bidRepo.FindOne(ctx, swap.BidId); err != nil {
		return nil, err
	}

	swap.Id = uuid.New().String()
	swap.CreatedAt = im.now().UTC()
	err := im.swapRepo.Insert(ctx, &swap)
	if err == domain.ErrConflict {
		// the pair already settled once, the first swap wins
		return nil, domain.ErrConflict
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"swap": swap,
		}).Error("swapRepo.Insert failed")
		return nil, err
	}
	im.metrics.BumpSum("swap.created", 1)
	return &swap, nil
}

func (im *nativeOrderUseCaseImpl) MarkAskExecuted(ctx ctx.Ctx, askId string, txHash domain.TxHash) error {
	err := im.askRepo.MarkExecuted(ctx, askId)
	if err == domain.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"askId":  askId,
			"txHash": txHash,
		}).Error("askRepo.MarkExecuted failed")
		return err
	}
	return nil
}

func (im *nativeOrderUseCaseImpl) PruneStaleBids(ctx ctx.Ctx, chainId domain.ChainId) (int, error) {
	bids, err := im.bidRepo.FindAll(ctx, nativeorder.BidWithChainId(chainId))
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
		}).Error("bidRepo.FindAll failed")
		return 0, err
	}

	pruned := 0
	now := im.now().UTC()
	for _, bid := range bids {
		stale, err := im.isBidStale(ctx, bid)
		if err != nil {
			// a failed balance read never prunes, only a confirmed
			// shortfall does
			ctx.WithFields(log.Fields{
				"err":   err,
				"bidId": bid.Id,
			}).Warn("liveness check skipped")
			continue
		}
		if !stale {
			continue
		}
		if err := im.bidRepo.SoftDelete(ctx, bid.Id, now); err != nil {
			ctx.WithFields(log.Fields{
				"err":   err,
				"bidId": bid.Id,
			}).Error("bidRepo.SoftDelete failed")
			continue
		}
		pruned++
	}
	im.metrics.BumpSum("bid.pruned", float64(pruned))
	return pruned, nil
}

// isBidStale reports whether the wallet backing a bid no longer holds the
// payment it promised.
func (im *nativeOrderUseCaseImpl) isBidStale(ctx ctx.Ctx, bid *nativeorder.Bid) (bool, error) {
	if len(bid.MakeAssets) == 0 {
		return false, domain.ErrMalformedOrder
	}
	asset := bid.MakeAssets[0]

	price, ok := new(big.Int).SetString(asset.Value, 10)
	if !ok {
		return false, domain.ErrInvalidNumberFormat
	}

	var raw string
	var err error
	if asset.Class == nativeorder.AssetClassEth {
		raw, err = im.balanceReader.NativeBalanceOf(ctx, bid.ChainId, bid.MakerAddress)
	} else {
		raw, err = im.balanceReader.BalanceOf(ctx, bid.ChainId, bid.MakerAddress, asset.ContractAddress)
	}
	if err != nil {
		return false, domain.ErrStaleLiveness
	}
	balance, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return false, domain.ErrInvalidNumberFormat
	}

	return balance.Cmp(price) < 0, nil
}

// bidScore weighs the bid's stake by how long it has been live. The formula
// is provisional until leaderboard scoring settles.
func bidScore(bid *nativeorder.Bid, now int64) float64 {
	stake := decimal.Zero
	for _, asset := range bid.MakeAssets {
		v, err := decimal.NewFromString(asset.Value)
		if err != nil {
			continue
		}
		stake = stake.Add(v)
	}

	liveSeconds := int64(0)
	if bid.Start > 0 && bid.Start < now {
		liveSeconds = now - bid.Start
	}
	return stake.InexactFloat64() * float64(liveSeconds)
}
