package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/base/log"
	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/domain/activity"
)

type activityUseCaseImpl struct {
	activityRepo    activity.Repo
	orderRepo       activity.OrderRepo
	cancelRepo      activity.CancelRepo
	transactionRepo activity.TransactionRepo
	now             func() time.Time
}

func NewActivityUseCase(activityRepo activity.Repo, orderRepo activity.OrderRepo, cancelRepo activity.CancelRepo, transactionRepo activity.TransactionRepo) activity.UseCase {
	return &activityUseCaseImpl{
		activityRepo:    activityRepo,
		orderRepo:       orderRepo,
		cancelRepo:      cancelRepo,
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
}

// resolveActivity looks up the canonical activity for an idempotency key,
// creating one when it does not exist yet. The returned activity keeps its
// original id across repeated ingestion of the same external order.
func (im *activityUseCaseImpl) resolveActivity(ctx ctx.Ctx, draft *activity.Activity) (*activity.Activity, error) {
	existing, err := im.activityRepo.FindByTypeId(ctx, draft.ChainId, draft.ActivityTypeId)
	if err == nil {
		return existing, nil
	} else if err != domain.ErrNotFound {
		ctx.WithFields(log.Fields{
			"err":            err,
			"chainId":        draft.ChainId,
			"activityTypeId": draft.ActivityTypeId,
		}).Error("activityRepo.FindByTypeId failed")
		return nil, err
	}

	draft.Id = uuid.New().String()
	if err := im.activityRepo.Upsert(ctx, draft); err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"activity": *draft,
		}).Error("activityRepo.Upsert failed")
		return nil, err
	}
	return draft, nil
}

func (im *activityUseCaseImpl) BuildOrder(ctx ctx.Ctx, protocol activity.Protocol, activityType activity.ActivityType, rawOrder []byte, chainId domain.ChainId, contractAddress domain.Address) (*activity.Activity, *activity.Order, error) {
	if !protocol.IsValid() {
		return nil, nil, domain.ErrInvalidProtocol
	}
	if activityType != activity.ActivityTypeListing && activityType != activity.ActivityTypeBid {
		return nil, nil, domain.ErrMalformedOrder
	}

	mapped, err := mapOrder(protocol, activityType, rawOrder, chainId, contractAddress)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"protocol": protocol,
			"chainId":  chainId,
		}).Warn("order payload rejected")
		return nil, nil, err
	}

	act, err := im.resolveActivity(ctx, &activity.Activity{
		ActivityType:   activityType,
		ActivityTypeId: string(mapped.orderHash),
		Status:         activity.ActivityStatusValid,
		WalletAddress:  mapped.maker,
		ChainId:        chainId,
		NftIds:         mapped.nftIds,
		Timestamp:      mapped.timestamp,
		Expiration:     mapped.expiration,
	})
	if err != nil {
		return nil, nil, err
	}

	order := &activity.Order{
		ActivityId:   act.Id,
		OrderHash:    mapped.orderHash,
		Exchange:     mapped.exchange,
		MakerAddress: mapped.maker,
		TakerAddress: mapped.taker,
		OrderType:    activityType,
		Protocol:     protocol,
		ProtocolData: mapped.protocolData,
		ChainId:      chainId,
	}
	if err := im.orderRepo.Upsert(ctx, order); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"order": *order,
		}).Error("orderRepo.Upsert failed")
		return nil, nil, err
	}

	return act, order, nil
}

func (im *activityUseCaseImpl) BuildCancel(ctx ctx.Ctx, protocol activity.Protocol, input activity.CancelInput) (*activity.Activity, *activity.Cancel, error) {
	if !protocol.IsValid() {
		return nil, nil, domain.ErrInvalidProtocol
	}

	// a cancel must reference an order already in the ledger, it never
	// creates one
	prior, err := im.orderRepo.FindByHash(ctx, input.ChainId, input.OrderHash)
	if err == domain.ErrNotFound {
		ctx.WithFields(log.Fields{
			"chainId":   input.ChainId,
			"orderHash": input.OrderHash,
		}).Warn("cancel references unknown order")
		return nil, nil, domain.ErrNotFound
	} else if err != nil {
		return nil, nil, err
	}

	priorActivity, err := im.activityRepo.FindByTypeId(ctx, input.ChainId, string(input.OrderHash))
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"chainId":   input.ChainId,
			"orderHash": input.OrderHash,
		}).Error("activityRepo.FindByTypeId failed")
		return nil, nil, err
	}

	// the cancel happened now, not when the cancelled order was placed
	act, err := im.resolveActivity(ctx, &activity.Activity{
		ActivityType:   activity.ActivityTypeCancel,
		ActivityTypeId: string(input.TransactionHash),
		Status:         activity.ActivityStatusValid,
		WalletAddress:  prior.MakerAddress,
		ChainId:        input.ChainId,
		NftIds:         priorActivity.NftIds,
		Timestamp:      im.now().UTC(),
	})
	if err != nil {
		return nil, nil, err
	}

	cancel := &activity.Cancel{
		ActivityId:      act.Id,
		Exchange:        input.Exchange,
		ForeignType:     input.ForeignType,
		ForeignKeyId:    priorActivity.Id,
		TransactionHash: input.TransactionHash,
		ChainId:         input.ChainId,
	}
	if err := im.cancelRepo.Upsert(ctx, cancel); err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"cancel": *cancel,
		}).Error("cancelRepo.Upsert failed")
		return nil, nil, err
	}

	status := activity.ActivityStatusCancelled
	if err := im.activityRepo.Update(ctx, priorActivity.ToId(), activity.ActivityPatchable{Status: &status}); err != nil {
		ctx.WithFields(log.Fields{
			"err":        err,
			"activityId": priorActivity.Id,
		}).Error("activityRepo.Update failed")
		return nil, nil, err
	}

	return act, cancel, nil
}

func (im *activityUseCaseImpl) BuildTransaction(ctx ctx.Ctx, protocol activity.Protocol, input activity.TransactionInput) (*activity.Activity, *activity.Transaction, error) {
	if !protocol.IsValid() {
		return nil, nil, domain.ErrInvalidProtocol
	}
	if input.TransactionHash == "" || input.ContractAddress.IsEmpty() {
		return nil, nil, domain.ErrMalformedOrder
	}

	wallet := input.Sender
	if input.TransactionType == activity.ActivityTypePurchase {
		wallet = input.Receiver
	}

	chainId := input.ChainId
	act, err := im.resolveActivity(ctx, &activity.Activity{
		ActivityType:   input.TransactionType,
		ActivityTypeId: string(input.TransactionHash),
		Status:         activity.ActivityStatusExecuted,
		WalletAddress:  wallet.ToLower(),
		ChainId:        chainId,
		NftIds:         []domain.NftKey{domain.MakeNftKey(networkName(chainId), input.ContractAddress, input.TokenId)},
		Timestamp:      input.Timestamp,
	})
	if err != nil {
		return nil, nil, err
	}

	tx := &activity.Transaction{
		ActivityId:         act.Id,
		Exchange:           input.Exchange,
		TransactionType:    input.TransactionType,
		Price:              input.Price,
		Currency:           input.Currency.ToLower(),
		TransactionHash:    input.TransactionHash,
		BlockNumber:        input.BlockNumber,
		NftContractAddress: input.ContractAddress.ToLower(),
		NftContractTokenId: input.TokenId,
		Sender:             input.Sender.ToLower(),
		Receiver:           input.Receiver.ToLower(),
		ChainId:            chainId,
	}
	if err := im.transactionRepo.Upsert(ctx, tx); err != nil {
		ctx.WithFields(log.Fields{
			"err":         err,
			"transaction": *tx,
		}).Error("transactionRepo.Upsert failed")
		return nil, nil, err
	}

	return act, tx, nil
}

func (im *activityUseCaseImpl) FindActivities(ctx ctx.Ctx, opts ...activity.FindAllOptionsFunc) ([]*activity.Activity, error) {
	return im.activityRepo.FindAll(ctx, opts...)
}

func (im *activityUseCaseImpl) CountActivities(ctx ctx.Ctx, opts ...activity.FindAllOptionsFunc) (int, error) {
	return im.activityRepo.Count(ctx, opts...)
}
