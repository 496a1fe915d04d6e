package usecase

import (
	"strconv"
	"time"

	"github.com/viney-shih/goroutines"
	"golang.org/x/xerrors"

	bCtx "github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/base/log"
	"github.com/nftcom/goledger/base/metrics"
	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/domain/activity"
	"github.com/nftcom/goledger/domain/nativeorder"
	"github.com/nftcom/goledger/domain/reconcile"
	"github.com/nftcom/goledger/service/nftport"
)

const (
	syncConcurrency = 4
	historyPageSize = 50
)

// marketplace labels nftport reports mapped back onto ledger protocols
var marketplaceProtocols = map[string]activity.Protocol{
	"opensea":   activity.ProtocolSeaport,
	"looksrare": activity.ProtocolLooksrare,
	"x2y2":      activity.ProtocolX2Y2,
	"nftcom":    activity.ProtocolNative,
}

type reconcileUseCaseImpl struct {
	fetchers           map[activity.Protocol]reconcile.Fetcher
	activityUseCase    activity.UseCase
	nativeOrderUseCase nativeorder.UseCase
	transactionClient  nftport.Client
	metrics            metrics.Service
}

func NewReconcileUseCase(
	fetchers map[activity.Protocol]reconcile.Fetcher,
	activityUseCase activity.UseCase,
	nativeOrderUseCase nativeorder.UseCase,
	transactionClient nftport.Client,
) reconcile.UseCase {
	return &reconcileUseCaseImpl{
		fetchers:           fetchers,
		activityUseCase:    activityUseCase,
		nativeOrderUseCase: nativeOrderUseCase,
		transactionClient:  transactionClient,
		metrics:            metrics.New("reconcile"),
	}
}

// SyncOrders fans one job out per registered protocol. Jobs are independent:
// the ledger's unique key keeps concurrent writers from duplicating an order,
// and one failed protocol never blocks the others.
func (im *reconcileUseCaseImpl) SyncOrders(ctx bCtx.Ctx, chainId domain.ChainId, requests []reconcile.FetchRequest, includeOffers bool) error {
	if len(im.fetchers) == 0 || len(requests) == 0 {
		return nil
	}

	defer im.metrics.BumpTime("sync_orders.time").End()

	b := goroutines.NewBatch(syncConcurrency, goroutines.WithBatchSize(len(im.fetchers)))
	defer b.Close()

	for protocol, fetcher := range im.fetchers {
		protocol, fetcher := protocol, fetcher
		b.Queue(func() (interface{}, error) {
			result, err := fetcher.FetchOrders(ctx, chainId, requests, includeOffers)
			if err != nil {
				ctx.WithFields(log.Fields{
					"err":      err,
					"protocol": protocol,
					"chainId":  chainId,
				}).Error("fetcher.FetchOrders failed")
				return nil, err
			}
			im.metrics.BumpSum("orders.listings."+string(protocol), float64(len(result.Listings)))
			im.metrics.BumpSum("orders.offers."+string(protocol), float64(len(result.Offers)))
			return result, nil
		})
	}
	b.QueueComplete()

	var anyerr error
	for ret := range b.Results() {
		if err := ret.Error(); err != nil {
			anyerr = err
		}
	}
	if anyerr != nil {
		return xerrors.Errorf("sync orders chain %d: %w", chainId, anyerr)
	}
	return nil
}

// SyncTransactions replays a contract's sale and transfer history into the
// ledger and returns how many transactions landed. Failed rows are logged
// and skipped.
func (im *reconcileUseCaseImpl) SyncTransactions(ctx bCtx.Ctx, chainId domain.ChainId, contract domain.Address) (int, error) {
	defer im.metrics.BumpTime("sync_transactions.time").End()

	txs, err := im.transactionClient.GetTransactionsByContract(ctx, chainId, contract, []nftport.TransactionType{
		nftport.TransactionTypeSale,
		nftport.TransactionTypeTransfer,
	}, historyPageSize)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"chainId":  chainId,
			"contract": contract,
		}).Error("transactionClient.GetTransactionsByContract failed")
		return 0, domain.ErrExternalAPI
	}

	landed := 0
	for _, tx := range txs {
		input, protocol, err := transactionInput(chainId, contract, tx)
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":    err,
				"txHash": tx.TransactionHash,
			}).Warn("transaction skipped")
			continue
		}
		if _, _, err := im.activityUseCase.BuildTransaction(ctx, protocol, *input); err != nil {
			ctx.WithFields(log.Fields{
				"err":    err,
				"txHash": tx.TransactionHash,
			}).Warn("BuildTransaction failed, continuing")
			continue
		}
		landed++
	}
	im.metrics.BumpSum("transactions.landed", float64(landed))
	return landed, nil
}

func (im *reconcileUseCaseImpl) SyncNativeLiveness(ctx bCtx.Ctx, chainId domain.ChainId) (int, error) {
	pruned, err := im.nativeOrderUseCase.PruneStaleBids(ctx, chainId)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
		}).Error("nativeOrderUseCase.PruneStaleBids failed")
		return 0, err
	}
	return pruned, nil
}

func transactionInput(chainId domain.ChainId, contract domain.Address, tx nftport.Transaction) (*activity.TransactionInput, activity.Protocol, error) {
	if tx.TransactionHash == "" {
		return nil, "", domain.ErrMalformedOrder
	}

	protocol, ok := marketplaceProtocols[tx.Marketplace]
	if !ok {
		protocol = activity.ProtocolNative
	}

	transactionType := activity.ActivityTypeTransfer
	sender := tx.TransferFrom
	receiver := tx.TransferTo
	price := "0"
	currency := domain.EmptyAddress
	if tx.Type == nftport.TransactionTypeSale {
		transactionType = activity.ActivityTypeSale
		sender = tx.SellerAddress
		receiver = tx.BuyerAddress
		if tx.PriceDetails != nil {
			price = strconv.FormatFloat(tx.PriceDetails.Price, 'f', -1, 64)
			currency = domain.Address(tx.PriceDetails.ContractAddr)
		}
	}

	tokenId := domain.TokenId("")
	nftContract := contract
	if tx.Nft != nil {
		tokenId = tx.Nft.TokenId
		if !tx.Nft.ContractAddress.IsEmpty() {
			nftContract = tx.Nft.ContractAddress
		}
	}

	timestamp := time.Now().UTC()
	if tx.TransactionDate != "" {
		if t, err := time.Parse("2006-01-02T15:04:05", tx.TransactionDate); err == nil {
			timestamp = t.UTC()
		}
	}

	exchange := tx.Marketplace
	if exchange == "" {
		exchange = "nftcom"
	}

	return &activity.TransactionInput{
		Exchange:        exchange,
		TransactionType: transactionType,
		Price:           price,
		Currency:        currency,
		TransactionHash: tx.TransactionHash,
		BlockNumber:     strconv.FormatInt(tx.BlockNumber, 10),
		ContractAddress: nftContract,
		TokenId:         tokenId,
		Sender:          sender,
		Receiver:        receiver,
		Timestamp:       timestamp,
		ChainId:         chainId,
	}, protocol, nil
}
