package repository

import (
	"github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/base/log"
	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/domain/activity"
	"github.com/nftcom/goledger/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type transactionRepoImpl struct {
	q query.Mongo
}

func NewTransactionRepo(q query.Mongo) activity.TransactionRepo {
	return &transactionRepoImpl{q}
}

func (im *transactionRepoImpl) FindByTxHash(ctx ctx.Ctx, chainId domain.ChainId, txHash domain.TxHash) (*activity.Transaction, error) {
	qry := bson.M{
		"chainId":         chainId,
		"transactionHash": txHash,
	}

	res := activity.Transaction{}
	err := im.q.FindOne(ctx, domain.TableTransactions, qry, &res)
	if err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("q.FindOne failed")
		return nil, err
	}

	return &res, nil
}

func (im *transactionRepoImpl) Upsert(ctx ctx.Ctx, t *activity.Transaction) error {
	selector := bson.M{
		"chainId":         t.ChainId,
		"transactionHash": t.TransactionHash,
	}

	err := im.q.Upsert(ctx, domain.TableTransactions, selector, t)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":         err,
			"selector":    selector,
			"transaction": *t,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
