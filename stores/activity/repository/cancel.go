package repository

import (
	"github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/base/log"
	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/domain/activity"
	"github.com/nftcom/goledger/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type cancelRepoImpl struct {
	q query.Mongo
}

func NewCancelRepo(q query.Mongo) activity.CancelRepo {
	return &cancelRepoImpl{q}
}

func (im *cancelRepoImpl) FindByTxHash(ctx ctx.Ctx, chainId domain.ChainId, txHash domain.TxHash) (*activity.Cancel, error) {
	qry := bson.M{
		"chainId":         chainId,
		"transactionHash": txHash,
	}

	res := activity.Cancel{}
	err := im.q.FindOne(ctx, domain.TableCancels, qry, &res)
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

func (im *cancelRepoImpl) Upsert(ctx ctx.Ctx, c *activity.Cancel) error {
	selector := bson.M{
		"chainId":         c.ChainId,
		"transactionHash": c.TransactionHash,
	}

	err := im.q.Upsert(ctx, domain.TableCancels, selector, c)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
			"cancel":   *c,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}
