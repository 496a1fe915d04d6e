package repository

import (
	"github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/base/database/mongoclient"
	"github.com/nftcom/goledger/base/log"
	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/domain/activity"
	"github.com/nftcom/goledger/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type orderRepoImpl struct {
	q query.Mongo
}

func NewOrderRepo(q query.Mongo) activity.OrderRepo {
	return &orderRepoImpl{q}
}

func (im *orderRepoImpl) FindByHash(ctx ctx.Ctx, chainId domain.ChainId, orderHash domain.OrderHash) (*activity.Order, error) {
	qry := bson.M{
		"chainId":   chainId,
		"orderHash": orderHash,
	}

	res := activity.Order{}
	err := im.q.FindOne(ctx, domain.TableOrders, qry, &res)
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

func (im *orderRepoImpl) Upsert(ctx ctx.Ctx, o *activity.Order) error {
	id := o.ToId()
	selector, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("mongoclient.MakeBsonM failed")
		return err
	}

	err = im.q.Upsert(ctx, domain.TableOrders, selector, o)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
			"order":    *o,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *orderRepoImpl) RemoveByActivityId(ctx ctx.Ctx, activityId string) error {
	selector := bson.M{"activityId": activityId}

	_, err := im.q.RemoveAll(ctx, domain.TableOrders, selector)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("q.RemoveAll failed")
		return err
	}
	return nil
}
