package repository

import (
	"github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/base/log"
	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/domain/nativeorder"
	"github.com/nftcom/goledger/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type askRepoImpl struct {
	q query.Mongo
}

func NewAskRepo(q query.Mongo) nativeorder.AskRepo {
	return &askRepoImpl{q}
}

func (im *askRepoImpl) FindOne(ctx ctx.Ctx, id string) (*nativeorder.Ask, error) {
	qry := bson.M{"id": id}

	res := nativeorder.Ask{}
	err := im.q.FindOne(ctx, domain.TableAsks, qry, &res)
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

func (im *askRepoImpl) FindByStructHash(ctx ctx.Ctx, chainId domain.ChainId, structHash domain.OrderHash) (*nativeorder.Ask, error) {
	qry := bson.M{
		"chainId":    chainId,
		"structHash": structHash,
	}

	res := nativeorder.Ask{}
	err := im.q.FindOne(ctx, domain.TableAsks, qry, &res)
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

func (im *askRepoImpl) Upsert(ctx ctx.Ctx, ask *nativeorder.Ask) error {
	selector := bson.M{"id": ask.Id}

	err := im.q.Upsert(ctx, domain.TableAsks, selector, ask)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
			"ask":      *ask,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *askRepoImpl) MarkExecuted(ctx ctx.Ctx, id string) error {
	selector := bson.M{"id": id}
	updater := bson.M{"executed": true}

	err := im.q.Patch(ctx, domain.TableAsks, selector, updater)
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
		}).Error("q.Patch failed")
		return err
	}
	return nil
}
