package repository

import (
	"time"

	"github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/base/log"
	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/domain/nativeorder"
	"github.com/nftcom/goledger/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type bidRepoImpl struct {
	q query.Mongo
}

func NewBidRepo(q query.Mongo) nativeorder.BidRepo {
	return &bidRepoImpl{q}
}

func (im *bidRepoImpl) makeQuery(opts ...nativeorder.BidFindAllOptionsFunc) (bson.M, error) {
	options, err := nativeorder.GetBidFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	query := bson.M{}

	if options.ChainId != nil {
		query["chainId"] = *options.ChainId
	}

	if options.AskId != nil {
		query["askId"] = *options.AskId
	}

	if options.MakerAddress != nil {
		query["makerAddress"] = *options.MakerAddress
	}

	if !options.IncludeDeleted {
		query["deletedAt"] = nil
	}

	return query, nil
}

func (im *bidRepoImpl) FindOne(ctx ctx.Ctx, id string) (*nativeorder.Bid, error) {
	qry := bson.M{"id": id}

	res := nativeorder.Bid{}
	err := im.q.FindOne(ctx, domain.TableBids, qry, &res)
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

func (im *bidRepoImpl) FindAll(ctx ctx.Ctx, opts ...nativeorder.BidFindAllOptionsFunc) ([]*nativeorder.Bid, error) {
	query, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery failed")
		return nil, err
	}

	res := []*nativeorder.Bid{}
	err = im.q.Search(ctx, domain.TableBids, 0, 0, "-createdAt", query, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}

func (im *bidRepoImpl) Upsert(ctx ctx.Ctx, bid *nativeorder.Bid) error {
	selector := bson.M{"id": bid.Id}

	err := im.q.Upsert(ctx, domain.TableBids, selector, bid)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
			"bid":      *bid,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *bidRepoImpl) SoftDelete(ctx ctx.Ctx, id string, at time.Time) error {
	selector := bson.M{"id": id}
	updater := bson.M{"deletedAt": at}

	err := im.q.Patch(ctx, domain.TableBids, selector, updater)
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
