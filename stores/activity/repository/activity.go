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

type activityRepoImpl struct {
	q query.Mongo
}

// NewActivityRepo expects a unique index over (chainId, activityTypeId) on
// the activities table.
func NewActivityRepo(q query.Mongo) activity.Repo {
	return &activityRepoImpl{q}
}

func (im *activityRepoImpl) makeQuery(opts ...activity.FindAllOptionsFunc) (bson.M, *activity.FindAllOptions, error) {
	options, err := activity.GetFindAllOptions(opts...)
	if err != nil {
		return nil, nil, err
	}
	query := bson.M{}

	if options.ChainId != nil {
		query["chainId"] = *options.ChainId
	}

	if len(options.ActivityTypes) > 0 {
		query["activityType"] = bson.M{"$in": options.ActivityTypes}
	}

	if options.Status != nil {
		query["status"] = *options.Status
	}

	if options.WalletAddress != nil {
		query["walletAddress"] = *options.WalletAddress
	}

	if options.NftId != nil {
		query["nftId"] = *options.NftId
	}

	if options.ExpirationLT != nil {
		query["expiration"] = bson.M{"$lt": *options.ExpirationLT}
	}

	if options.TimestampGTE != nil {
		query["timestamp"] = bson.M{"$gte": *options.TimestampGTE}
	}

	return query, &options, nil
}

func (im *activityRepoImpl) FindByTypeId(ctx ctx.Ctx, chainId domain.ChainId, activityTypeId string) (*activity.Activity, error) {
	qry := bson.M{
		"chainId":        chainId,
		"activityTypeId": activityTypeId,
	}

	res := activity.Activity{}
	err := im.q.FindOne(ctx, domain.TableActivities, qry, &res)
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

func (im *activityRepoImpl) FindAll(ctx ctx.Ctx, opts ...activity.FindAllOptionsFunc) ([]*activity.Activity, error) {
	query, options, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery failed")
		return nil, err
	}

	offset := 0
	limit := 0
	if options.Offset != nil {
		offset = int(*options.Offset)
	}
	if options.Limit != nil {
		limit = int(*options.Limit)
	}

	sort := "timestamp"
	if options.SortDescending != nil && *options.SortDescending {
		sort = "-timestamp"
	}

	res := []*activity.Activity{}
	err = im.q.Search(ctx, domain.TableActivities, offset, limit, sort, query, &res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("q.Search failed")
		return nil, err
	}

	return res, nil
}

func (im *activityRepoImpl) Count(ctx ctx.Ctx, opts ...activity.FindAllOptionsFunc) (int, error) {
	query, _, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery failed")
		return 0, err
	}

	cnt, err := im.q.Count(ctx, domain.TableActivities, query)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": query,
		}).Error("q.Count failed")
		return 0, err
	}

	return cnt, nil
}

func (im *activityRepoImpl) Upsert(ctx ctx.Ctx, a *activity.Activity) error {
	id := a.ToId()
	selector, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("mongoclient.MakeBsonM failed")
		return err
	}

	err = im.q.Upsert(ctx, domain.TableActivities, selector, a)
	if err == query.ErrDuplicateKey {
		// two jobs raced on the same external order and the other insert
		// landed first. adopt the stored id before replaying, subtypes
		// already reference it.
		existing := activity.Activity{}
		if err := im.q.FindOne(ctx, domain.TableActivities, selector, &existing); err != nil {
			ctx.WithFields(log.Fields{
				"err":      err,
				"selector": selector,
			}).Error("q.FindOne failed")
			return err
		}
		a.Id = existing.Id
		ctx.WithFields(log.Fields{
			"selector": selector,
		}).Warn("upsert lost duplicate key race, replaying")
		err = im.q.Upsert(ctx, domain.TableActivities, selector, a)
	}
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
			"activity": *a,
		}).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *activityRepoImpl) Update(ctx ctx.Ctx, id activity.ActivityId, patchable activity.ActivityPatchable) error {
	selector, err := mongoclient.MakeBsonM(id)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("mongoclient.MakeBsonM failed")
		return err
	}

	updater, err := mongoclient.MakeBsonM(patchable)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":       err,
			"patchable": patchable,
		}).Error("mongoclient.MakeBsonM failed")
		return err
	}

	err = im.q.Patch(ctx, domain.TableActivities, selector, updater)
	if err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"selector": selector,
			"updater":  updater,
		}).Error("q.Patch failed")
		return err
	}

	return nil
}
