package repository

import (
	"github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/base/log"
	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/domain/nativeorder"
	"github.com/nftcom/goledger/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type swapRepoImpl struct {
	q query.Mongo
}

// NewSwapRepo expects a unique index over (askId, bidId) on the swaps table.
func NewSwapRepo(q query.Mongo) nativeorder.SwapRepo {
	return &swapRepoImpl{q}
}

func (im *swapRepoImpl) FindByPair(ctx ctx.Ctx, askId, bidId string) (*nativeorder.Swap, error) {
	qry := bson.M{
		"askId": askId,
		"bidId": bidId,
	}

	res := nativeorder.Swap{}
	err := im.q.FindOne(ctx, domain.TableSwaps, qry, &res)
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

func (im *swapRepoImpl) Insert(ctx ctx.Ctx, swap *nativeorder.Swap) error {
	err := im.q.Insert(ctx, domain.TableSwaps, swap)
	if err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"swap": *swap,
		}).Error("q.Insert failed")
		return err
	}
	return nil
}
