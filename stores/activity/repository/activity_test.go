package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	bCtx "github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/domain/activity"
	"github.com/nftcom/goledger/service/query"
	mQuery "github.com/nftcom/goledger/service/query/mocks"
)

func TestActivityUpsert(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	q := &mQuery.Mongo{}
	repo := NewActivityRepo(q)

	a := &activity.Activity{
		Id:             "activity-1",
		ActivityType:   activity.ActivityTypeListing,
		ActivityTypeId: "0xabc",
		Status:         activity.ActivityStatusValid,
		ChainId:        1,
		Timestamp:      time.Unix(1660000000, 0).UTC(),
	}

	q.On("Upsert", ctx, domain.TableActivities, mock.Anything, a).Return(nil).Once()

	req.NoError(repo.Upsert(ctx, a))
	q.AssertExpectations(t)
}

func TestActivityUpsertKeepsStoredIdOnRace(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	q := &mQuery.Mongo{}
	repo := NewActivityRepo(q)

	a := &activity.Activity{
		Id:             "loser-id",
		ActivityType:   activity.ActivityTypeListing,
		ActivityTypeId: "0xabc",
		Status:         activity.ActivityStatusValid,
		ChainId:        1,
		Timestamp:      time.Unix(1660000000, 0).UTC(),
	}

	// a concurrent job inserted the same (chainId, activityTypeId) first
	q.On("Upsert", ctx, domain.TableActivities, mock.Anything, a).Return(query.ErrDuplicateKey).Once()
	q.On("FindOne", ctx, domain.TableActivities, mock.Anything, mock.AnythingOfType("*activity.Activity")).
		Run(func(args mock.Arguments) {
			stored := args.Get(3).(*activity.Activity)
			*stored = activity.Activity{
				Id:             "winner-id",
				ActivityType:   activity.ActivityTypeListing,
				ActivityTypeId: "0xabc",
				Status:         activity.ActivityStatusValid,
				ChainId:        1,
			}
		}).
		Return(nil).Once()
	// the replay must carry the stored id, not the loser's fresh one
	q.On("Upsert", ctx, domain.TableActivities, mock.Anything, mock.MatchedBy(func(update interface{}) bool {
		replayed, ok := update.(*activity.Activity)
		return ok && replayed.Id == "winner-id"
	})).Return(nil).Once()

	req.NoError(repo.Upsert(ctx, a))
	req.Equal("winner-id", a.Id)
	q.AssertExpectations(t)
}
