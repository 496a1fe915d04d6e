package reconcile

import (
	"github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/domain/activity"
)

// FetchRequest names one asset whose orders need a refresh.
type FetchRequest struct {
	ContractAddress domain.Address
	TokenId         domain.TokenId
}

type FetchResult struct {
	Listings []*activity.Order
	Offers   []*activity.Order
}

// Fetcher pulls the current best listing (and optionally best offer) for
// each requested asset from one marketplace and lands them in the ledger
// through the protocol adapter. One failed query never aborts the rest of
// the worklist.
type Fetcher interface {
	FetchOrders(ctx ctx.Ctx, chainId domain.ChainId, requests []FetchRequest, includeOffers bool) (*FetchResult, error)
}

// UseCase drives scheduled reconciliation jobs, one per (protocol, chain).
type UseCase interface {
	// SyncOrders refreshes orders across every registered protocol
	// concurrently.
	SyncOrders(ctx ctx.Ctx, chainId domain.ChainId, requests []FetchRequest, includeOffers bool) error
	// SyncTransactions replays the full transaction history of a contract
	// into the ledger.
	SyncTransactions(ctx ctx.Ctx, chainId domain.ChainId, contract domain.Address) (int, error)
	// SyncNativeLiveness prunes native bids whose backing wallets can no
	// longer cover them.
	SyncNativeLiveness(ctx ctx.Ctx, chainId domain.ChainId) (int, error)
}
