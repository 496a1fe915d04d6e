package nativeorder

import (
	"time"

	"github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/domain"
)

type AuctionType string

const (
	AuctionTypeFixedPrice AuctionType = "fixedPrice"
	AuctionTypeEnglish    AuctionType = "english"
	AuctionTypeDecreasing AuctionType = "decreasing"
)

// AuctionTypeIndex maps an auction type onto the uint8 the on-chain
// validation entry point expects.
func AuctionTypeIndex(t AuctionType) uint8 {
	switch t {
	case AuctionTypeFixedPrice:
		return 0
	case AuctionTypeEnglish:
		return 1
	case AuctionTypeDecreasing:
		return 2
	}
	return 0
}

type AssetClass string

const (
	AssetClassEth     AssetClass = "ETH"
	AssetClassErc20   AssetClass = "ERC20"
	AssetClassErc721  AssetClass = "ERC721"
	AssetClassErc1155 AssetClass = "ERC1155"
)

type Asset struct {
	Class           AssetClass     `json:"class" bson:"class"`
	ContractAddress domain.Address `json:"contractAddress" bson:"contractAddress"`
	TokenId         domain.TokenId `json:"tokenId" bson:"tokenId"`
	Value           string         `json:"value" bson:"value"`
	MinimumBid      string         `json:"minimumBid" bson:"minimumBid"`
}

type Signature struct {
	V uint8  `json:"v" bson:"v"`
	R string `json:"r" bson:"r"`
	S string `json:"s" bson:"s"`
}

// Ask is a native-protocol sell order. Start/End are unix seconds; zero is
// the "always open" sentinel on either bound.
type Ask struct {
	Id           string           `json:"id" bson:"id"`
	StructHash   domain.OrderHash `json:"structHash" bson:"structHash"`
	Nonce        int64            `json:"nonce" bson:"nonce"`
	AuctionType  AuctionType      `json:"auctionType" bson:"auctionType"`
	Signature    Signature        `json:"signature" bson:"signature"`
	MakerAddress domain.Address   `json:"makerAddress" bson:"makerAddress"`
	MakeAssets   []Asset          `json:"makeAssets" bson:"makeAssets"`
	TakerAddress domain.Address   `json:"takerAddress" bson:"takerAddress"`
	TakeAssets   []Asset          `json:"takeAssets" bson:"takeAssets"`
	Start        int64            `json:"start" bson:"start"`
	End          int64            `json:"end" bson:"end"`
	Salt         int64            `json:"salt" bson:"salt"`
	ChainId      domain.ChainId   `json:"chainId" bson:"chainId"`
	Executed     bool             `json:"executed" bson:"executed"`
	CreatedAt    time.Time        `json:"createdAt" bson:"createdAt"`
}

// Bid is a native-protocol buy order targeting one Ask.
type Bid struct {
	Id           string           `json:"id" bson:"id"`
	AskId        string           `json:"askId" bson:"askId"`
	StructHash   domain.OrderHash `json:"structHash" bson:"structHash"`
	Nonce        int64            `json:"nonce" bson:"nonce"`
	AuctionType  AuctionType      `json:"auctionType" bson:"auctionType"`
	Signature    Signature        `json:"signature" bson:"signature"`
	MakerAddress domain.Address   `json:"makerAddress" bson:"makerAddress"`
	MakeAssets   []Asset          `json:"makeAssets" bson:"makeAssets"`
	TakerAddress domain.Address   `json:"takerAddress" bson:"takerAddress"`
	TakeAssets   []Asset          `json:"takeAssets" bson:"takeAssets"`
	Start        int64            `json:"start" bson:"start"`
	End          int64            `json:"end" bson:"end"`
	Salt         int64            `json:"salt" bson:"salt"`
	ChainId      domain.ChainId   `json:"chainId" bson:"chainId"`
	// stake-weighted seconds score, see usecase. Provisional formula.
	Score     float64    `json:"score" bson:"score"`
	DeletedAt *time.Time `json:"deletedAt" bson:"deletedAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
}

// Swap matches one Ask with one Bid. At most one Swap may exist per
// (AskId, BidId) pair; the repo enforces this with a unique index.
type Swap struct {
	Id        string         `json:"id" bson:"id"`
	AskId     string         `json:"askId" bson:"askId"`
	BidId     string         `json:"bidId" bson:"bidId"`
	TxHash    domain.TxHash  `json:"txHash" bson:"txHash"`
	ChainId   domain.ChainId `json:"chainId" bson:"chainId"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
}

type BidFindAllOptions struct {
	ChainId        *domain.ChainId
	AskId          *string
	MakerAddress   *domain.Address
	IncludeDeleted bool
}

type BidFindAllOptionsFunc func(*BidFindAllOptions) error

func GetBidFindAllOptions(opts ...BidFindAllOptionsFunc) (BidFindAllOptions, error) {
	res := BidFindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func BidWithChainId(chainId domain.ChainId) BidFindAllOptionsFunc {
	return func(options *BidFindAllOptions) error {
		options.ChainId = &chainId
		return nil
	}
}

func BidWithAskId(askId string) BidFindAllOptionsFunc {
	return func(options *BidFindAllOptions) error {
		options.AskId = &askId
		return nil
	}
}

func BidWithMakerAddress(maker domain.Address) BidFindAllOptionsFunc {
	return func(options *BidFindAllOptions) error {
		maker = maker.ToLower()
		options.MakerAddress = &maker
		return nil
	}
}

func BidWithDeleted() BidFindAllOptionsFunc {
	return func(options *BidFindAllOptions) error {
		options.IncludeDeleted = true
		return nil
	}
}

type AskRepo interface {
	FindOne(ctx ctx.Ctx, id string) (*Ask, error)
	FindByStructHash(ctx ctx.Ctx, chainId domain.ChainId, structHash domain.OrderHash) (*Ask, error)
	Upsert(ctx ctx.Ctx, ask *Ask) error
	MarkExecuted(ctx ctx.Ctx, id string) error
}

type BidRepo interface {
	FindOne(ctx ctx.Ctx, id string) (*Bid, error)
	FindAll(ctx ctx.Ctx, opts ...BidFindAllOptionsFunc) ([]*Bid, error)
	Upsert(ctx ctx.Ctx, bid *Bid) error
	SoftDelete(ctx ctx.Ctx, id string, at time.Time) error
}

// SwapRepo.Insert returns domain.ErrConflict when a Swap for the same
// (AskId, BidId) pair already exists; the first Swap stays unchanged.
type SwapRepo interface {
	FindByPair(ctx ctx.Ctx, askId, bidId string) (*Swap, error)
	Insert(ctx ctx.Ctx, swap *Swap) error
}

// Validator confirms a bid is structurally valid on chain and compatible
// with the ask it targets. Purely advisory: no side effects, fail closed.
type Validator interface {
	ValidateBidAgainstAsk(ctx ctx.Ctx, ask *Ask, bid *Bid, wallet domain.Address) bool
}

// BalanceReader reads a wallet's balance of a payment token or of the
// chain's native coin, used for bid liveness checks.
type BalanceReader interface {
	BalanceOf(ctx ctx.Ctx, chainId domain.ChainId, wallet, token domain.Address) (string, error)
	NativeBalanceOf(ctx ctx.Ctx, chainId domain.ChainId, wallet domain.Address) (string, error)
}

type UseCase interface {
	GetAsk(ctx ctx.Ctx, id string) (*Ask, error)
	PlaceAsk(ctx ctx.Ctx, ask Ask) (*Ask, error)
	// PlaceBid rejects with domain.ErrNotFound when the referenced ask is
	// missing, domain.ErrForbidden on policy violations and
	// domain.ErrValidationFailed when cross-order validation fails.
	PlaceBid(ctx ctx.Ctx, bid Bid) (*Bid, error)
	CreateSwap(ctx ctx.Ctx, swap Swap) (*Swap, error)
	MarkAskExecuted(ctx ctx.Ctx, askId string, txHash domain.TxHash) error
	// PruneStaleBids soft-deletes bids whose backing wallet balance has
	// fallen below the bid price.
	PruneStaleBids(ctx ctx.Ctx, chainId domain.ChainId) (int, error)
}
