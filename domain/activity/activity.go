package activity

import (
	"time"

	"github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/domain"
)

type ActivityType string

const (
	ActivityTypeListing  ActivityType = "listing"
	ActivityTypeBid      ActivityType = "bid"
	ActivityTypeCancel   ActivityType = "cancel"
	ActivityTypeSale     ActivityType = "sale"
	ActivityTypePurchase ActivityType = "purchase"
	ActivityTypeTransfer ActivityType = "transfer"
	ActivityTypeSwap     ActivityType = "swap"
)

type ActivityStatus string

const (
	ActivityStatusValid     ActivityStatus = "valid"
	ActivityStatusCancelled ActivityStatus = "cancelled"
	ActivityStatusExecuted  ActivityStatus = "executed"
)

type Protocol string

const (
	ProtocolSeaport   Protocol = "seaport"
	ProtocolLooksrare Protocol = "looksrareV2"
	ProtocolX2Y2      Protocol = "x2y2"
	ProtocolNative    Protocol = "nftcom"
)

func (p Protocol) IsValid() bool {
	switch p {
	case ProtocolSeaport, ProtocolLooksrare, ProtocolX2Y2, ProtocolNative:
		return true
	}
	return false
}

// Activity is the canonical, deduplicated record of one marketplace event.
// ActivityTypeId is the protocol-assigned idempotency key (an order hash or
// a transaction hash) and is unique per chain: re-ingesting the same external
// order resolves to the same Activity.
type Activity struct {
	Id             string          `json:"id" bson:"id"`
	ActivityType   ActivityType    `json:"activityType" bson:"activityType"`
	ActivityTypeId string          `json:"activityTypeId" bson:"activityTypeId"`
	Status         ActivityStatus  `json:"status" bson:"status"`
	WalletAddress  domain.Address  `json:"walletAddress" bson:"walletAddress"`
	ChainId        domain.ChainId  `json:"chainId" bson:"chainId"`
	NftIds         []domain.NftKey `json:"nftId" bson:"nftId"`
	Timestamp      time.Time       `json:"timestamp" bson:"timestamp"`
	Expiration     *time.Time      `json:"expiration" bson:"expiration,omitempty"`
}

func (a *Activity) ToId() ActivityId {
	return ActivityId{
		ChainId:        a.ChainId,
		ActivityTypeId: a.ActivityTypeId,
	}
}

type ActivityId struct {
	ChainId        domain.ChainId `json:"chainId" bson:"chainId"`
	ActivityTypeId string         `json:"activityTypeId" bson:"activityTypeId"`
}

type ActivityPatchable struct {
	Status     *ActivityStatus `json:"status" bson:"status,omitempty"`
	Expiration *time.Time      `json:"expiration" bson:"expiration,omitempty"`
}

type SubtypeKind string

const (
	SubtypeKindOrder       SubtypeKind = "order"
	SubtypeKindCancel      SubtypeKind = "cancel"
	SubtypeKindTransaction SubtypeKind = "transaction"
)

// Subtype is the variant payload owned 1:1 by an Activity. The Activity owns
// lifecycle and status, the subtype owns protocol-specific fields.
type Subtype interface {
	Kind() SubtypeKind
}

// Order is the subtype for listing and bid activities. ProtocolData retains
// the protocol-native payload verbatim; price/currency extraction happens at
// the read boundary, see price.go.
type Order struct {
	ActivityId   string           `json:"activityId" bson:"activityId"`
	OrderHash    domain.OrderHash `json:"orderHash" bson:"orderHash"`
	Exchange     string           `json:"exchange" bson:"exchange"`
	MakerAddress domain.Address   `json:"makerAddress" bson:"makerAddress"`
	TakerAddress *domain.Address  `json:"takerAddress" bson:"takerAddress,omitempty"`
	OrderType    ActivityType     `json:"orderType" bson:"orderType"`
	Protocol     Protocol         `json:"protocol" bson:"protocol"`
	ProtocolData string           `json:"protocolData" bson:"protocolData"`
	ChainId      domain.ChainId   `json:"chainId" bson:"chainId"`
}

func (o *Order) Kind() SubtypeKind { return SubtypeKindOrder }

func (o *Order) ToId() OrderId {
	return OrderId{
		ChainId:   o.ChainId,
		OrderHash: o.OrderHash,
	}
}

type OrderId struct {
	ChainId   domain.ChainId   `json:"chainId" bson:"chainId"`
	OrderHash domain.OrderHash `json:"orderHash" bson:"orderHash"`
}

// Cancel is the subtype for cancellation activities. ForeignKeyId must
// resolve to an existing listing or bid Activity; a Cancel never creates a
// new Order.
type Cancel struct {
	ActivityId      string         `json:"activityId" bson:"activityId"`
	Exchange        string         `json:"exchange" bson:"exchange"`
	ForeignType     ActivityType   `json:"foreignType" bson:"foreignType"`
	ForeignKeyId    string         `json:"foreignKeyId" bson:"foreignKeyId"`
	TransactionHash domain.TxHash  `json:"transactionHash" bson:"transactionHash"`
	ChainId         domain.ChainId `json:"chainId" bson:"chainId"`
}

func (c *Cancel) Kind() SubtypeKind { return SubtypeKindCancel }

// Transaction is the subtype for sale, purchase and transfer activities.
type Transaction struct {
	ActivityId         string         `json:"activityId" bson:"activityId"`
	Exchange           string         `json:"exchange" bson:"exchange"`
	TransactionType    ActivityType   `json:"transactionType" bson:"transactionType"`
	Price              string         `json:"price" bson:"price"`
	Currency           domain.Address `json:"currency" bson:"currency"`
	TransactionHash    domain.TxHash  `json:"transactionHash" bson:"transactionHash"`
	BlockNumber        string         `json:"blockNumber" bson:"blockNumber"`
	NftContractAddress domain.Address `json:"nftContractAddress" bson:"nftContractAddress"`
	NftContractTokenId domain.TokenId `json:"nftContractTokenId" bson:"nftContractTokenId"`
	Sender             domain.Address `json:"sender" bson:"sender"`
	Receiver           domain.Address `json:"receiver" bson:"receiver"`
	ChainId            domain.ChainId `json:"chainId" bson:"chainId"`
}

func (t *Transaction) Kind() SubtypeKind { return SubtypeKindTransaction }

type FindAllOptions struct {
	ChainId        *domain.ChainId
	ActivityTypes  []ActivityType
	Status         *ActivityStatus
	WalletAddress  *domain.Address
	NftId          *domain.NftKey
	ExpirationLT   *time.Time
	TimestampGTE   *time.Time
	Offset         *int32
	Limit          *int32
	SortDescending *bool
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithChainId(chainId domain.ChainId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ChainId = &chainId
		return nil
	}
}

func WithActivityTypes(types ...ActivityType) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ActivityTypes = types
		return nil
	}
}

func WithStatus(status ActivityStatus) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Status = &status
		return nil
	}
}

func WithWalletAddress(wallet domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		wallet = wallet.ToLower()
		options.WalletAddress = &wallet
		return nil
	}
}

func WithNftId(nftId domain.NftKey) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.NftId = &nftId
		return nil
	}
}

func WithExpirationLT(t time.Time) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ExpirationLT = &t
		return nil
	}
}

func WithTimestampGTE(t time.Time) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.TimestampGTE = &t
		return nil
	}
}

func WithPagination(offset, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSortDescending(desc bool) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.SortDescending = &desc
		return nil
	}
}

// Repo is the reconciliation store over activities. Implementations must
// back Upsert with a unique (chainId, activityTypeId) index so concurrent
// jobs racing on the same external order cannot create duplicates.
type Repo interface {
	FindByTypeId(ctx ctx.Ctx, chainId domain.ChainId, activityTypeId string) (*Activity, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Activity, error)
	Count(ctx ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
	Upsert(ctx ctx.Ctx, a *Activity) error
	Update(ctx ctx.Ctx, id ActivityId, patchable ActivityPatchable) error
}

type OrderRepo interface {
	FindByHash(ctx ctx.Ctx, chainId domain.ChainId, orderHash domain.OrderHash) (*Order, error)
	Upsert(ctx ctx.Ctx, o *Order) error
	RemoveByActivityId(ctx ctx.Ctx, activityId string) error
}

type CancelRepo interface {
	FindByTxHash(ctx ctx.Ctx, chainId domain.ChainId, txHash domain.TxHash) (*Cancel, error)
	Upsert(ctx ctx.Ctx, c *Cancel) error
}

type TransactionRepo interface {
	FindByTxHash(ctx ctx.Ctx, chainId domain.ChainId, txHash domain.TxHash) (*Transaction, error)
	Upsert(ctx ctx.Ctx, t *Transaction) error
}

// CancelInput identifies the prior order being cancelled.
type CancelInput struct {
	Exchange        string
	ForeignType     ActivityType
	OrderHash       domain.OrderHash
	TransactionHash domain.TxHash
	ChainId         domain.ChainId
}

// TransactionInput carries the on-chain trade fields for sale/purchase/transfer.
type TransactionInput struct {
	Exchange        string
	TransactionType ActivityType
	Price           string
	Currency        domain.Address
	TransactionHash domain.TxHash
	BlockNumber     string
	ContractAddress domain.Address
	TokenId         domain.TokenId
	Sender          domain.Address
	Receiver        domain.Address
	Timestamp       time.Time
	ChainId         domain.ChainId
}

// UseCase is the adapter surface of the reconciliation engine. Build*
// methods are idempotent on (chainId, activityTypeId): repeated ingestion of
// the same external order returns the existing Activity with a freshly
// mapped subtype payload.
type UseCase interface {
	BuildOrder(ctx ctx.Ctx, protocol Protocol, activityType ActivityType, rawOrder []byte, chainId domain.ChainId, contractAddress domain.Address) (*Activity, *Order, error)
	BuildCancel(ctx ctx.Ctx, protocol Protocol, input CancelInput) (*Activity, *Cancel, error)
	BuildTransaction(ctx ctx.Ctx, protocol Protocol, input TransactionInput) (*Activity, *Transaction, error)

	FindActivities(ctx ctx.Ctx, opts ...FindAllOptionsFunc) ([]*Activity, error)
	CountActivities(ctx ctx.Ctx, opts ...FindAllOptionsFunc) (int, error)
}
