package nftport

import (
	"errors"
	"net/http"
	"time"

	bCtx "github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/service/cache"
)

var (
	ErrStatusCodeNotOk  = errors.New("http.status != 200")
	ErrUnsupportedChain = errors.New("unsupported chain")
)

type TransactionType string

const (
	TransactionTypeTransfer TransactionType = "transfer"
	TransactionTypeMint     TransactionType = "mint"
	TransactionTypeBurn     TransactionType = "burn"
	TransactionTypeSale     TransactionType = "sale"
	TransactionTypeList     TransactionType = "list"
)

type Client interface {
	// GetTransactionsByContract walks every page of the transaction history
	// for a contract, following the continuation token until it runs out.
	GetTransactionsByContract(ctx bCtx.Ctx, chainId domain.ChainId, contract domain.Address, types []TransactionType, pageSize int) ([]Transaction, error)
	// GetTransactionsByNft is the single-token variant.
	GetTransactionsByNft(ctx bCtx.Ctx, chainId domain.ChainId, contract domain.Address, tokenId domain.TokenId, types []TransactionType, pageSize int) ([]Transaction, error)
}

type ClientCfg struct {
	HttpClient *http.Client
	Timeout    time.Duration
	Apikey     string
	// Cache memoizes one page per (endpoint, args, continuation, pageSize)
	// key. Optional, nil disables memoization.
	Cache cache.Service
}

type PriceDetails struct {
	AssetType    string  `json:"asset_type"`
	ContractAddr string  `json:"contract_address"`
	Price        float64 `json:"price"`
	PriceUsd     float64 `json:"price_usd"`
}

type Nft struct {
	ContractType    string         `json:"contract_type"`
	ContractAddress domain.Address `json:"contract_address"`
	TokenId         domain.TokenId `json:"token_id"`
}

type Transaction struct {
	Type            TransactionType `json:"type"`
	OwnerAddress    domain.Address  `json:"owner_address"`
	TransferFrom    domain.Address  `json:"transfer_from"`
	TransferTo      domain.Address  `json:"transfer_to"`
	BuyerAddress    domain.Address  `json:"buyer_address"`
	SellerAddress   domain.Address  `json:"seller_address"`
	Marketplace     string          `json:"marketplace"`
	TransactionHash domain.TxHash   `json:"transaction_hash"`
	BlockNumber     int64           `json:"block_number"`
	Quantity        int64           `json:"quantity"`
	PriceDetails    *PriceDetails   `json:"price_details"`
	Nft             *Nft            `json:"nft"`
	TransactionDate string          `json:"transaction_date"`
}

type TransactionsResp struct {
	Response     string        `json:"response"`
	Continuation string        `json:"continuation"`
	Transactions []Transaction `json:"transactions"`
}
