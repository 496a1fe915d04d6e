package domain

import (
	"fmt"
	"math/big"
	"strings"
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.ToLower() == EmptyAddress
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

type BlockNumber uint64

type TxHash string

func (h TxHash) ToLower() TxHash {
	return TxHash(strings.ToLower(string(h)))
}

type OrderHash string

func (h OrderHash) ToLower() OrderHash {
	return OrderHash(strings.ToLower(string(h)))
}

// NftKey identifies one asset as "<network>/<contract>/<tokenId>"
type NftKey string

func MakeNftKey(network string, contract Address, tokenId TokenId) NftKey {
	return NftKey(fmt.Sprintf("%s/%s/%s", network, contract.ToLowerStr(), tokenId))
}

func (k NftKey) Contract() Address {
	parts := strings.Split(string(k), "/")
	if len(parts) != 3 {
		return ""
	}
	return Address(parts[1])
}

func (k NftKey) TokenId() TokenId {
	parts := strings.Split(string(k), "/")
	if len(parts) != 3 {
		return ""
	}
	return TokenId(parts[2])
}

func ToBigInt(nums []string) ([]*big.Int, error) {
	var bns []*big.Int
	for _, n := range nums {
		bn, ok := new(big.Int).SetString(n, 10)
		if !ok {
			return nil, ErrInvalidNumberFormat
		}
		bns = append(bns, bn)
	}
	return bns, nil
}
