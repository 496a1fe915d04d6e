package usecase

import (
	"strconv"
	"time"

	"github.com/nftcom/goledger/base/ptr"
	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/domain/activity"
)

// mappedOrder is the protocol-neutral shape every adapter normalizes a raw
// marketplace order into. protocolData carries the native payload verbatim.
type mappedOrder struct {
	orderHash    domain.OrderHash
	exchange     string
	maker        domain.Address
	taker        *domain.Address
	nftIds       []domain.NftKey
	timestamp    time.Time
	expiration   *time.Time
	protocolData string
}

var networkNames = map[domain.ChainId]string{
	1:   "ethereum",
	5:   "goerli",
	137: "polygon",
}

func networkName(chainId domain.ChainId) string {
	if name, ok := networkNames[chainId]; ok {
		return name
	}
	return strconv.Itoa(int(chainId))
}

func unixTime(secs int64) time.Time {
	return time.Unix(secs, 0).UTC()
}

// expiration of zero means the order never expires
func unixExpiration(secs int64) *time.Time {
	if secs <= 0 {
		return nil
	}
	return ptr.Time(time.Unix(secs, 0).UTC())
}

func mapOrder(protocol activity.Protocol, activityType activity.ActivityType, rawOrder []byte, chainId domain.ChainId, contractAddress domain.Address) (*mappedOrder, error) {
	switch protocol {
	case activity.ProtocolSeaport:
		return mapSeaportOrder(activityType, rawOrder, chainId, contractAddress)
	case activity.ProtocolLooksrare:
		return mapLooksrareOrder(activityType, rawOrder, chainId, contractAddress)
	case activity.ProtocolX2Y2:
		return mapX2y2Order(activityType, rawOrder, chainId, contractAddress)
	case activity.ProtocolNative:
		return mapNativeOrder(activityType, rawOrder, chainId, contractAddress)
	}
	return nil, domain.ErrInvalidProtocol
}
