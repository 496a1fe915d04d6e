package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/base/delivery"
	"github.com/nftcom/goledger/domain"
	dActivity "github.com/nftcom/goledger/domain/activity"
	"github.com/nftcom/goledger/middleware"
)

type handler struct {
	activity dActivity.UseCase
}

func New(e *echo.Echo, _activity dActivity.UseCase) {
	h := &handler{_activity}
	e.GET("/activities", h.getActivities)
	e.GET("/activities/count", h.countActivities)
	e.GET("/wallet/:wallet/activities", h.getWalletActivities, middleware.IsValidAddress("wallet"))
}

type activityParams struct {
	ChainId  *domain.ChainId           `query:"chainId"`
	Types    []dActivity.ActivityType  `query:"types"`
	Status   *dActivity.ActivityStatus `query:"status"`
	Network  *string                   `query:"network"`
	Contract *domain.Address           `query:"contract"`
	TokenId  *domain.TokenId           `query:"tokenId"`
	Offset   int32                     `query:"offset"`
	Limit    int32                     `query:"limit"`
	SortDesc *bool                     `query:"sortDesc"`
}

func (p *activityParams) toOptions() []dActivity.FindAllOptionsFunc {
	opts := []dActivity.FindAllOptionsFunc{
		dActivity.WithPagination(p.Offset, p.Limit),
	}
	if p.ChainId != nil {
		opts = append(opts, dActivity.WithChainId(*p.ChainId))
	}
	if len(p.Types) > 0 {
		opts = append(opts, dActivity.WithActivityTypes(p.Types...))
	}
	if p.Status != nil {
		opts = append(opts, dActivity.WithStatus(*p.Status))
	}
	if p.Network != nil && p.Contract != nil && p.TokenId != nil {
		opts = append(opts, dActivity.WithNftId(domain.MakeNftKey(*p.Network, *p.Contract, *p.TokenId)))
	}
	if p.SortDesc != nil {
		opts = append(opts, dActivity.WithSortDescending(*p.SortDesc))
	}
	return opts
}

func (h *handler) getActivities(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	p := &activityParams{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	res, err := h.activity.FindActivities(ctx, p.toOptions()...)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) countActivities(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	p := &activityParams{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	res, err := h.activity.CountActivities(ctx, p.toOptions()...)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) getWalletActivities(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	wallet := domain.Address(_ctx.Param("wallet"))

	p := &activityParams{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}

	opts := append(p.toOptions(), dActivity.WithWalletAddress(wallet))

	res, err := h.activity.FindActivities(ctx, opts...)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}
