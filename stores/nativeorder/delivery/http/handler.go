package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/nftcom/goledger/base/ctx"
	"github.com/nftcom/goledger/base/delivery"
	"github.com/nftcom/goledger/domain"
	dNativeorder "github.com/nftcom/goledger/domain/nativeorder"
)

type handler struct {
	nativeOrder dNativeorder.UseCase
}

func New(e *echo.Echo, _nativeOrder dNativeorder.UseCase) {
	h := &handler{_nativeOrder}
	g := e.Group("/native")
	g.GET("/asks/:id", h.getAsk)
	g.POST("/asks", h.placeAsk)
	g.POST("/asks/:id/executed", h.markAskExecuted)
	g.POST("/bids", h.placeBid)
	g.POST("/swaps", h.createSwap)
}

func (h *handler) getAsk(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	id := _ctx.Param("id")

	ask, err := h.nativeOrder.GetAsk(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, ask)
}

func (h *handler) placeAsk(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	p := &dNativeorder.Ask{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if p.StructHash == "" || p.MakerAddress == "" || len(p.MakeAssets) == 0 {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, domain.ErrMalformedOrder)
	}

	ask, err := h.nativeOrder.PlaceAsk(ctx, *p)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusCreated, ask)
}

func (h *handler) markAskExecuted(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	id := _ctx.Param("id")

	type payload struct {
		TxHash domain.TxHash `json:"txHash"`
	}
	p := &payload{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if p.TxHash == "" {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "txHash is required")
	}

	if err := h.nativeOrder.MarkAskExecuted(ctx, id, p.TxHash); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, "ok")
}

func (h *handler) placeBid(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	p := &dNativeorder.Bid{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if p.AskId == "" || p.StructHash == "" || p.MakerAddress == "" {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, domain.ErrMalformedOrder)
	}

	bid, err := h.nativeOrder.PlaceBid(ctx, *p)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusCreated, bid)
}

func (h *handler) createSwap(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)

	p := &dNativeorder.Swap{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if p.AskId == "" || p.BidId == "" || p.TxHash == "" {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, domain.ErrMalformedOrder)
	}

	swap, err := h.nativeOrder.CreateSwap(ctx, *p)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusCreated, swap)
}
