package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nftcom/goledger/domain"
	"github.com/nftcom/goledger/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		switch {
		case errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrConflict):
			status = http.StatusConflict
		case errors.Is(err, domain.ErrForbidden):
			status = http.StatusForbidden
		case errors.Is(err, domain.ErrValidationFailed):
			status = http.StatusUnprocessableEntity
		case errors.Is(err, domain.ErrMalformedOrder) ||
			errors.Is(err, domain.ErrBadParamInput) ||
			errors.Is(err, domain.ErrInvalidChainId) ||
			errors.Is(err, domain.ErrInvalidProtocol) ||
			errors.Is(err, domain.ErrInvalidAddress):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrExternalAPI):
			status = http.StatusBadGateway
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
