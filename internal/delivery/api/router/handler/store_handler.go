package handler

import (
	"net/http"

	"bakery/internal/delivery/api/response"
	"bakery/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreStatusUC usecase.StoreStatusUsecase
}

// StoreHandler serves the storefront availability banner.
type StoreHandler struct {
	storeStatusUC usecase.StoreStatusUsecase
}

func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{storeStatusUC: params.StoreStatusUC}
}

// GetStatus returns the last evaluated availability.
func (h *StoreHandler) GetStatus(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.storeStatusUC.CurrentStatus(c.Request().Context()))
}
