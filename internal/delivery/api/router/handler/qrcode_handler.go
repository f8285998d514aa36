package handler

import (
	"log/slog"
	"net/http"

	"bakery/internal/delivery/api/response"
	deliverycontext "bakery/internal/delivery/context"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// QRCodeHandlerParams holds dependencies for QRCodeHandler, injected by Fx.
type QRCodeHandlerParams struct {
	fx.In

	QRCodeSvc service.QRCodeService
	Logger    *slog.Logger
}

// QRCodeHandler serves the printable codes placed next to products in the shop.
type QRCodeHandler struct {
	qrCodeSvc service.QRCodeService
	logger    *slog.Logger
}

func NewQRCodeHandler(params QRCodeHandlerParams) *QRCodeHandler {
	return &QRCodeHandler{
		qrCodeSvc: params.QRCodeSvc,
		logger:    params.Logger,
	}
}

// GetReviewQR returns a PNG that opens the product's review page.
func (h *QRCodeHandler) GetReviewQR(c echo.Context) error {
	productID := c.Param("id")
	if productID == "" {
		return response.HandleAppError(c, domainerrors.ErrProductRequired)
	}

	png, err := h.qrCodeSvc.GenerateReviewQR(productID)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Error("Failed to generate review QR code",
			slog.String("product_id", productID),
			slog.Any("error", err),
		)

		return response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())
	}

	c.Response().Header().Set("X-Review-Url", h.qrCodeSvc.ReviewURL(productID))
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", png)
}
