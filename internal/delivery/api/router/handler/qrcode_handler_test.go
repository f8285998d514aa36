package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	mockSvc "bakery/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newQRContext(productID string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/products/"+productID+"/review-qr", nil), rec)
	c.SetParamNames("id")
	c.SetParamValues(productID)

	return c, rec
}

func TestQRCodeHandler_GetReviewQR(t *testing.T) {
	qrSvc := mockSvc.NewMockQRCodeService(t)
	h := NewQRCodeHandler(QRCodeHandlerParams{QRCodeSvc: qrSvc, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})

	png := []byte("\x89PNG\r\n\x1a\n")
	qrSvc.EXPECT().GenerateReviewQR("baguette").Return(png, nil)
	qrSvc.EXPECT().ReviewURL("baguette").Return("https://panaderia.example/products/baguette/review")

	c, rec := newQRContext("baguette")
	require.NoError(t, h.GetReviewQR(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "https://panaderia.example/products/baguette/review", rec.Header().Get("X-Review-Url"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestQRCodeHandler_GetReviewQR_GenerationFails(t *testing.T) {
	qrSvc := mockSvc.NewMockQRCodeService(t)
	h := NewQRCodeHandler(QRCodeHandlerParams{QRCodeSvc: qrSvc, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	qrSvc.EXPECT().GenerateReviewQR("baguette").Return(nil, errors.New("content too long"))

	c, rec := newQRContext("baguette")
	require.NoError(t, h.GetReviewQR(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}
