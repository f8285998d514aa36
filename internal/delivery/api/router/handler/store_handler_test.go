package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bakery/internal/domain/entity"
	mockUC "bakery/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStoreHandler_GetStatus(t *testing.T) {
	storeUC := mockUC.NewMockStoreStatusUsecase(t)
	h := NewStoreHandler(StoreHandlerParams{StoreStatusUC: storeUC})

	message := "Estamos cerrados. Nuestro horario de hoy (sábado) es de 9:00 a 16:00."
	next := "09:00"
	storeUC.EXPECT().CurrentStatus(mock.Anything).Return(entity.StoreStatus{
		IsOpen:          false,
		ClosedMessage:   &message,
		NextOpeningTime: &next,
		EvaluatedAt:     time.Date(2024, 6, 15, 14, 0, 0, 0, time.UTC),
	})

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/store/status", nil), rec)

	require.NoError(t, h.GetStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body.Data["isOpen"])
	assert.Equal(t, message, body.Data["closedMessage"])
	assert.Equal(t, "09:00", body.Data["nextOpeningTime"])
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
