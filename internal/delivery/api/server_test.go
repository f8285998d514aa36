package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bakery/config"
	"bakery/internal/delivery/api/middleware"
	"bakery/internal/delivery/api/router"
	"bakery/internal/delivery/api/router/handler"
	deliverycontext "bakery/internal/delivery/context"
	"bakery/internal/domain/entity"
	mockSvc "bakery/internal/mocks/service"
	mockUC "bakery/internal/mocks/usecase"
	"bakery/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type serverFixtures struct {
	echo     *echo.Echo
	reviewUC *mockUC.MockReviewUsecase
	storeUC  *mockUC.MockStoreStatusUsecase
	qrSvc    *mockSvc.MockQRCodeService
	verifier *mockSvc.MockTokenVerifier
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "1KB"
	cfg.HTTP.AllowOrigins = []string{"https://panaderia.example"}

	return cfg
}

func createTestServer(t *testing.T) serverFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fx := serverFixtures{
		reviewUC: mockUC.NewMockReviewUsecase(t),
		storeUC:  mockUC.NewMockStoreStatusUsecase(t),
		qrSvc:    mockSvc.NewMockQRCodeService(t),
		verifier: mockSvc.NewMockTokenVerifier(t),
	}

	fx.echo = NewEcho(testConfig(), logger, router.RouterParams{
		StoreHandler:   handler.NewStoreHandler(handler.StoreHandlerParams{StoreStatusUC: fx.storeUC}),
		ReviewHandler:  handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: fx.reviewUC, Logger: logger}),
		QRCodeHandler:  handler.NewQRCodeHandler(handler.QRCodeHandlerParams{QRCodeSvc: fx.qrSvc, Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(fx.verifier, logger),
	})

	return fx
}

func (f serverFixtures) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_Health(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_RequestIDIsEchoedInEnvelope(t *testing.T) {
	fx := createTestServer(t)
	fx.storeUC.EXPECT().CurrentStatus(mock.Anything).Return(entity.StoreStatus{IsOpen: true})

	req := httptest.NewRequest(http.MethodGet, "/api/store/status", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")
	rec := fx.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))

	var body struct {
		Data entity.StoreStatus `json:"data"`
		Meta struct {
			RequestID string `json:"request_id"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Data.IsOpen)
	assert.Nil(t, body.Data.ClosedMessage)
	assert.Equal(t, "req-42", body.Meta.RequestID)
}

func TestServer_SubmitReviewNeedsBearer(t *testing.T) {
	fx := createTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/products/croissant/reviews", strings.NewReader(`{"rating":5}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := fx.do(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
}

func TestServer_SubmitReviewEndToEnd(t *testing.T) {
	fx := createTestServer(t)
	fx.verifier.EXPECT().VerifyToken(mock.Anything, "tok").Return(&entity.Identity{UserID: "u9", Name: "Luis"}, nil)
	fx.reviewUC.EXPECT().
		SubmitReview(mock.Anything, "croissant", mock.MatchedBy(func(in *usecase.SubmitReviewInput) bool {
			return in.UserID == "u9" && in.AuthorName == "Luis" && in.Rating == 4
		})).
		Return(&usecase.SubmitReviewResult{
			Review:  &entity.Review{ProductID: "croissant", UserID: "u9", Rating: 4},
			Summary: entity.EmptyRatingSummary().Add(4),
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/products/croissant/reviews", strings.NewReader(`{"rating":4}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
	rec := fx.do(req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ratingCount":1`)
}

func TestServer_BodyLimit(t *testing.T) {
	fx := createTestServer(t)
	fx.verifier.EXPECT().VerifyToken(mock.Anything, "tok").Return(&entity.Identity{UserID: "u9"}, nil).Maybe()

	body := `{"rating":4,"comment":"` + strings.Repeat("a", 4096) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/products/croissant/reviews", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
	rec := fx.do(req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestServer_UnknownRouteUsesErrorEnvelope(t *testing.T) {
	fx := createTestServer(t)

	rec := fx.do(httptest.NewRequest(http.MethodGet, "/api/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"HTTP_ERROR"`)
}

func TestServer_CORSAllowsConfiguredOrigin(t *testing.T) {
	fx := createTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/store/status", nil)
	req.Header.Set(echo.HeaderOrigin, "https://panaderia.example")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	rec := fx.do(req)

	assert.Equal(t, "https://panaderia.example", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}

func TestNewServer_RegistersShutdownHook(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	lc := fxtest.NewLifecycle(t)

	srv, err := NewServer(ServerParams{
		Lc:     lc,
		Cfg:    testConfig(),
		Logger: logger,
		RouterParams: router.RouterParams{
			StoreHandler:   handler.NewStoreHandler(handler.StoreHandlerParams{StoreStatusUC: mockUC.NewMockStoreStatusUsecase(t)}),
			ReviewHandler:  handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: mockUC.NewMockReviewUsecase(t), Logger: logger}),
			QRCodeHandler:  handler.NewQRCodeHandler(handler.QRCodeHandlerParams{QRCodeSvc: mockSvc.NewMockQRCodeService(t), Logger: logger}),
			AuthMiddleware: middleware.NewAuthMiddleware(mockSvc.NewMockTokenVerifier(t), logger),
		},
	})
	require.NoError(t, err)
	require.NotNil(t, srv)

	lc.RequireStart()
	lc.RequireStop()
}
