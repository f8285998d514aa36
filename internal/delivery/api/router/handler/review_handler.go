package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"bakery/internal/delivery/api/middleware"
	"bakery/internal/delivery/api/response"
	"bakery/internal/delivery/api/validator"
	"bakery/internal/domain/entity"
	domainerrors "bakery/internal/domain/errors"
	"bakery/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler holds dependencies for product review handlers
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// SubmitReviewRequest is the body of POST /api/products/:id/reviews.
// The author's identity comes from the bearer token, never the body.
type SubmitReviewRequest struct {
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment"`
	AuthorName string `json:"authorName" validate:"max=80"`
	OrderID    string `json:"orderId" validate:"max=64"`
}

// RatingResponse is the product rating as the storefront shows it.
type RatingResponse struct {
	ProductID       string         `json:"productId"`
	AvgRating       float64        `json:"avgRating"`
	DisplayRating   float64        `json:"displayRating"` // One decimal, what the product card prints
	RatingCount     int            `json:"ratingCount"`
	RatingBreakdown map[string]int `json:"ratingBreakdown"`
}

// ReviewResponse is a public review. The author's email is not exposed.
type ReviewResponse struct {
	UserID     string    `json:"userId"`
	AuthorName string    `json:"authorName"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// SubmitReviewResponse is returned after a review is committed.
type SubmitReviewResponse struct {
	Review   ReviewResponse `json:"review"`
	Rating   RatingResponse `json:"rating"`
	Replaced bool           `json:"replaced"`
}

// SubmitReview handles a signed-in customer's review
func (h *ReviewHandler) SubmitReview(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrUnauthenticated)
	}

	var req SubmitReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message())
	}

	if err := c.Validate(&req); err != nil {
		fields := validator.FailedFields(err)
		if _, badRating := fields["rating"]; badRating {
			return response.HandleAppError(c, domainerrors.ErrInvalidRating.WithDetails("valor recibido: "+strconv.Itoa(req.Rating)))
		}

		return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), fields)
	}

	authorName := strings.TrimSpace(req.AuthorName)
	if authorName == "" {
		authorName = identity.Name
	}

	productID := c.Param("id")
	result, err := h.reviewUC.SubmitReview(c.Request().Context(), productID, &usecase.SubmitReviewInput{
		UserID:     identity.UserID,
		AuthorName: authorName,
		Email:      identity.Email,
		OrderID:    strings.TrimSpace(req.OrderID),
		Rating:     req.Rating,
		Comment:    strings.TrimSpace(req.Comment),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusCreated
	if result.Replaced {
		status = http.StatusOK
	}

	return response.Success(c, status, SubmitReviewResponse{
		Review:   toReviewResponse(result.Review),
		Rating:   toRatingResponse(result.Review.ProductID, result.Summary),
		Replaced: result.Replaced,
	})
}

// GetRating returns the product's rating summary
func (h *ReviewHandler) GetRating(c echo.Context) error {
	productID := c.Param("id")

	summary, err := h.reviewUC.GetRatingSummary(c.Request().Context(), productID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toRatingResponse(productID, *summary))
}

// ListReviews returns the product's newest reviews
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequestWithDetails(c, domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(),
				map[string]string{"limit": "numeric,min=0"})
		}
		limit = parsed
	}

	reviews, err := h.reviewUC.ListReviews(c.Request().Context(), c.Param("id"), limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, toReviewResponse(review))
	}

	return response.Success(c, http.StatusOK, out)
}

func toRatingResponse(productID string, summary entity.RatingSummary) RatingResponse {
	summary = summary.Normalize()

	return RatingResponse{
		ProductID:       productID,
		AvgRating:       summary.AvgRating,
		DisplayRating:   summary.RoundedAvg(),
		RatingCount:     summary.RatingCount,
		RatingBreakdown: summary.RatingBreakdown,
	}
}

func toReviewResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		UserID:     review.UserID,
		AuthorName: review.AuthorName,
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
}
