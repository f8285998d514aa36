package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"bakery/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultBaseURL = "http://localhost:8080"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance. The codes link
// to {baseURL}/products/{productID}/review, the page a customer lands on
// from the printed ticket.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

func (s *qrcodeService) ReviewURL(productID string) string {
	return s.baseURL + "/products/" + url.PathEscape(productID) + "/review"
}

// GenerateReviewQR generates a PNG QR code pointing at the product's review page
func (s *qrcodeService) GenerateReviewQR(productID string) ([]byte, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, fmt.Errorf("product ID is required")
	}

	qrCode, err := qrcode.New(s.ReviewURL(productID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
