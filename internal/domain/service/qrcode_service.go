package service

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateReviewQR returns a PNG QR code that opens the product's review page.
	GenerateReviewQR(productID string) ([]byte, error)

	// ReviewURL is the link encoded by GenerateReviewQR.
	ReviewURL(productID string) string
}
