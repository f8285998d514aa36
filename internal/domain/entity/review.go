package entity

import "time"

// Review is a customer's rating of a product. There is at most one per
// (ProductID, UserID); the user's identity is the review's key.
type Review struct {
	ProductID  string    `json:"productId"`
	UserID     string    `json:"userId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	AuthorName string    `json:"authorName"`
	Email      string    `json:"email,omitempty"`
	OrderID    string    `json:"orderId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"` // Assigned by the store on first write, kept on replace.
	UpdatedAt  time.Time `json:"updatedAt"`
}
