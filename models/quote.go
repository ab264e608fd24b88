package models

import "time"

// Quote request statuses. Transitions are unrestricted: any status may be set
// from any other by an explicit admin action.
const (
	QuoteStatusPending   = "PENDING"
	QuoteStatusContacted = "CONTACTED"
	QuoteStatusDone      = "DONE"
)

func IsValidQuoteStatus(s string) bool {
	switch s {
	case QuoteStatusPending, QuoteStatusContacted, QuoteStatusDone:
		return true
	}
	return false
}

type QuoteRequest struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	CustomerEmail string      `json:"customer_email,omitempty"`
	Note          string      `json:"note,omitempty"`
	Status        string      `gorm:"default:PENDING" json:"status"`
	QuoteItems    []QuoteItem `gorm:"foreignKey:QuoteRequestID" json:"quote_items"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

// QuoteItem has no cascade rule; deleting a request must delete its items
// first.
type QuoteItem struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	QuoteRequestID uint      `json:"quote_request_id"`
	ProductID      uint      `json:"product_id"`
	Quantity       int       `json:"quantity" validate:"required,min=1"`
	Product        Product   `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
