package models

import (
	"time"

	"gorm.io/datatypes"
)

// Receipt is one purchased credit bundle in the payment ledger. The
// receipt ID is embedded in the signed token the purchaser holds;
// spends decrement against it.
type Receipt struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ReceiptID string         `gorm:"uniqueIndex;size:64" json:"receipt_id"`
	ClientID  string         `gorm:"index;size:128" json:"client_id"`
	Credits   int64          `json:"credits"`
	Spent     int64          `json:"spent"`
	ExpiresAt time.Time      `json:"expires_at"`
	Metadata  datatypes.JSON `json:"metadata,omitempty"`
}

func (r *Receipt) Remaining() int64 {
	return r.Credits - r.Spent
}

func (r *Receipt) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}

// Spend records one debit against a receipt, keyed by the operation
// that consumed it.
type Spend struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	ReceiptID string `gorm:"index;size:64" json:"receipt_id"`
	Operation string `gorm:"size:64" json:"operation"`
	Credits   int64  `json:"credits"`
}
