package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bank holds the fee configuration for a single bank account.
// ID is nil until the record has been inserted by the store.
type Bank struct {
	ID             *int64
	AccountNumber  string
	TransactionFee decimal.Decimal
	TrustFee       decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
