package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/api-sage/bank-records-api/internal/domain"
)

func init() {
	// Fees travel as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type BankResponse struct {
	ID             int64           `json:"id"`
	AccountNumber  string          `json:"accountNumber"`
	TransactionFee decimal.Decimal `json:"transactionFee"`
	TrustFee       decimal.Decimal `json:"trustFee"`
}

type BankRequest struct {
	ID             *int64           `json:"id"`
	AccountNumber  string           `json:"accountNumber"`
	TransactionFee *decimal.Decimal `json:"transactionFee"`
	TrustFee       *decimal.Decimal `json:"trustFee"`
}

// Validate applies the field checks required for a create: account number
// present, both fees present and non-negative. Updates skip this so the
// service's own id check decides the response first.
func (r BankRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.AccountNumber) == "" {
		errs = append(errs, "accountNumber is required")
	}

	if r.TransactionFee == nil {
		errs = append(errs, "transactionFee is required")
	} else if r.TransactionFee.IsNegative() {
		errs = append(errs, "transactionFee must not be negative")
	}

	if r.TrustFee == nil {
		errs = append(errs, "trustFee is required")
	} else if r.TrustFee.IsNegative() {
		errs = append(errs, "trustFee must not be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

func (r BankRequest) ToDomain() domain.Bank {
	bank := domain.Bank{
		ID:            r.ID,
		AccountNumber: r.AccountNumber,
	}
	if r.TransactionFee != nil {
		bank.TransactionFee = *r.TransactionFee
	}
	if r.TrustFee != nil {
		bank.TrustFee = *r.TrustFee
	}

	return bank
}

func FromBank(bank domain.Bank) BankResponse {
	resp := BankResponse{
		AccountNumber:  bank.AccountNumber,
		TransactionFee: bank.TransactionFee,
		TrustFee:       bank.TrustFee,
	}
	if bank.ID != nil {
		resp.ID = *bank.ID
	}

	return resp
}

func FromBanks(banks []domain.Bank) []BankResponse {
	out := make([]BankResponse, 0, len(banks))
	for _, bank := range banks {
		out = append(out, FromBank(bank))
	}

	return out
}
