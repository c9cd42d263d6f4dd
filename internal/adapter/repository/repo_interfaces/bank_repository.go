package repo_interfaces

import (
	"context"

	"github.com/api-sage/bank-records-api/internal/domain"
)

// BankRepository is the record store consumed by the bank service. Lookups
// return domain.ErrRecordNotFound when nothing matches. Save inserts and
// assigns an id when bank.ID is nil, otherwise fully replaces the row.
type BankRepository interface {
	FindAll(ctx context.Context) ([]domain.Bank, error)
	FindByAccountNumber(ctx context.Context, accountNumber string) (domain.Bank, error)
	FindByID(ctx context.Context, id int64) (domain.Bank, error)
	Save(ctx context.Context, bank domain.Bank) (domain.Bank, error)
	Delete(ctx context.Context, bank domain.Bank) error
}
