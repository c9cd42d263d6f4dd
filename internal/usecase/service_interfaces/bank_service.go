package service_interfaces

import (
	"context"

	"github.com/api-sage/bank-records-api/internal/domain"
)

type BankService interface {
	GetBanks(ctx context.Context) ([]domain.Bank, error)
	GetBank(ctx context.Context, accountNumber string) (domain.Bank, error)
	CreateBank(ctx context.Context, bank domain.Bank) (domain.Bank, error)
	UpdateBank(ctx context.Context, bank domain.Bank) (domain.Bank, error)
	DeleteBank(ctx context.Context, accountNumber string) error
}
