package services

import (
	"context"
	"errors"

	"github.com/api-sage/bank-records-api/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/bank-records-api/internal/domain"
	"github.com/api-sage/bank-records-api/internal/logger"
	"github.com/api-sage/bank-records-api/internal/usecase/service_interfaces"
)

// Verify that BankService implements the service_interfaces.BankService interface
var _ service_interfaces.BankService = (*BankService)(nil)

type BankService struct {
	bankRepo repo_interfaces.BankRepository
}

func NewBankService(bankRepo repo_interfaces.BankRepository) *BankService {
	return &BankService{bankRepo: bankRepo}
}

func (s *BankService) GetBanks(ctx context.Context) ([]domain.Bank, error) {
	logger.Info("bank service get banks request", nil)

	banks, err := s.bankRepo.FindAll(ctx)
	if err != nil {
		logger.Error("bank service get banks failed", err, nil)
		return nil, err
	}

	logger.Info("bank service get banks success", logger.Fields{
		"count": len(banks),
	})

	return banks, nil
}

func (s *BankService) GetBank(ctx context.Context, accountNumber string) (domain.Bank, error) {
	logger.Info("bank service get bank request", logger.Fields{
		"accountNumber": accountNumber,
	})

	bank, err := s.bankRepo.FindByAccountNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.Bank{}, domain.AccountDetailsNotAvailable(accountNumber)
		}
		logger.Error("bank service get bank failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return domain.Bank{}, err
	}

	return bank, nil
}

func (s *BankService) CreateBank(ctx context.Context, bank domain.Bank) (domain.Bank, error) {
	logger.Info("bank service create bank request", logger.Fields{
		"accountNumber": bank.AccountNumber,
	})

	_, err := s.bankRepo.FindByAccountNumber(ctx, bank.AccountNumber)
	switch {
	case err == nil:
		logger.Info("bank service create bank duplicate account", logger.Fields{
			"accountNumber": bank.AccountNumber,
		})
		return domain.Bank{}, domain.AccountNumberExists(bank.AccountNumber)
	case !errors.Is(err, domain.ErrRecordNotFound):
		logger.Error("bank service create bank lookup failed", err, logger.Fields{
			"accountNumber": bank.AccountNumber,
		})
		return domain.Bank{}, err
	}

	// Creation always produces a fresh identity; a submitted id is discarded.
	bank.ID = nil

	created, err := s.bankRepo.Save(ctx, bank)
	if err != nil {
		logger.Error("bank service create bank save failed", err, logger.Fields{
			"accountNumber": bank.AccountNumber,
		})
		return domain.Bank{}, err
	}

	logger.Info("bank service create bank success", logger.Fields{
		"bankId":        created.ID,
		"accountNumber": created.AccountNumber,
	})

	return created, nil
}

// UpdateBank fully replaces an existing record. The record must exist both
// under the submitted account number and under the submitted id; the two
// lookups are intentionally independent and are not cross-checked against
// each other, matching the documented API behavior.
func (s *BankService) UpdateBank(ctx context.Context, bank domain.Bank) (domain.Bank, error) {
	logger.Info("bank service update bank request", logger.Fields{
		"bankId":        bank.ID,
		"accountNumber": bank.AccountNumber,
	})

	if bank.ID == nil {
		return domain.Bank{}, domain.MandatoryValueMissing(domain.IDMandatory)
	}

	_, accountErr := s.bankRepo.FindByAccountNumber(ctx, bank.AccountNumber)
	_, idErr := s.bankRepo.FindByID(ctx, *bank.ID)

	if errors.Is(accountErr, domain.ErrRecordNotFound) || errors.Is(idErr, domain.ErrRecordNotFound) {
		logger.Info("bank service update bank record missing", logger.Fields{
			"bankId":        bank.ID,
			"accountNumber": bank.AccountNumber,
		})
		return domain.Bank{}, domain.AccountDetailsNotAvailableByID(bank.AccountNumber, *bank.ID)
	}
	if accountErr != nil {
		logger.Error("bank service update bank account lookup failed", accountErr, nil)
		return domain.Bank{}, accountErr
	}
	if idErr != nil {
		logger.Error("bank service update bank id lookup failed", idErr, nil)
		return domain.Bank{}, idErr
	}

	updated, err := s.bankRepo.Save(ctx, bank)
	if err != nil {
		logger.Error("bank service update bank save failed", err, logger.Fields{
			"bankId": bank.ID,
		})
		return domain.Bank{}, err
	}

	logger.Info("bank service update bank success", logger.Fields{
		"bankId":        updated.ID,
		"accountNumber": updated.AccountNumber,
	})

	return updated, nil
}

func (s *BankService) DeleteBank(ctx context.Context, accountNumber string) error {
	logger.Info("bank service delete bank request", logger.Fields{
		"accountNumber": accountNumber,
	})

	bank, err := s.bankRepo.FindByAccountNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return domain.AccountDetailsNotAvailable(accountNumber)
		}
		logger.Error("bank service delete bank lookup failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return err
	}

	if err := s.bankRepo.Delete(ctx, bank); err != nil {
		logger.Error("bank service delete bank failed", err, logger.Fields{
			"bankId": bank.ID,
		})
		return err
	}

	logger.Info("bank service delete bank success", logger.Fields{
		"bankId":        bank.ID,
		"accountNumber": accountNumber,
	})

	return nil
}
