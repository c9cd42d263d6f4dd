package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/api-sage/bank-records-api/internal/domain"
	"github.com/api-sage/bank-records-api/internal/usecase/services"
)

type bankRepoStub struct {
	findAllFn             func(ctx context.Context) ([]domain.Bank, error)
	findByAccountNumberFn func(ctx context.Context, accountNumber string) (domain.Bank, error)
	findByIDFn            func(ctx context.Context, id int64) (domain.Bank, error)
	saveFn                func(ctx context.Context, bank domain.Bank) (domain.Bank, error)
	deleteFn              func(ctx context.Context, bank domain.Bank) error
}

func (s bankRepoStub) FindAll(ctx context.Context) ([]domain.Bank, error) {
	if s.findAllFn != nil {
		return s.findAllFn(ctx)
	}
	return nil, nil
}

func (s bankRepoStub) FindByAccountNumber(ctx context.Context, accountNumber string) (domain.Bank, error) {
	if s.findByAccountNumberFn != nil {
		return s.findByAccountNumberFn(ctx, accountNumber)
	}
	return domain.Bank{}, domain.ErrRecordNotFound
}

func (s bankRepoStub) FindByID(ctx context.Context, id int64) (domain.Bank, error) {
	if s.findByIDFn != nil {
		return s.findByIDFn(ctx, id)
	}
	return domain.Bank{}, domain.ErrRecordNotFound
}

func (s bankRepoStub) Save(ctx context.Context, bank domain.Bank) (domain.Bank, error) {
	if s.saveFn != nil {
		return s.saveFn(ctx, bank)
	}
	return bank, nil
}

func (s bankRepoStub) Delete(ctx context.Context, bank domain.Bank) error {
	if s.deleteFn != nil {
		return s.deleteFn(ctx, bank)
	}
	return nil
}

func int64Ptr(v int64) *int64 { return &v }

func storedBank(id int64, accountNumber string) domain.Bank {
	return domain.Bank{
		ID:             int64Ptr(id),
		AccountNumber:  accountNumber,
		TransactionFee: decimal.NewFromFloat(14.0),
		TrustFee:       decimal.NewFromFloat(1.0),
	}
}

func assertDomainError(t *testing.T, err error, kind domain.ErrorKind, message string) {
	t.Helper()

	var domainErr *domain.Error
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected domain error, got %v", err)
	}
	if domainErr.Kind != kind {
		t.Fatalf("expected error kind %d, got %d", kind, domainErr.Kind)
	}
	if domainErr.Message != message {
		t.Fatalf("expected message %q, got %q", message, domainErr.Message)
	}
}

func TestBankServiceCreateAssignsID(t *testing.T) {
	var saved domain.Bank
	svc := services.NewBankService(bankRepoStub{
		saveFn: func(_ context.Context, bank domain.Bank) (domain.Bank, error) {
			saved = bank
			bank.ID = int64Ptr(1)
			return bank, nil
		},
	})

	created, err := svc.CreateBank(context.Background(), domain.Bank{
		AccountNumber:  "123",
		TransactionFee: decimal.NewFromFloat(14.0),
		TrustFee:       decimal.NewFromFloat(1.0),
	})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if created.ID == nil || *created.ID != 1 {
		t.Fatalf("expected created bank to carry id 1, got %v", created.ID)
	}
	if saved.ID != nil {
		t.Fatal("expected insert without an id")
	}
	if saved.AccountNumber != "123" {
		t.Fatalf("expected account number 123, got %q", saved.AccountNumber)
	}
}

func TestBankServiceCreateDiscardsSubmittedID(t *testing.T) {
	var saved domain.Bank
	svc := services.NewBankService(bankRepoStub{
		saveFn: func(_ context.Context, bank domain.Bank) (domain.Bank, error) {
			saved = bank
			bank.ID = int64Ptr(7)
			return bank, nil
		},
	})

	_, err := svc.CreateBank(context.Background(), storedBank(42, "123"))
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if saved.ID != nil {
		t.Fatalf("expected submitted id to be discarded, save saw %v", saved.ID)
	}
}

func TestBankServiceCreateDuplicateAccount(t *testing.T) {
	saveCalled := false
	svc := services.NewBankService(bankRepoStub{
		findByAccountNumberFn: func(_ context.Context, accountNumber string) (domain.Bank, error) {
			return storedBank(1, accountNumber), nil
		},
		saveFn: func(_ context.Context, bank domain.Bank) (domain.Bank, error) {
			saveCalled = true
			return bank, nil
		},
	})

	_, err := svc.CreateBank(context.Background(), domain.Bank{AccountNumber: "123"})
	assertDomainError(t, err, domain.KindConflict, "Account Number 123 already Exists")
	if saveCalled {
		t.Fatal("expected no insert after duplicate account check")
	}
}

func TestBankServiceCreateStoreFailurePropagates(t *testing.T) {
	storeErr := errors.New("connection refused")
	svc := services.NewBankService(bankRepoStub{
		findByAccountNumberFn: func(context.Context, string) (domain.Bank, error) {
			return domain.Bank{}, storeErr
		},
	})

	_, err := svc.CreateBank(context.Background(), domain.Bank{AccountNumber: "123"})
	if !errors.Is(err, storeErr) {
		t.Fatalf("expected store error to propagate, got %v", err)
	}
	var domainErr *domain.Error
	if errors.As(err, &domainErr) {
		t.Fatal("expected store failure to stay unclassified")
	}
}

func TestBankServiceGetBankNotFound(t *testing.T) {
	svc := services.NewBankService(bankRepoStub{})

	_, err := svc.GetBank(context.Background(), "DOES_NOT_EXISTS")
	assertDomainError(t, err, domain.KindNotFound,
		"Bank details are not available for the given account number DOES_NOT_EXISTS")
}

func TestBankServiceGetBankSuccess(t *testing.T) {
	svc := services.NewBankService(bankRepoStub{
		findByAccountNumberFn: func(_ context.Context, accountNumber string) (domain.Bank, error) {
			return storedBank(1, accountNumber), nil
		},
	})

	bank, err := svc.GetBank(context.Background(), "123")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if bank.AccountNumber != "123" || bank.ID == nil || *bank.ID != 1 {
		t.Fatalf("unexpected bank %+v", bank)
	}
}

func TestBankServiceUpdateMissingID(t *testing.T) {
	repoTouched := false
	touch := func() { repoTouched = true }
	svc := services.NewBankService(bankRepoStub{
		findByAccountNumberFn: func(context.Context, string) (domain.Bank, error) {
			touch()
			return domain.Bank{}, domain.ErrRecordNotFound
		},
		findByIDFn: func(context.Context, int64) (domain.Bank, error) {
			touch()
			return domain.Bank{}, domain.ErrRecordNotFound
		},
		saveFn: func(_ context.Context, bank domain.Bank) (domain.Bank, error) {
			touch()
			return bank, nil
		},
	})

	_, err := svc.UpdateBank(context.Background(), domain.Bank{AccountNumber: "213"})
	assertDomainError(t, err, domain.KindInvalidArgument, "ID is mandatory")
	if repoTouched {
		t.Fatal("expected missing id to fail before any store access")
	}
}

func TestBankServiceUpdateUnknownRecord(t *testing.T) {
	svc := services.NewBankService(bankRepoStub{})

	_, err := svc.UpdateBank(context.Background(), storedBank(1, "213"))
	assertDomainError(t, err, domain.KindNotFound,
		"Bank details are not available for the given account number 213 / ID : 1")
}

func TestBankServiceUpdateMissingByAccountNumber(t *testing.T) {
	svc := services.NewBankService(bankRepoStub{
		findByIDFn: func(_ context.Context, id int64) (domain.Bank, error) {
			return storedBank(id, "other"), nil
		},
	})

	_, err := svc.UpdateBank(context.Background(), storedBank(1, "213"))
	assertDomainError(t, err, domain.KindNotFound,
		"Bank details are not available for the given account number 213 / ID : 1")
}

func TestBankServiceUpdateMissingByID(t *testing.T) {
	svc := services.NewBankService(bankRepoStub{
		findByAccountNumberFn: func(_ context.Context, accountNumber string) (domain.Bank, error) {
			return storedBank(2, accountNumber), nil
		},
	})

	_, err := svc.UpdateBank(context.Background(), storedBank(1, "213"))
	assertDomainError(t, err, domain.KindNotFound,
		"Bank details are not available for the given account number 213 / ID : 1")
}

func TestBankServiceUpdateRunsBothLookups(t *testing.T) {
	accountLookup := false
	idLookup := false
	svc := services.NewBankService(bankRepoStub{
		findByAccountNumberFn: func(context.Context, string) (domain.Bank, error) {
			accountLookup = true
			return domain.Bank{}, domain.ErrRecordNotFound
		},
		findByIDFn: func(context.Context, int64) (domain.Bank, error) {
			idLookup = true
			return domain.Bank{}, domain.ErrRecordNotFound
		},
	})

	_, _ = svc.UpdateBank(context.Background(), storedBank(1, "213"))
	if !accountLookup || !idLookup {
		t.Fatalf("expected both lookups to run, account=%v id=%v", accountLookup, idLookup)
	}
}

func TestBankServiceUpdateReplacesSubmittedValues(t *testing.T) {
	var saved domain.Bank
	svc := services.NewBankService(bankRepoStub{
		findByAccountNumberFn: func(_ context.Context, accountNumber string) (domain.Bank, error) {
			return storedBank(1, accountNumber), nil
		},
		findByIDFn: func(_ context.Context, id int64) (domain.Bank, error) {
			return storedBank(id, "213"), nil
		},
		saveFn: func(_ context.Context, bank domain.Bank) (domain.Bank, error) {
			saved = bank
			return bank, nil
		},
	})

	submitted := domain.Bank{
		ID:             int64Ptr(1),
		AccountNumber:  "213",
		TransactionFee: decimal.NewFromFloat(12.0),
		TrustFee:       decimal.NewFromFloat(2.5),
	}

	updated, err := svc.UpdateBank(context.Background(), submitted)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !saved.TransactionFee.Equal(decimal.NewFromFloat(12.0)) || !saved.TrustFee.Equal(decimal.NewFromFloat(2.5)) {
		t.Fatalf("expected full replace with submitted fees, saved %+v", saved)
	}
	if !updated.TransactionFee.Equal(submitted.TransactionFee) {
		t.Fatalf("expected updated bank to carry submitted values, got %+v", updated)
	}
}

func TestBankServiceDeleteNotFound(t *testing.T) {
	deleteCalled := false
	svc := services.NewBankService(bankRepoStub{
		deleteFn: func(context.Context, domain.Bank) error {
			deleteCalled = true
			return nil
		},
	})

	err := svc.DeleteBank(context.Background(), "DOES_NOT_EXISTS")
	assertDomainError(t, err, domain.KindNotFound,
		"Bank details are not available for the given account number DOES_NOT_EXISTS")
	if deleteCalled {
		t.Fatal("expected no delete for an unknown account number")
	}
}

func TestBankServiceDeleteSuccess(t *testing.T) {
	var deleted domain.Bank
	svc := services.NewBankService(bankRepoStub{
		findByAccountNumberFn: func(_ context.Context, accountNumber string) (domain.Bank, error) {
			return storedBank(3, accountNumber), nil
		},
		deleteFn: func(_ context.Context, bank domain.Bank) error {
			deleted = bank
			return nil
		},
	})

	if err := svc.DeleteBank(context.Background(), "123"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if deleted.ID == nil || *deleted.ID != 3 {
		t.Fatalf("expected delete of the stored record, got %+v", deleted)
	}
}

func TestBankServiceGetBanks(t *testing.T) {
	svc := services.NewBankService(bankRepoStub{
		findAllFn: func(context.Context) ([]domain.Bank, error) {
			return []domain.Bank{storedBank(1, "123"), storedBank(2, "456")}, nil
		},
	})

	banks, err := svc.GetBanks(context.Background())
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if len(banks) != 2 {
		t.Fatalf("expected 2 banks, got %d", len(banks))
	}
}
