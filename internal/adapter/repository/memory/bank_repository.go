package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/api-sage/bank-records-api/internal/domain"
)

// BankRepository is an in-memory record store with the same contract as the
// postgres implementation: ids are assigned on first insert and the account
// number is unique across live records.
type BankRepository struct {
	mu     sync.Mutex
	nextID int64
	banks  map[int64]domain.Bank
}

func NewBankRepository() *BankRepository {
	return &BankRepository{
		nextID: 1,
		banks:  make(map[int64]domain.Bank),
	}
}

func (r *BankRepository) FindAll(_ context.Context) ([]domain.Bank, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	banks := make([]domain.Bank, 0, len(r.banks))
	for _, bank := range r.banks {
		banks = append(banks, bank)
	}

	sort.Slice(banks, func(i, j int) bool { return *banks[i].ID < *banks[j].ID })
	return banks, nil
}

func (r *BankRepository) FindByAccountNumber(_ context.Context, accountNumber string) (domain.Bank, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, bank := range r.banks {
		if bank.AccountNumber == accountNumber {
			return bank, nil
		}
	}

	return domain.Bank{}, domain.ErrRecordNotFound
}

func (r *BankRepository) FindByID(_ context.Context, id int64) (domain.Bank, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bank, ok := r.banks[id]
	if !ok {
		return domain.Bank{}, domain.ErrRecordNotFound
	}

	return bank, nil
}

func (r *BankRepository) Save(_ context.Context, bank domain.Bank) (domain.Bank, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()

	// Uniqueness constraint on account number, as the banks table enforces.
	for id, existing := range r.banks {
		if existing.AccountNumber != bank.AccountNumber {
			continue
		}
		if bank.ID == nil || *bank.ID != id {
			return domain.Bank{}, domain.AccountNumberExists(bank.AccountNumber)
		}
	}

	if bank.ID == nil {
		id := r.nextID
		r.nextID++
		bank.ID = &id
		bank.CreatedAt = now
	} else if existing, ok := r.banks[*bank.ID]; ok {
		bank.CreatedAt = existing.CreatedAt
	} else {
		return domain.Bank{}, domain.ErrRecordNotFound
	}

	bank.UpdatedAt = now
	r.banks[*bank.ID] = bank
	return bank, nil
}

func (r *BankRepository) Delete(_ context.Context, bank domain.Bank) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if bank.ID == nil {
		return domain.ErrRecordNotFound
	}
	if _, ok := r.banks[*bank.ID]; !ok {
		return domain.ErrRecordNotFound
	}

	delete(r.banks, *bank.ID)
	return nil
}
