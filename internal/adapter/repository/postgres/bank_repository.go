package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/api-sage/bank-records-api/internal/domain"
	"github.com/api-sage/bank-records-api/internal/logger"
)

const uniqueViolation = "23505"

type BankRepository struct {
	db *sql.DB
}

type rowScanner interface {
	Scan(dest ...any) error
}

func NewBankRepository(db *sql.DB) *BankRepository {
	return &BankRepository{db: db}
}

func (r *BankRepository) FindAll(ctx context.Context) ([]domain.Bank, error) {
	logger.Info("bank repository find all", nil)

	const query = `
SELECT id, account_number, transaction_fee, trust_fee, created_at, updated_at
FROM banks
ORDER BY id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		logger.Error("bank repository find all failed", err, nil)
		return nil, fmt.Errorf("find all banks: %w", err)
	}
	defer rows.Close()

	banks := make([]domain.Bank, 0)
	for rows.Next() {
		var bank domain.Bank
		if err := scanBank(rows, &bank); err != nil {
			logger.Error("bank repository scan bank failed", err, nil)
			return nil, fmt.Errorf("scan bank: %w", err)
		}
		banks = append(banks, bank)
	}

	if err := rows.Err(); err != nil {
		logger.Error("bank repository iterate banks failed", err, nil)
		return nil, fmt.Errorf("iterate banks: %w", err)
	}

	logger.Info("bank repository find all success", logger.Fields{
		"count": len(banks),
	})

	return banks, nil
}

func (r *BankRepository) FindByAccountNumber(ctx context.Context, accountNumber string) (domain.Bank, error) {
	logger.Info("bank repository find by account number", logger.Fields{
		"accountNumber": accountNumber,
	})

	const query = `
SELECT id, account_number, transaction_fee, trust_fee, created_at, updated_at
FROM banks
WHERE account_number = $1`

	var bank domain.Bank
	if err := scanBank(r.db.QueryRowContext(ctx, query, accountNumber), &bank); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Info("bank repository record not found", logger.Fields{
				"accountNumber": accountNumber,
			})
			return domain.Bank{}, domain.ErrRecordNotFound
		}
		logger.Error("bank repository find by account number failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return domain.Bank{}, fmt.Errorf("find bank by account number: %w", err)
	}

	return bank, nil
}

func (r *BankRepository) FindByID(ctx context.Context, id int64) (domain.Bank, error) {
	logger.Info("bank repository find by id", logger.Fields{
		"bankId": id,
	})

	const query = `
SELECT id, account_number, transaction_fee, trust_fee, created_at, updated_at
FROM banks
WHERE id = $1`

	var bank domain.Bank
	if err := scanBank(r.db.QueryRowContext(ctx, query, id), &bank); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Info("bank repository record not found", logger.Fields{
				"bankId": id,
			})
			return domain.Bank{}, domain.ErrRecordNotFound
		}
		logger.Error("bank repository find by id failed", err, logger.Fields{
			"bankId": id,
		})
		return domain.Bank{}, fmt.Errorf("find bank by id: %w", err)
	}

	return bank, nil
}

// Save inserts the bank and assigns an id when bank.ID is nil, otherwise
// replaces every column of the existing row. A unique-constraint violation
// on account_number is reported as the conflict domain error, so a create
// losing the check-then-insert race still surfaces as a duplicate account.
func (r *BankRepository) Save(ctx context.Context, bank domain.Bank) (domain.Bank, error) {
	if bank.ID == nil {
		return r.insert(ctx, bank)
	}
	return r.update(ctx, bank)
}

func (r *BankRepository) insert(ctx context.Context, bank domain.Bank) (domain.Bank, error) {
	logger.Info("bank repository insert", logger.Fields{
		"accountNumber": bank.AccountNumber,
	})

	const query = `
INSERT INTO banks (account_number, transaction_fee, trust_fee)
VALUES ($1, $2, $3)
RETURNING id, account_number, transaction_fee, trust_fee, created_at, updated_at`

	var created domain.Bank
	if err := scanBank(r.db.QueryRowContext(
		ctx,
		query,
		bank.AccountNumber,
		bank.TransactionFee,
		bank.TrustFee,
	), &created); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			logger.Info("bank repository insert unique violation", logger.Fields{
				"accountNumber": bank.AccountNumber,
			})
			return domain.Bank{}, domain.AccountNumberExists(bank.AccountNumber)
		}
		logger.Error("bank repository insert failed", err, logger.Fields{
			"accountNumber": bank.AccountNumber,
		})
		return domain.Bank{}, fmt.Errorf("insert bank: %w", err)
	}

	logger.Info("bank repository insert success", logger.Fields{
		"bankId":        created.ID,
		"accountNumber": created.AccountNumber,
	})

	return created, nil
}

func (r *BankRepository) update(ctx context.Context, bank domain.Bank) (domain.Bank, error) {
	logger.Info("bank repository update", logger.Fields{
		"bankId":        bank.ID,
		"accountNumber": bank.AccountNumber,
	})

	const query = `
UPDATE banks
SET account_number = $2,
	transaction_fee = $3,
	trust_fee = $4,
	updated_at = NOW()
WHERE id = $1
RETURNING id, account_number, transaction_fee, trust_fee, created_at, updated_at`

	var updated domain.Bank
	if err := scanBank(r.db.QueryRowContext(
		ctx,
		query,
		*bank.ID,
		bank.AccountNumber,
		bank.TransactionFee,
		bank.TrustFee,
	), &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Bank{}, domain.ErrRecordNotFound
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return domain.Bank{}, domain.AccountNumberExists(bank.AccountNumber)
		}
		logger.Error("bank repository update failed", err, logger.Fields{
			"bankId": bank.ID,
		})
		return domain.Bank{}, fmt.Errorf("update bank: %w", err)
	}

	logger.Info("bank repository update success", logger.Fields{
		"bankId":        updated.ID,
		"accountNumber": updated.AccountNumber,
	})

	return updated, nil
}

func (r *BankRepository) Delete(ctx context.Context, bank domain.Bank) error {
	logger.Info("bank repository delete", logger.Fields{
		"bankId":        bank.ID,
		"accountNumber": bank.AccountNumber,
	})

	if bank.ID == nil {
		return domain.ErrRecordNotFound
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM banks WHERE id = $1`, *bank.ID)
	if err != nil {
		logger.Error("bank repository delete failed", err, logger.Fields{
			"bankId": bank.ID,
		})
		return fmt.Errorf("delete bank: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete bank rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrRecordNotFound
	}

	return nil
}

func scanBank(row rowScanner, bank *domain.Bank) error {
	return row.Scan(
		&bank.ID,
		&bank.AccountNumber,
		&bank.TransactionFee,
		&bank.TrustFee,
		&bank.CreatedAt,
		&bank.UpdatedAt,
	)
}
