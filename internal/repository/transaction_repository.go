package repository

import (
	"context"

	"gorm.io/gorm"

	"handpay/internal/model"
)

// TransactionRepository defines transaction persistence operations.
type TransactionRepository interface {
	Create(ctx context.Context, tx *model.Transaction) error
	ListByPayer(ctx context.Context, payer string) ([]model.Transaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository.
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// Create records a transaction row.
func (r *transactionRepository) Create(ctx context.Context, tx *model.Transaction) error {
	return classify(r.db.WithContext(ctx).Create(tx).Error)
}

// ListByPayer returns every transaction of payer, newest-inserted first.
func (r *transactionRepository) ListByPayer(ctx context.Context, payer string) ([]model.Transaction, error) {
	txs := make([]model.Transaction, 0)
	if err := r.db.WithContext(ctx).
		Where("payer_name = ?", payer).
		Order("id DESC").
		Find(&txs).Error; err != nil {
		return nil, classify(err)
	}
	return txs, nil
}
