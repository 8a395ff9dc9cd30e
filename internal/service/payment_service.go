package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	apperrors "handpay/internal/errors"
	"handpay/internal/model"
	"handpay/internal/repository"
)

// PaymentService records simulated payments and reads payment history.
type PaymentService interface {
	Pay(ctx context.Context, payer, payee string, amount float64) (*model.Transaction, error)
	History(ctx context.Context, name string) ([]model.Transaction, error)
}

type paymentService struct {
	userRepo        repository.UserRepository
	transactionRepo repository.TransactionRepository
	logger          *slog.Logger
	now             func() time.Time
}

// NewPaymentService creates a new payment service. A nil clock uses time.Now.
func NewPaymentService(
	userRepo repository.UserRepository,
	transactionRepo repository.TransactionRepository,
	logger *slog.Logger,
	clock func() time.Time,
) PaymentService {
	if logger == nil {
		logger = slog.Default()
	}
	if clock == nil {
		clock = time.Now
	}
	return &paymentService{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		logger:          logger,
		now:             clock,
	}
}

// Pay records a transaction once the payer is known. The payee is not checked
// and amounts are accepted as given.
func (s *paymentService) Pay(ctx context.Context, payer, payee string, amount float64) (*model.Transaction, error) {
	if _, err := s.userRepo.FindCardByName(ctx, payer); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrPayerNotFound
		}
		return nil, fmt.Errorf("check payer: %w", err)
	}

	tx := &model.Transaction{
		PayerName: payer,
		PayeeName: payee,
		Amount:    amount,
		Timestamp: s.now().Local().Format(model.TimestampLayout),
		Status:    model.TransactionStatusSuccess,
	}
	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("record transaction: %w", err)
	}

	s.logger.InfoContext(ctx, "payment recorded", "payer", payer, "payee", payee, "amount", amount, "transaction_id", tx.ID)
	return tx, nil
}

// History lists the payer's transactions, newest first.
func (s *paymentService) History(ctx context.Context, name string) ([]model.Transaction, error) {
	txs, err := s.transactionRepo.ListByPayer(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}
