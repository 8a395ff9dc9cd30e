package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "handpay/internal/errors"
	"handpay/internal/model"
)

func fixedClock() time.Time {
	return time.Date(2026, time.October, 16, 14, 7, 59, 0, time.Local)
}

func TestPaymentService_Pay(t *testing.T) {
	tests := []struct {
		name          string
		payer         string
		amount        float64
		setupMock     func(*MockUserRepository, *MockTransactionRepository)
		expectedError error
	}{
		{
			name:   "successful payment",
			payer:  "alice",
			amount: 25.0,
			setupMock: func(u *MockUserRepository, tx *MockTransactionRepository) {
				u.On("FindCardByName", mock.Anything, "alice").Return("1111", nil)
				tx.On("Create", mock.Anything, mock.MatchedBy(func(got *model.Transaction) bool {
					return got.PayerName == "alice" &&
						got.PayeeName == "bob" &&
						got.Amount == 25.0 &&
						got.Timestamp == "2026-10-16 14:07" &&
						got.Status == model.TransactionStatusSuccess
				})).Return(nil)
			},
		},
		{
			name:   "negative amount accepted",
			payer:  "alice",
			amount: -3.5,
			setupMock: func(u *MockUserRepository, tx *MockTransactionRepository) {
				u.On("FindCardByName", mock.Anything, "alice").Return("1111", nil)
				tx.On("Create", mock.Anything, mock.AnythingOfType("*model.Transaction")).Return(nil)
			},
		},
		{
			name:   "unknown payer writes nothing",
			payer:  "ghost",
			amount: 10,
			setupMock: func(u *MockUserRepository, tx *MockTransactionRepository) {
				u.On("FindCardByName", mock.Anything, "ghost").Return("", apperrors.ErrNotFound)
			},
			expectedError: apperrors.ErrPayerNotFound,
		},
		{
			name:   "store failure on lookup",
			payer:  "alice",
			amount: 10,
			setupMock: func(u *MockUserRepository, tx *MockTransactionRepository) {
				u.On("FindCardByName", mock.Anything, "alice").Return("", apperrors.ErrStoreUnavailable)
			},
			expectedError: apperrors.ErrStoreUnavailable,
		},
		{
			name:   "store failure on insert",
			payer:  "alice",
			amount: 10,
			setupMock: func(u *MockUserRepository, tx *MockTransactionRepository) {
				u.On("FindCardByName", mock.Anything, "alice").Return("1111", nil)
				tx.On("Create", mock.Anything, mock.AnythingOfType("*model.Transaction")).Return(apperrors.ErrStoreUnavailable)
			},
			expectedError: apperrors.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(MockUserRepository)
			txRepo := new(MockTransactionRepository)
			tt.setupMock(userRepo, txRepo)

			service := NewPaymentService(userRepo, txRepo, nil, fixedClock)
			tx, err := service.Pay(context.Background(), tt.payer, "bob", tt.amount)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, tx)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.amount, tx.Amount)
				assert.Equal(t, model.TransactionStatusSuccess, tx.Status)
			}

			userRepo.AssertExpectations(t)
			txRepo.AssertExpectations(t)
		})
	}
}

func TestPaymentService_Pay_UnknownPayerSkipsInsert(t *testing.T) {
	userRepo := new(MockUserRepository)
	txRepo := new(MockTransactionRepository)
	userRepo.On("FindCardByName", mock.Anything, "ghost").Return("", apperrors.ErrNotFound)

	service := NewPaymentService(userRepo, txRepo, nil, fixedClock)
	_, err := service.Pay(context.Background(), "ghost", "bob", 1)

	assert.ErrorIs(t, err, apperrors.ErrPayerNotFound)
	txRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPaymentService_History(t *testing.T) {
	userRepo := new(MockUserRepository)
	txRepo := new(MockTransactionRepository)
	txRepo.On("ListByPayer", mock.Anything, "alice").Return([]model.Transaction{
		{ID: 2, PayeeName: "carol"},
		{ID: 1, PayeeName: "bob"},
	}, nil)
	txRepo.On("ListByPayer", mock.Anything, "nobody").Return([]model.Transaction{}, nil)

	service := NewPaymentService(userRepo, txRepo, nil, nil)

	txs, err := service.History(context.Background(), "alice")
	assert.NoError(t, err)
	assert.Len(t, txs, 2)
	assert.Equal(t, "carol", txs[0].PayeeName)

	txs, err = service.History(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Empty(t, txs)

	txRepo.AssertExpectations(t)
}
