package repository

import (
	"context"

	"gorm.io/gorm"

	"handpay/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByCredential(ctx context.Context, identifier, password string) (*model.User, error)
	FindProfile(ctx context.Context, name string) (*model.User, error)
	FindCardByName(ctx context.Context, name string) (string, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a user. A taken name yields ErrDuplicateName.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return classify(r.db.WithContext(ctx).Create(user).Error)
}

// FindByCredential matches identifier against name or email, and password by
// exact equality.
func (r *userRepository) FindByCredential(ctx context.Context, identifier, password string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Select("id", "name", "card_last4").
		Where("(name = ? OR email = ?) AND password = ?", identifier, identifier, password).
		First(&user).Error
	if err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

func (r *userRepository) FindProfile(ctx context.Context, name string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Select("id", "name", "email", "address", "card_last4").
		Where("name = ?", name).
		First(&user).Error
	if err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

// FindCardByName doubles as the existence check run before a payment.
func (r *userRepository) FindCardByName(ctx context.Context, name string) (string, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Select("id", "card_last4").
		Where("name = ?", name).
		First(&user).Error
	if err != nil {
		return "", classify(err)
	}
	return user.CardLast4, nil
}
