package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/frahmantamala/hrms-client/internal"
	"github.com/frahmantamala/hrms-client/internal/auth"
	usermodel "github.com/frahmantamala/hrms-client/internal/core/datamodel/user"
)

// UserRepository implements the auth.Repository interface using GORM
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) auth.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*usermodel.User, error) {
	var u usermodel.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*usermodel.User, error) {
	var u usermodel.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
