package auth

import (
	"context"

	usermodel "github.com/frahmantamala/hrms-client/internal/core/datamodel/user"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the token claims the stub issues at login.
type Claims struct {
	UserID string `json:"uid"`
	EmpNo  string `json:"empNo,omitempty"`
	jwt.RegisteredClaims
}

type TokenGenerator interface {
	GenerateAccessToken(user *usermodel.User) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Repository interface {
	GetByEmail(ctx context.Context, email string) (*usermodel.User, error)
	GetByID(ctx context.Context, id string) (*usermodel.User, error)
}

type ServiceAPI interface {
	Authenticate(ctx context.Context, dto LoginDTO) (*usermodel.User, string, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	GetUser(ctx context.Context, id string) (*usermodel.User, error)
}
