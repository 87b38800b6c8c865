package auth

import (
	"github.com/frahmantamala/hrms-client/internal/core/common/validation"
)

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (d LoginDTO) Validate() error {
	validator := validation.NewValidator()
	validator.Field("email", d.Email).Required()
	validator.Field("password", d.Password).Required()
	if err := validator.Validate(); err != nil {
		return err
	}
	return nil
}
