package payload

import (
	"blogapi/internal/core"

	"github.com/jellydator/validation"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate enforces the credential rules. Passwords are capped at 72 bytes,
// the most bcrypt will hash.
func (a RegisterRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required, validation.Length(4, 255)),
		validation.Field(&a.Password, validation.Required, validation.Length(6, 72)),
	)
}

func (a RegisterRequest) ToCoreAuthMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: a.Username,
		Password: a.Password,
	}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate only requires the username. Any password, including an empty one,
// is checked against the stored digest.
func (a LoginRequest) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Username, validation.Required),
	)
}

func (a LoginRequest) ToCoreAuthMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: a.Username,
		Password: a.Password,
	}
}

// IDRequest carries a single identifier, used by the user lookup and post edit routes.
type IDRequest struct {
	ID string `json:"id"`
}

func (i IDRequest) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.ID, validation.Required),
	)
}
