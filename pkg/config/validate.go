package config

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validatorInst
}

// Struct validates v against its `validate` tags using a shared validator.
func Struct(v any) error {
	return get().Struct(v)
}
