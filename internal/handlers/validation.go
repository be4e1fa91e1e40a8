package handlers

import (
	"fmt"
	"sync"

	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerOnce sync.Once

// RegisterValidators adds the custom binding tags used by the request DTOs to
// gin's validator engine. Safe to call more than once.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err := v.RegisterValidation("regime", validateRegime); err != nil {
			panic(fmt.Sprintf("handlers: register regime validator: %v", err))
		}
	})
}

func validateRegime(fl validator.FieldLevel) bool {
	return domain.PrimaryRegime(fl.Field().String()).Valid()
}
