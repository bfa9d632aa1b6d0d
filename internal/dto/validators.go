package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/finandes/finops_backend/internal/core/domain"
)

// RegisterCustomValidations hooks domain-specific validations into gin's
// binding validator. Call once at startup.
func RegisterCustomValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("chequestatus", validChequeStatus)
	}
}

func validChequeStatus(fl validator.FieldLevel) bool {
	return domain.ValidChequeStatus(domain.ChequeStatus(fl.Field().String()))
}
