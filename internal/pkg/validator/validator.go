package validator

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/transit-graph/internal/domain"
	apperrors "github.com/transit-graph/internal/pkg/errors"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("placetype", func(fl validator.FieldLevel) bool {
		return domain.PlaceType(fl.Field().String()).IsKnown()
	})
	_ = validate.RegisterValidation("transporttype", func(fl validator.FieldLevel) bool {
		_, ok := domain.ParseTransportationType(fl.Field().String())
		return ok
	})
}

// Validate - валидация структуры.
// Ошибки валидации возвращаются как INVALID_REQUEST с полями в details.
func Validate(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.ErrInvalidRequest.Wrap(err)
	}

	details := make(map[string]interface{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[strings.ToLower(fe.Field())] = fe.Tag()
	}
	return apperrors.InvalidRequest(details).Wrap(err)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}
