package validator

import (
	"log"

	"github.com/go-playground/validator/v10"

	"taskhive_backend/internal/models"
)

// registerCustomRules registers the domain validation rules on the given
// validator instance.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// A rule that cannot be registered is a startup failure.
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-task-status", validateTaskStatus)
	mustRegister("geo_lat", validateLatitude)
	mustRegister("geo_lng", validateLongitude)
}

func validateTaskStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // empty values are covered by 'required'
	}
	return models.ValidTaskStatus(models.TaskStatus(value))
}

func validateLatitude(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return v >= -90 && v <= 90
}

func validateLongitude(fl validator.FieldLevel) bool {
	v := fl.Field().Float()
	return v >= -180 && v <= 180
}
