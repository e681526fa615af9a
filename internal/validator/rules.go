package validator

import (
	"log"

	"tekfix_jobboard/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-register-role': роли, доступные при регистрации (без admin)
	mustRegister("is-register-role", validateRegisterRole)

	// 'is-job-type': тип занятости вакансии
	mustRegister("is-job-type", validateJobType)

	// 'is-experience': опыт соискателя
	mustRegister("is-experience", validateExperience)
}

// --- Функции валидации ---
// Пустые значения пропускаются, для них есть 'required'.

func validateRegisterRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.UserRole(value).CanSelfRegister()
}

func validateJobType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.JobType(value).IsValid()
}

func validateExperience(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || models.Experience(value).IsValid()
}
