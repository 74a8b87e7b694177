package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/webb-inc/webb/internal/content"
	"github.com/webb-inc/webb/internal/navigation"
	webberrors "github.com/webb-inc/webb/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("tab", func(fl validator.FieldLevel) bool {
			_, ok := navigation.ParseTab(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			_, ok := content.ParseCategory(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation on the settings.
func Validate(s *Settings) error {
	if s == nil {
		return webberrors.NewValidationError("settings", "settings are nil", nil)
	}

	if err := validatorInstance().Struct(s); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(s.FallbackProjects))
	for i, p := range s.FallbackProjects {
		if prev, ok := seen[p.ID]; ok {
			return webberrors.NewValidationError(
				fmt.Sprintf("fallback_projects[%d].id", i),
				fmt.Sprintf("duplicate project id %q (first at index %d)", p.ID, prev),
				nil,
			)
		}
		seen[p.ID] = i
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return webberrors.NewValidationError(field, msg, err)
	}

	return webberrors.NewValidationError("settings", err.Error(), err)
}

// yamlishFieldName turns "Settings.FallbackProjects[0].Category[1]" into
// "fallback_projects[0].category[1]".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, part := range parts {
		parts[i] = snakeCase(part)
	}
	return strings.Join(parts, ".")
}

func snakeCase(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		upper := r >= 'A' && r <= 'Z'
		if upper && i > 0 && runes[i-1] >= 'a' && runes[i-1] <= 'z' {
			b.WriteByte('_')
		}
		if upper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
