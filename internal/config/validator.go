package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/aleister1102/webwatcher/internal/common"
	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// getValidator returns the shared validator with the custom rules registered.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()

		_ = validate.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
			switch strings.ToLower(fl.Field().String()) {
			case "", "trace", "debug", "info", "warn", "error", "fatal", "panic":
				return true
			default:
				return false
			}
		})

		_ = validate.RegisterValidation("logformat", func(fl validator.FieldLevel) bool {
			switch strings.ToLower(fl.Field().String()) {
			case "", "console", "text", "json":
				return true
			default:
				return false
			}
		})

		// Record names are "<prefix><encoded url>", so the prefix must not
		// leave the state directory.
		_ = validate.RegisterValidation("filenamepart", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return !strings.ContainsAny(s, `/\`) && s != "." && s != ".."
		})
	})
	return validate
}

// ValidateConfig checks the ambient sections of cfg. Email settings are
// validated separately by EmailConfig.Validate when a notice is sent.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return common.NewConfigurationError("", "", "configuration is nil")
	}
	if err := validateStruct(cfg.Log, nil); err != nil {
		return err
	}
	if err := validateStruct(cfg.Storage, nil); err != nil {
		return err
	}
	return validateStruct(cfg.HTTP, nil)
}

// validateStruct runs the validator and converts the first failure into a
// *common.ConfigurationError. envNames maps struct fields to the environment
// variable they are read from.
func validateStruct(s interface{}, envNames map[string]string) error {
	err := getValidator().Struct(s)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return &common.ConfigurationError{Reason: "validation failed", Wrapped: err}
	}

	fe := errs[0]
	section := strings.ToLower(strings.TrimSuffix(fe.StructNamespace(), "."+fe.StructField()))
	section = strings.TrimSuffix(section, "config")

	if envName, ok := envNames[fe.StructField()]; ok && fe.Tag() == "required" {
		return &common.ConfigurationError{
			Section: "env",
			Field:   envName,
			Reason:  fmt.Sprintf("env var %s not set", envName),
			Wrapped: common.ErrMissingEnv,
		}
	}

	reason := fmt.Sprintf("rule '%s' failed", fe.Tag())
	if fe.Param() != "" {
		reason += fmt.Sprintf(" (expected: %s)", fe.Param())
	}
	if fe.Value() != nil && fe.Value() != "" {
		reason += fmt.Sprintf(", actual: '%v'", fe.Value())
	}

	return &common.ConfigurationError{
		Section: section,
		Field:   fe.Field(),
		Reason:  reason,
		Wrapped: common.ErrInvalidConfiguration,
	}
}
