package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mimicfs/mimicfs/internal/util"
)

// validate is the singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate validates the configuration using struct tags plus custom rules
// that cannot be expressed in tags. Returns an error describing the first
// validation failure.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	return validateCustomRules(cfg)
}

// validateCustomRules performs custom validation beyond struct tags.
func validateCustomRules(cfg *Config) error {
	if cfg.LogLvl < util.TraceLevel || cfg.LogLvl > util.ErrorLevel {
		return fmt.Errorf("log_lvl: level %d out of range", cfg.LogLvl)
	}

	// A multi-line marker containing whitespace can never match a scanned
	// line after trimming.
	if strings.TrimSpace(cfg.EndMarker) != cfg.EndMarker {
		return fmt.Errorf("end_marker: %q must not contain leading or trailing whitespace", cfg.EndMarker)
	}

	return nil
}

// formatValidationError converts validator errors into user-friendly messages.
func formatValidationError(err error) error {
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrs) > 0 {
			e := validationErrs[0]
			return fmt.Errorf("%s: validation failed on '%s' tag (value: %v)",
				e.Namespace(), e.Tag(), e.Value())
		}
	}
	return err
}
