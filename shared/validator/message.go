package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// messageByTag maps a validation tag to a human-readable template. The
// placeholders are substituted with the failing field and the tag's
// parameter before the message is returned to the client.
var messageByTag = map[string]string{
	"required": "{field} is required",
	"email":    "{field} must be a valid email address",
	"min":      "{field} must be greater than or equal to {param}",
	"max":      "{field} must be less than or equal to {param}",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"oneof":    "{field} must be one of {param}",
}

// message renders the first validation failure as a client-facing string.
func message(err error) string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		template, ok := messageByTag[valErr.Tag()]
		if !ok {
			continue
		}

		return strings.NewReplacer(
			"{field}", valErr.Field(),
			"{param}", valErr.Param(),
		).Replace(template)
	}

	return valErrors.Error()
}
