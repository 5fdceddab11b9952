package application

import (
	"errors"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/oksasatya/talenthub/internal/domain"
)

// toValidationError converts ozzo field errors into a *domain.ValidationError
// keyed by JSON field name. Nested errors are flattened with dotted keys.
func toValidationError(err error) error {
	if err == nil {
		return nil
	}
	fields := map[string]string{}
	flatten("", err, fields)
	return domain.NewValidationError(fields)
}

func flatten(prefix string, err error, out map[string]string) {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		key := prefix
		if key == "" {
			key = "payload"
		}
		out[key] = err.Error()
		return
	}
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if errs[k] == nil {
			continue
		}
		name := k
		if prefix != "" {
			name = prefix + "." + k
		}
		flatten(name, errs[k], out)
	}
}
