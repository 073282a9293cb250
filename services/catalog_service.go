package services

import (
	"fmt"

	"github.com/heritagegrand/banquet_manager/models"
)

// ValidateSelections checks a booking's service map against the configured
// catalog: checkbox keys hold booleans, number keys hold values inside the
// configured bounds and dropdown keys hold one of the configured options.
// Unknown keys are rejected so stale selections surface instead of silently
// persisting.
func ValidateSelections(selections models.ServiceSelections, catalog []models.ServiceDefinition) error {
	byKey := make(map[string]models.ServiceDefinition, len(catalog))
	for _, def := range catalog {
		byKey[def.Key] = def
	}

	for key, value := range selections {
		def, ok := byKey[key]
		if !ok {
			return fmt.Errorf("unknown service %q", key)
		}

		switch def.Type {
		case models.ServiceCheckbox:
			if _, ok := value.(bool); !ok {
				return fmt.Errorf("service %q expects a boolean", key)
			}
		case models.ServiceNumber:
			n, ok := toNumber(value)
			if !ok {
				return fmt.Errorf("service %q expects a number", key)
			}
			if def.Min != nil && n < float64(*def.Min) {
				return fmt.Errorf("service %q below minimum %d", key, *def.Min)
			}
			if def.Max != nil && n > float64(*def.Max) {
				return fmt.Errorf("service %q above maximum %d", key, *def.Max)
			}
		case models.ServiceDropdown:
			s, ok := value.(string)
			if !ok {
				return fmt.Errorf("service %q expects an option string", key)
			}
			found := false
			for _, opt := range def.Options {
				if opt == s {
					found = true
					break
				}
			}
			if !found {
				return fmt.Errorf("service %q has no option %q", key, s)
			}
		default:
			return fmt.Errorf("service %q has unknown type %q", key, def.Type)
		}
	}
	return nil
}

// JSON decoding yields float64; selections built in code may carry ints.
func toNumber(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}
