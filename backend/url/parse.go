package url

import (
	"fmt"
	"net/url"

	"github.com/epiclabs-io/elastic"
)

// Parse converts the named query value into result, which must be a pointer.
// A missing value leaves result untouched.
func Parse(name string, values url.Values, result interface{}) error {
	raw := values.Get(name)
	if raw == "" {
		return nil
	}
	if err := elastic.Set(result, raw); err != nil {
		return fmt.Errorf("query parameter %s: %w", name, err)
	}
	return nil
}

func ParseInt(name string, values url.Values, result *int) error {
	return Parse(name, values, result)
}

func ParseUint64(name string, values url.Values, result *uint64) error {
	return Parse(name, values, result)
}

func ParseBool(name string, values url.Values, result *bool) error {
	return Parse(name, values, result)
}

func ParseString(name string, values url.Values, result *string) {
	if raw := values.Get(name); raw != "" {
		*result = raw
	}
}
