package params

import (
	"errors"
	"fmt"
)

// ErrConfig marks fatal declaration errors: the attribute map cannot
// produce a parameter and definition processing must stop.
var ErrConfig = errors.New("invalid parameter declaration")

// ConfigError carries the reason and the offending attribute map.
type ConfigError struct {
	Msg   string
	Attrs map[string]interface{}
}

func (e *ConfigError) Error() string {
	if len(e.Attrs) == 0 {
		return fmt.Sprintf("%s: %s", ErrConfig.Error(), e.Msg)
	}
	return fmt.Sprintf("%s: %s (declaration: %v)", ErrConfig.Error(), e.Msg, e.Attrs)
}

func (e *ConfigError) Unwrap() error { return ErrConfig }

func configErrorf(attrs map[string]interface{}, format string, args ...interface{}) error {
	return &ConfigError{Msg: fmt.Sprintf(format, args...), Attrs: attrs}
}
