package config

import "errors"

// ErrInvalidConfig is returned by Validate for settings that cannot be rendered
var ErrInvalidConfig = errors.New("invalid configuration")
