package cli

import "errors"

// Common CLI errors
var (
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrNotInteractive = errors.New("interactive mode needs a terminal on stdin")
)
