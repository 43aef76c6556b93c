package engine

import "github.com/pkg/errors"

// Sentinel errors for argument and selection failures
var (
	ErrInvalidMode       = errors.New("not a valid gamemode")
	ErrInvalidDifficulty = errors.New("not a valid difficulty")
	ErrTooManyArgs       = errors.New("too many arguments")
)
