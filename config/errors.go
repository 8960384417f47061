package config

import "github.com/pkg/errors"

// Configuration errors abort the generation pass that detects them.
var (
	ErrMissingKey          = errors.New("config: missing required key")
	ErrMissingTranslations = errors.New("config: language has no translation mapping")
	ErrDuplicateLanguage   = errors.New("config: duplicate language")
	ErrInvalidDocument     = errors.New("config: invalid document")
)
