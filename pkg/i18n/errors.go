package i18n

import "errors"

var (
	ErrNilAdapter                = errors.New("translation adapter is nil")
	ErrYAMLParsingCancelled      = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML         = errors.New("failed to parse YAML content")
	ErrNoTranslations            = errors.New("no translations found")
	ErrLoadingCancelled          = errors.New("loading translations cancelled")
	ErrFailedToReadDirectory     = errors.New("failed to read translation directory")
	ErrFailedToReadFile          = errors.New("failed to read translation file")
	ErrFailedToParseFile         = errors.New("failed to parse translation file")
	ErrInvalidTranslationsLayout = errors.New("invalid translations layout")
)
