package i18n

import "errors"

var (
	ErrNoTranslations    = errors.New("no translations loaded")
	ErrFailedToReadFile  = errors.New("failed to read translation file")
	ErrFailedToParseYAML = errors.New("failed to parse YAML content")
	ErrInvalidStructure  = errors.New("invalid translation structure")
	ErrUnknownDefault    = errors.New("default language has no translations")
)
