package i18n

import (
	"context"
	"embed"
)

//go:embed locales/*.yaml
var locales embed.FS

// NewDefault returns a Translator loaded with the bundled validation messages
// (English and Polish).
func NewDefault(ctx context.Context, options ...Option) (*Translator, error) {
	return NewTranslator(ctx, NewFSAdapter(NewYAMLParser(), locales, "locales"), options...)
}
