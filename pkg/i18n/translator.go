package i18n

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no better match exists.
const DefaultLanguage = "en"

// Translator looks up messages by language and dot-separated key.
// It is safe for concurrent use.
type Translator struct {
	mu             sync.RWMutex
	translations   map[string]map[string]any
	langs          []string
	matcher        language.Matcher
	matchOrder     []string
	defaultLang    string
	fallbackToKey  bool
	missingLogMode bool
	logger         *slog.Logger
}

// NewTranslator loads translations from adapter and applies options.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, messages := range translations {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidTranslationsLayout)
		}
		if messages == nil {
			return nil, fmt.Errorf("%w: nil messages for %q", ErrInvalidTranslationsLayout, lang)
		}
	}

	t.translations = translations
	t.langs = sortedLanguages(translations)
	t.matcher, t.matchOrder = newMatcher(t.langs, t.defaultLang)

	t.logger.DebugContext(ctx, "translations loaded", slog.Any("languages", t.langs))
	return t, nil
}

// SupportedLanguages returns the loaded language codes in sorted order.
func (t *Translator) SupportedLanguages() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.langs)
}

// HasTranslation reports whether key exists for lang.
func (t *Translator) HasTranslation(lang, key string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	messages, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(messages, key)
	return ok
}

// T translates key for lang, substituting "%{name}" placeholders from
// name/value pairs in args. A trailing unpaired arg is ignored.
//
//	// "validation.nip": "%{field} must be a valid NIP number"
//	t.T("en", "validation.nip", "field", "tax_id") // "tax_id must be a valid NIP number"
//
// Missing languages or keys return the key itself, or "" when
// WithFallbackToKey(false) was given.
func (t *Translator) T(lang, key string, args ...string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	messages, ok := t.translations[lang]
	if !ok {
		return t.missing("language not supported", lang, key, args)
	}

	val, ok := lookup(messages, key)
	if !ok {
		return t.missing("translation not found", lang, key, args)
	}

	switch v := val.(type) {
	case string:
		return substitute(v, args)
	case fmt.Stringer:
		return substitute(v.String(), args)
	case int, int64, float64, bool:
		return fmt.Sprint(v)
	default:
		return t.missing("translation is not a string", lang, key, args)
	}
}

// Match returns the supported language closest to tag, e.g. "pl-PL" -> "pl".
// Unparsable or unsupported tags resolve to the default language.
func (t *Translator) Match(tag string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if slices.Contains(t.langs, tag) {
		return tag
	}

	parsed, err := language.Parse(tag)
	if err != nil || len(t.langs) == 0 {
		return t.defaultLang
	}

	_, idx, confidence := t.matcher.Match(parsed)
	if confidence == language.No {
		return t.defaultLang
	}
	return t.matchOrder[idx]
}

func (t *Translator) missing(reason, lang, key string, args []string) string {
	if t.missingLogMode {
		t.logger.Warn(reason, slog.String("lang", lang), slog.String("key", key))
	}
	if t.fallbackToKey {
		return substitute(key, args)
	}
	return ""
}

func sortedLanguages(translations map[string]map[string]any) []string {
	langs := make([]string, 0, len(translations))
	for lang := range translations {
		langs = append(langs, lang)
	}
	slices.Sort(langs)
	return langs
}

// newMatcher puts the default language first, as the matcher falls back to
// its first entry. The returned order maps match indexes back to codes.
func newMatcher(langs []string, defaultLang string) (language.Matcher, []string) {
	order := slices.Clone(langs)
	if i := slices.Index(order, defaultLang); i > 0 {
		order[0], order[i] = order[i], order[0]
	}

	tags := make([]language.Tag, len(order))
	for i, lang := range order {
		tags[i] = language.Make(lang)
	}
	return language.NewMatcher(tags), order
}

// lookup walks nested maps along a dot-separated key.
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m

	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}

		switch next := val.(type) {
		case map[string]any:
			current = next
		case map[any]any:
			current = make(map[string]any, len(next))
			for k, v := range next {
				if ks, ok := k.(string); ok {
					current[ks] = v
				}
			}
		default:
			return nil, false
		}
	}

	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// substitute replaces %{name} placeholders; unknown names are left as is.
func substitute(tmpl string, args []string) string {
	if len(args) < 2 || !strings.Contains(tmpl, "%{") {
		return tmpl
	}

	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}

	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
