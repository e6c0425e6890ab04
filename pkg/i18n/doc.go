// Package i18n translates validation messages.
//
// A Translator is built from a TranslationAdapter: MapAdapter for in-memory
// catalogues or FSAdapter for YAML files in any fs.FS. NewDefault loads the
// bundled English and Polish catalogues:
//
//	tr, err := i18n.NewDefault(ctx)
//	lang := tr.Match("pl-PL") // "pl"
//	msg := tr.T(lang, "validation.nip", "field", "nip")
//
// Translator satisfies validator.Translator, so ValidationErrors can be
// rendered directly with verrs.Localize(tr, lang).
//
// Catalogues are parsed with gopkg.in/yaml.v3 and language tags are matched
// with golang.org/x/text/language.
package i18n
