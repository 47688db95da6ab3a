// Package enums holds the concrete enum-like tables and the views derived
// from them at package initialization.
package enums

import (
	_ "embed"
	"fmt"

	"enumkit/enumlike"
	"enumkit/internal/diagnostic"
	"enumkit/internal/tablefile"
)

// Language is a single entry of LanguageCode.
type Language struct {
	// Position is the display order.
	Position int `yaml:"position"`
	// IsoCode is the translation-service language code, mostly ISO 639-1.
	IsoCode string `yaml:"isoCode"`
	// Value is the English name.
	Value string `yaml:"value"`
	// Meta is the native name.
	Meta string `yaml:"meta"`
}

// Field selectors over Language.
var (
	PositionField = enumlike.FieldSelector[string]("position", func(l Language) int { return l.Position })
	IsoCodeField  = enumlike.FieldSelector[string]("isoCode", func(l Language) string { return l.IsoCode })
	ValueField    = enumlike.FieldSelector[string]("value", func(l Language) string { return l.Value })
	MetaField     = enumlike.FieldSelector[string]("meta", func(l Language) string { return l.Meta })
	languageKey   = enumlike.KeySelector[string, Language]()
)

//go:embed languages.yaml
var languagesYAML []byte

// LanguageCode lists the supported languages keyed by upper-case code.
// HA and HAw share the iso code "ha"; ZH_CN and ZH_TW share the meta "中文".
var LanguageCode = mustParse[Language]("languages.yaml", languagesYAML)

var (
	// LanguageCodeKey maps every LanguageCode key to itself.
	LanguageCodeKey = enumlike.KeyIdentity(LanguageCode)

	// LanguagesIterable holds the LanguageCode entries in display order.
	LanguagesIterable = enumlike.Pairs(LanguageCode)
	// Languages holds the LanguageCode values in display order.
	Languages = enumlike.Values(LanguageCode)
	// LanguageKeys holds the LanguageCode keys in display order.
	LanguageKeys = enumlike.Keys(LanguageCode)

	// LanguageGuard reports whether x is a Language from LanguageCode.
	LanguageGuard = enumlike.Guard(LanguageCode)
	// LanguageAssert fails with enumlike.ErrNotAMember for anything else.
	LanguageAssert = enumlike.Assert(LanguageCode)

	// IsoCodeToMeta maps iso code to native name.
	IsoCodeToMeta = enumlike.Remap(LanguageCode, IsoCodeField, MetaField)
	// MetaToIsoCode maps native name to iso code.
	MetaToIsoCode = enumlike.Remap(LanguageCode, MetaField, IsoCodeField)
	// IsoCodeToIsoCode maps every iso code to itself.
	IsoCodeToIsoCode = enumlike.Remap(LanguageCode, IsoCodeField, IsoCodeField)
	// KeyToIsoCode maps LanguageCode key to iso code.
	KeyToIsoCode = enumlike.Remap(LanguageCode, languageKey, IsoCodeField)
	// IsoCodeToKey maps iso code to LanguageCode key.
	IsoCodeToKey = enumlike.Remap(LanguageCode, IsoCodeField, languageKey)
	// PositionToKey maps display position to LanguageCode key.
	PositionToKey = enumlike.Remap(LanguageCode, PositionField, languageKey)

	// IsLanguageKey reports whether x is a LanguageCode key.
	IsLanguageKey = enumlike.Guard(LanguageCodeKey)
	// IsIsoCode reports whether code is used by some language.
	IsIsoCode = enumlike.GuardOf(KeyToIsoCode)
	// IsMetaName reports whether x is the native name of some language.
	IsMetaName = enumlike.Guard(IsoCodeToMeta)
)

// LanguageByIsoCode returns the language for an iso code. For "ha" it is
// the last of the two entries sharing it.
func LanguageByIsoCode(code string) (Language, bool) {
	key, ok := IsoCodeToKey.Get(code)
	if !ok {
		return Language{}, false
	}

	return LanguageCode.Get(key)
}

// Lint returns one line per Language field value shared by several
// entries. Lookups derived from such a field keep the later entry.
func Lint() []string {
	var diags diagnostic.Diagnostics

	diags.Merge(tablefile.CheckUnique("languages", LanguageCode, PositionField))
	diags.Merge(tablefile.CheckUnique("languages", LanguageCode, IsoCodeField))
	diags.Merge(tablefile.CheckUnique("languages", LanguageCode, ValueField))
	diags.Merge(tablefile.CheckUnique("languages", LanguageCode, MetaField))

	lines := make([]string, 0, len(diags.Warnings))
	for _, w := range diags.Warnings {
		lines = append(lines, w.String())
	}

	return lines
}

func mustParse[V any](name string, data []byte) *enumlike.Table[string, V] {
	t, err := tablefile.Parse[V](data)
	if err != nil {
		panic(fmt.Sprintf("enums: %s: %v", name, err))
	}

	return t
}
