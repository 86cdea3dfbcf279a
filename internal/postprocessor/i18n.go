package postprocessor

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Translator renders an indicator name for the configured locale. Calculators
// receive one explicitly instead of reaching for ambient locale state.
type Translator func(string) string

// Identity is the no-op translator.
func Identity(s string) string { return s }

// Indicator name translations, Indonesian.
var indonesianNames = map[string]string{
	"Total":                 "Jumlah",
	"Female population":     "Jumlah penduduk perempuan",
	"Weekly hygiene packs":  "Paket kebersihan mingguan",
	"Additional weekly rice kg for pregnant and lactating women": "Tambahan beras mingguan (kg) untuk ibu hamil dan menyusui",
	"Youth":   "Remaja",
	"Adult":   "Dewasa",
	"Elderly": "Lansia",
}

func init() {
	for key, id := range indonesianNames {
		_ = message.SetString(language.Indonesian, key, id)
	}
}

// NewTranslator builds a Translator for a BCP 47 locale string. Unknown
// locales and untranslated names fall back to the English name.
func NewTranslator(locale string) Translator {
	tag, err := language.Parse(locale)
	if err != nil {
		return Identity
	}
	p := message.NewPrinter(tag)
	return func(s string) string { return p.Sprintf(message.Key(s, s)) }
}
