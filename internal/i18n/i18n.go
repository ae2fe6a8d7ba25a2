// Package i18n provides localized country-name tables for the supported
// picker languages and the mapping from BCP-47 tags to those tables.
package i18n

import (
	"bufio"
	"embed"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/hightemp/name2cc/internal/countries"
)

//go:embed data/*.txt
var tablesFS embed.FS

// Table keys. Every supported language resolves to exactly one of these;
// English doubles as the fallback for unrecognized tags.
const (
	keyEnglish            = "en"
	keyArabic             = "ar"
	keyCroatian           = "hr"
	keyChineseSimplified  = "zh-Hans"
	keyChineseTraditional = "zh-Hant"
	keyGreek              = "el"
	keyBokmal             = "nb"
	keyNynorsk            = "nn"
	keyNepali             = "ne"
	keyPolish             = "pl"
	keyPortuguese         = "pt"
	keyRussian            = "ru"
	keyTurkish            = "tr"
	keyUkrainian          = "uk"
	keySpanish            = "es"
)

// supported lists the picker languages in their fixed enumeration order.
// The fallback search in the parser walks this order, so it must stay stable.
var supported = []language.Tag{
	language.English,
	language.Arabic,
	language.Croatian,
	language.SimplifiedChinese,
	language.TraditionalChinese,
	language.Greek,
	language.MustParse("nb"),
	language.MustParse("nn"),
	language.Nepali,
	language.Polish,
	language.Portuguese,
	language.Russian,
	language.Turkish,
	language.Ukrainian,
	language.Spanish,
}

var (
	// forward: table key -> country code -> localized display name
	forward map[string]map[string]string
	// reverse: table key -> lowercased display name -> country code
	reverse map[string]map[string]string
	once    sync.Once
)

func init() {
	loadTables()
}

func loadTables() {
	once.Do(func() {
		forward = make(map[string]map[string]string, len(supported))
		reverse = make(map[string]map[string]string, len(supported))

		// English has no data file; the code table's Name column is the
		// English table, which keeps the two from drifting apart.
		en := make(map[string]string, countries.Count())
		enRev := make(map[string]string, countries.Count())
		for _, c := range countries.All() {
			en[c.Code] = c.Name
			enRev[strings.ToLower(c.Name)] = c.Code
		}
		forward[keyEnglish] = en
		reverse[keyEnglish] = enRev

		entries, err := tablesFS.ReadDir("data")
		if err != nil {
			return
		}
		for _, entry := range entries {
			key := strings.TrimSuffix(entry.Name(), ".txt")
			data, err := tablesFS.ReadFile("data/" + entry.Name())
			if err != nil {
				continue
			}
			fwd := make(map[string]string, 64)
			rev := make(map[string]string, 64)
			scanner := bufio.NewScanner(strings.NewReader(string(data)))
			for scanner.Scan() {
				line := strings.TrimSpace(scanner.Text())
				if line == "" || strings.HasPrefix(line, "#") {
					continue
				}
				parts := strings.SplitN(line, ",", 2)
				if len(parts) != 2 {
					continue
				}
				code := strings.ToUpper(strings.TrimSpace(parts[0]))
				name := strings.TrimSpace(parts[1])
				if code == "" || name == "" {
					continue
				}
				fwd[code] = name
				rev[strings.ToLower(name)] = code
			}
			forward[key] = fwd
			reverse[key] = rev
		}
	})
}

// Supported returns the picker languages in their fixed enumeration order.
func Supported() []language.Tag {
	result := make([]language.Tag, len(supported))
	copy(result, supported)
	return result
}

// Fallback is the language searched when nothing else matches.
func Fallback() language.Tag {
	return language.English
}

// tableKey maps a language tag to its table. Chinese splits on script
// (Hant is Traditional, Hans or none is Simplified, matching what
// language.Parse infers for zh-TW and bare zh). Hindi shares the Nepali
// table. Anything unrecognized falls back to English.
func tableKey(tag language.Tag) string {
	base, _ := tag.Base()
	switch base.String() {
	case "ar":
		return keyArabic
	case "hr":
		return keyCroatian
	case "zh":
		if script, _ := tag.Script(); script.String() == "Hant" {
			return keyChineseTraditional
		}
		return keyChineseSimplified
	case "el":
		return keyGreek
	case "nb":
		return keyBokmal
	case "nn":
		return keyNynorsk
	case "ne", "hi":
		return keyNepali
	case "pl":
		return keyPolish
	case "pt":
		return keyPortuguese
	case "ru":
		return keyRussian
	case "tr":
		return keyTurkish
	case "uk":
		return keyUkrainian
	case "es":
		return keySpanish
	default:
		return keyEnglish
	}
}

// NameFor returns the display name of a country code in the table selected
// by tag. The second return is false when the table does not cover the code.
func NameFor(code string, tag language.Tag) (string, bool) {
	table, ok := forward[tableKey(tag)]
	if !ok {
		return "", false
	}
	name, ok := table[strings.ToUpper(code)]
	return name, ok
}

// CodeByName resolves a display name to its country code within the table
// selected by tag. Comparison is case-insensitive.
func CodeByName(name string, tag language.Tag) (string, bool) {
	table, ok := reverse[tableKey(tag)]
	if !ok {
		return "", false
	}
	code, ok := table[strings.ToLower(strings.TrimSpace(name))]
	return code, ok
}

// SameTable reports whether two tags resolve to the same translation table.
// Used to drop already-searched languages from the fallback set.
func SameTable(a, b language.Tag) bool {
	return tableKey(a) == tableKey(b)
}
