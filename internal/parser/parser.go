// Package parser resolves free-form strings (ISO-3166 alpha-2 codes or
// localized country names) to country records.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/hightemp/name2cc/internal/countries"
	"github.com/hightemp/name2cc/internal/i18n"
)

// ErrNotFound is returned when neither a code nor a name lookup matched.
var ErrNotFound = errors.New("country not found")

// Options controls which translation tables a name lookup searches.
type Options struct {
	// Current is the caller's current language; searched first when set.
	// language.Und means no current language.
	Current language.Tag

	// Candidates, when non-nil, replaces the default fallback chain:
	// after Current, exactly these languages are searched in order, and
	// English only if listed. A non-nil empty slice searches nothing
	// beyond Current. When nil, English is searched after Current,
	// then every other supported language in enumeration order.
	Candidates []language.Tag
}

// Parse resolves input as a country code first, then as a country name
// with the default fallback chain.
func Parse(input string) (countries.Country, error) {
	return ParseWith(input, Options{})
}

// ParseWith is Parse with explicit name-lookup options.
func ParseWith(input string, opts Options) (countries.Country, error) {
	if c, ok := TryParseCode(input); ok {
		return c, nil
	}
	return ParseName(input, opts)
}

// TryParse is the non-failing form of Parse.
func TryParse(input string) (countries.Country, bool) {
	c, err := Parse(input)
	return c, err == nil
}

// ParseCode resolves an ISO-3166 alpha-2 code, case-insensitively.
// Zero matches and multiple matches both fail with ErrNotFound; a
// multiple match means the table itself is broken and must not be
// papered over by picking one row.
func ParseCode(code string) (countries.Country, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	var found countries.Country
	matches := 0
	for _, c := range countries.All() {
		if c.Code == normalized {
			found = c
			matches++
		}
	}
	if matches != 1 {
		return countries.Country{}, fmt.Errorf("%w: code %q matched %d entries", ErrNotFound, code, matches)
	}
	return found, nil
}

// TryParseCode is the non-failing form of ParseCode.
func TryParseCode(code string) (countries.Country, bool) {
	c, err := ParseCode(code)
	return c, err == nil
}

// ParseName resolves a localized country name to its record. Comparison is
// case-insensitive within each table; the first language whose table yields
// a hit wins.
func ParseName(name string, opts Options) (countries.Country, error) {
	for _, tag := range searchOrder(opts) {
		if code, ok := i18n.CodeByName(name, tag); ok {
			return ParseCode(code)
		}
	}
	return countries.Country{}, fmt.Errorf("%w: no translation table matches name %q", ErrNotFound, name)
}

// TryParseName is the non-failing form of ParseName.
func TryParseName(name string, opts Options) (countries.Country, bool) {
	c, err := ParseName(name, opts)
	return c, err == nil
}

// searchOrder builds the list of languages to search:
//  1. Current, when set.
//  2. If Candidates was provided, exactly those, in order.
//  3. Otherwise English, then every other supported language in the fixed
//     enumeration order, skipping tables already covered by 1 and English.
func searchOrder(opts Options) []language.Tag {
	hasCurrent := opts.Current != language.Und

	order := make([]language.Tag, 0, len(i18n.Supported())+1)
	if hasCurrent {
		order = append(order, opts.Current)
	}

	if opts.Candidates != nil {
		return append(order, opts.Candidates...)
	}

	fallback := i18n.Fallback()
	order = append(order, fallback)
	for _, tag := range i18n.Supported() {
		if i18n.SameTable(tag, fallback) {
			continue
		}
		if hasCurrent && i18n.SameTable(tag, opts.Current) {
			continue
		}
		order = append(order, tag)
	}
	return order
}
