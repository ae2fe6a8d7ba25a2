// Package locale detects the current language from the environment.
package locale

import (
	"os"
	"strings"

	"golang.org/x/text/language"

	"github.com/hightemp/name2cc/internal/config"
)

// envVars are checked in priority order; the first non-empty one wins.
var envVars = []string{config.EnvLang, "LC_ALL", "LC_MESSAGES", "LANG"}

// Detect returns the current language from the process environment.
// Returns language.Und and false when nothing usable is set.
func Detect() (language.Tag, bool) {
	return FromEnviron(os.Getenv)
}

// FromEnviron is Detect with an injectable environment, for tests.
func FromEnviron(getenv func(string) string) (language.Tag, bool) {
	for _, key := range envVars {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" || raw == "C" || raw == "POSIX" {
			continue
		}
		if tag, ok := ParsePOSIX(raw); ok {
			return tag, true
		}
	}
	return language.Und, false
}

// ParsePOSIX parses a locale value in POSIX form ("en_US.UTF-8",
// "nn_NO@nynorsk") or plain BCP-47 form ("zh-Hant-TW").
func ParsePOSIX(value string) (language.Tag, bool) {
	if i := strings.IndexByte(value, '.'); i >= 0 {
		value = value[:i]
	}
	if i := strings.IndexByte(value, '@'); i >= 0 {
		value = value[:i]
	}
	value = strings.ReplaceAll(strings.TrimSpace(value), "_", "-")
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil || tag == language.Und {
		return language.Und, false
	}
	return tag, true
}
