// Package countries provides the embedded ISO-3166 country table.
package countries

import (
	"bufio"
	_ "embed"
	"io"
	"strings"
	"sync"
)

//go:embed countries.txt
var countriesData string

// Country is one row of the country table. Values are immutable after load.
type Country struct {
	Code     string `json:"code"`      // ISO-3166 alpha-2, uppercase
	Name     string `json:"name"`      // English display name
	DialCode string `json:"dial_code"` // international dialing prefix, with "+"
	Flag     string `json:"flag"`      // emoji flag, derived from Code
}

var (
	all        []Country
	codeToName map[string]string
	once       sync.Once
)

func init() {
	loadData()
}

func loadData() {
	once.Do(func() {
		all = make([]Country, 0, 256)
		codeToName = make(map[string]string, 256)

		scanner := bufio.NewScanner(strings.NewReader(countriesData))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			parts := strings.SplitN(line, ",", 3)
			if len(parts) != 3 {
				continue
			}
			code := strings.ToUpper(strings.TrimSpace(parts[0]))
			dial := strings.TrimSpace(parts[1])
			name := strings.TrimSpace(parts[2])
			all = append(all, Country{
				Code:     code,
				Name:     name,
				DialCode: dial,
				Flag:     FlagEmoji(code),
			})
			codeToName[code] = name
		}
	})
}

// FlagEmoji converts an ISO-3166 alpha-2 code to its regional-indicator
// emoji flag. Returns empty string for anything that is not two ASCII letters.
func FlagEmoji(code string) string {
	code = strings.ToUpper(code)
	if len(code) != 2 {
		return ""
	}
	var b strings.Builder
	for _, c := range code {
		if c < 'A' || c > 'Z' {
			return ""
		}
		b.WriteRune(0x1F1E6 + c - 'A')
	}
	return b.String()
}

// All returns a copy of the country table.
func All() []Country {
	result := make([]Country, len(all))
	copy(result, all)
	return result
}

// Name returns the English country name for the given alpha-2 code.
// Returns empty string if not found.
func Name(code string) string {
	return codeToName[strings.ToUpper(code)]
}

// IsValid checks if the given code is present in the table.
func IsValid(code string) bool {
	_, ok := codeToName[strings.ToUpper(code)]
	return ok
}

// Count returns the number of countries in the table.
func Count() int {
	return len(all)
}

// LoadFromReader parses a caller-supplied table in the embedded format
// (CODE,DIAL,NAME lines, # comments). The embedded table is not affected.
func LoadFromReader(r io.Reader) ([]Country, error) {
	var result []Country
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, ",", 3)
		if len(parts) != 3 {
			continue
		}
		code := strings.ToUpper(strings.TrimSpace(parts[0]))
		result = append(result, Country{
			Code:     code,
			Name:     strings.TrimSpace(parts[2]),
			DialCode: strings.TrimSpace(parts[1]),
			Flag:     FlagEmoji(code),
		})
	}
	return result, scanner.Err()
}
