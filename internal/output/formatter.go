// Package output handles output formatting.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

var (
	codeColor  = color.New(color.FgCyan)
	nameColor  = color.New(color.FgWhite)
	dialColor  = color.New(color.FgGreen)
	errorColor = color.New(color.FgRed)
)

// LookupResult contains the result of one query.
type LookupResult struct {
	Query     string `json:"query"`
	Code      string `json:"code,omitempty"`
	Name      string `json:"name,omitempty"`
	LocalName string `json:"local_name,omitempty"`
	DialCode  string `json:"dial_code,omitempty"`
	Flag      string `json:"flag,omitempty"`
	Error     string `json:"error,omitempty"`
}

// FormatText formats result as tab-separated text. Colorization follows
// the global color.NoColor switch.
func (r *LookupResult) FormatText() string {
	if r.Error != "" {
		return fmt.Sprintf("%s\t-\t-\t-\t%s", r.Query, errorColor.Sprintf("ERROR: %s", r.Error))
	}

	name := r.Name
	if r.LocalName != "" && r.LocalName != r.Name {
		name = fmt.Sprintf("%s (%s)", r.Name, r.LocalName)
	}

	return fmt.Sprintf("%s\t%s\t%s\t%s\t%s",
		r.Query,
		codeColor.Sprint(r.Code),
		nameColor.Sprint(name),
		dialColor.Sprint(r.DialCode),
		r.Flag,
	)
}

// FormatJSON formats result as JSON.
func (r *LookupResult) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// BatchResult contains results for batch processing.
type BatchResult struct {
	Results []*LookupResult
}

// FormatText formats batch results as text (one line per result).
func (b *BatchResult) FormatText() string {
	var lines []string
	for _, r := range b.Results {
		lines = append(lines, r.FormatText())
	}
	return strings.Join(lines, "\n")
}

// FormatJSON formats batch results as JSON array.
func (b *BatchResult) FormatJSON() (string, error) {
	data, err := json.MarshalIndent(b.Results, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
