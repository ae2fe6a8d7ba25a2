package batch

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/hightemp/name2cc/internal/parser"
)

func init() {
	color.NoColor = true
}

func TestProcessInputText(t *testing.T) {
	input := strings.NewReader("DE\n\nGermany\nZZ\n")
	var out bytes.Buffer

	p := NewProcessor(parser.Options{}, 1)
	require.NoError(t, p.ProcessInput(input, &out, false))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3, "blank lines are skipped")

	assert.True(t, strings.HasPrefix(lines[0], "DE\tDE\tGermany\t+49"), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Germany\tDE\t"), lines[1])
	assert.Contains(t, lines[2], "ERROR:")
}

func TestProcessInputJSON(t *testing.T) {
	input := strings.NewReader("DE\nFR\n")
	var out bytes.Buffer

	p := NewProcessor(parser.Options{}, 1)
	require.NoError(t, p.ProcessInput(input, &out, true))

	var results []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "DE", results[0]["code"])
	assert.Equal(t, "FR", results[1]["code"])
}

func TestProcessInputCurrentLanguage(t *testing.T) {
	input := strings.NewReader("Германия\n")
	var out bytes.Buffer

	p := NewProcessor(parser.Options{Current: language.Russian}, 1)
	require.NoError(t, p.ProcessInput(input, &out, true))

	var results []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "DE", results[0]["code"])
	assert.Equal(t, "Германия", results[0]["local_name"])
}

func TestProcessInputConcurrentPreservesOrder(t *testing.T) {
	queries := []string{"DE", "FR", "Japan", "ZZ", "Polska", "us", "Noreg"}
	input := strings.NewReader(strings.Join(queries, "\n"))
	var out bytes.Buffer

	p := NewProcessor(parser.Options{}, 4)
	require.NoError(t, p.ProcessInputConcurrent(input, &out, false))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, len(queries))
	for i, q := range queries {
		assert.True(t, strings.HasPrefix(lines[i], q+"\t"), "line %d: %q", i, lines[i])
	}
}

func TestProcessInputConcurrentJSON(t *testing.T) {
	input := strings.NewReader("DE\nZZ\n")
	var out bytes.Buffer

	p := NewProcessor(parser.Options{}, 8)
	require.NoError(t, p.ProcessInputConcurrent(input, &out, true))

	var results []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "DE", results[0]["code"])
	assert.NotEmpty(t, results[1]["error"])
}

func TestNewProcessorClampsConcurrency(t *testing.T) {
	p := NewProcessor(parser.Options{}, 0)
	assert.Equal(t, 1, p.concurrency)
}
