// Package batch handles batch query processing from stdin.
package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/hightemp/name2cc/internal/i18n"
	"github.com/hightemp/name2cc/internal/output"
	"github.com/hightemp/name2cc/internal/parser"
)

// Processor resolves many queries with a shared option set.
type Processor struct {
	opts        parser.Options
	concurrency int
}

// NewProcessor creates a new batch processor.
func NewProcessor(opts parser.Options, concurrency int) *Processor {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Processor{
		opts:        opts,
		concurrency: concurrency,
	}
}

// ProcessInput reads queries from input, one per line, and writes results
// to output.
func (p *Processor) ProcessInput(r io.Reader, w io.Writer, jsonOutput bool) error {
	scanner := bufio.NewScanner(r)
	var results []*output.LookupResult

	if jsonOutput {
		// Collect all results for JSON array output
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			results = append(results, p.processQuery(line))
		}

		batch := &output.BatchResult{Results: results}
		jsonStr, err := batch.FormatJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, jsonStr)
	} else {
		// Stream output line by line
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			fmt.Fprintln(w, p.processQuery(line).FormatText())
		}
	}

	return scanner.Err()
}

// ProcessInputConcurrent processes queries concurrently. Output order
// matches input order. Safe because the lookup tables are never mutated
// after load.
func (p *Processor) ProcessInputConcurrent(r io.Reader, w io.Writer, jsonOutput bool) error {
	scanner := bufio.NewScanner(r)
	var lines []string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	results := make([]*output.LookupResult, len(lines))
	var wg sync.WaitGroup
	sem := make(chan struct{}, p.concurrency)

	for i, line := range lines {
		wg.Add(1)
		go func(idx int, query string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[idx] = p.processQuery(query)
		}(i, line)
	}

	wg.Wait()

	if jsonOutput {
		batch := &output.BatchResult{Results: results}
		jsonStr, err := batch.FormatJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, jsonStr)
	} else {
		for _, result := range results {
			fmt.Fprintln(w, result.FormatText())
		}
	}

	return nil
}

func (p *Processor) processQuery(query string) *output.LookupResult {
	result := &output.LookupResult{Query: query}

	c, err := parser.ParseWith(query, p.opts)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Code = c.Code
	result.Name = c.Name
	result.DialCode = c.DialCode
	result.Flag = c.Flag
	if p.opts.Current != language.Und {
		if local, ok := i18n.NameFor(c.Code, p.opts.Current); ok {
			result.LocalName = local
		}
	}

	return result
}
