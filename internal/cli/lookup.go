package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/hightemp/name2cc/internal/batch"
	"github.com/hightemp/name2cc/internal/i18n"
	"github.com/hightemp/name2cc/internal/locale"
	"github.com/hightemp/name2cc/internal/output"
	"github.com/hightemp/name2cc/internal/parser"
)

func runLookup(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}

	opts, err := buildOptions()
	if err != nil {
		exitWithCode(ExitInvalidInput, err.Error())
		return nil
	}

	// Check if we have a query argument or should read from stdin
	if len(args) == 1 {
		return lookupSingle(args[0], opts)
	}

	// Check if stdin is a terminal
	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) != 0 {
		// stdin is a terminal, show help
		return cmd.Help()
	}

	// Batch mode from stdin
	processor := batch.NewProcessor(opts, concurrency)
	if concurrency > 1 {
		return processor.ProcessInputConcurrent(os.Stdin, os.Stdout, jsonOutput)
	}
	return processor.ProcessInput(os.Stdin, os.Stdout, jsonOutput)
}

// buildOptions assembles parser options from flags, falling back to the
// environment for the current language.
func buildOptions() (parser.Options, error) {
	var opts parser.Options

	if langFlag != "" {
		tag, ok := locale.ParsePOSIX(langFlag)
		if !ok {
			return opts, fmt.Errorf("invalid language tag: %s", langFlag)
		}
		opts.Current = tag
	} else if tag, ok := locale.Detect(); ok {
		opts.Current = tag
	}

	if candidates != nil {
		opts.Candidates = make([]language.Tag, 0, len(candidates))
		for _, c := range candidates {
			tag, ok := locale.ParsePOSIX(c)
			if !ok {
				return opts, fmt.Errorf("invalid candidate language tag: %s", c)
			}
			opts.Candidates = append(opts.Candidates, tag)
		}
	}

	return opts, nil
}

func lookupSingle(query string, opts parser.Options) error {
	result := &output.LookupResult{Query: query}

	c, err := parser.ParseWith(query, opts)
	if err != nil {
		if errors.Is(err, parser.ErrNotFound) {
			exitWithCode(ExitNotFound, fmt.Sprintf("No country matches %q", query))
			return nil
		}
		return err
	}

	result.Code = c.Code
	result.Name = c.Name
	result.DialCode = c.DialCode
	result.Flag = c.Flag
	if opts.Current != language.Und {
		if local, ok := i18n.NameFor(c.Code, opts.Current); ok {
			result.LocalName = local
		}
	}

	// Output
	if jsonOutput {
		jsonStr, err := result.FormatJSON()
		if err != nil {
			return err
		}
		fmt.Println(jsonStr)
	} else {
		fmt.Println(result.FormatText())
	}

	return nil
}
