package main

import (
	"errors"

	"github.com/amonks/unlockpath/graphfile"
	internalstrings "github.com/amonks/unlockpath/internal/strings"
	"github.com/amonks/unlockpath/internal/validation"
)

type outputFormat string

const (
	formatTable    outputFormat = "table"
	formatJSON     outputFormat = "json"
	formatMarkdown outputFormat = "markdown"
)

var validOutputFormats = []outputFormat{formatTable, formatJSON, formatMarkdown}

var errUnknownFormat = errors.New("unknown format")

// formatValue is a pflag.Value restricted to validOutputFormats.
type formatValue struct {
	format outputFormat
}

func (v *formatValue) String() string {
	return string(v.format)
}

func (v *formatValue) Set(value string) error {
	format := outputFormat(internalstrings.NormalizeLowerTrimSpace(value))
	if format == "md" {
		format = formatMarkdown
	}
	for _, valid := range validOutputFormats {
		if format == valid {
			v.format = format
			return nil
		}
	}
	return validation.FormatInvalidValueError(errUnknownFormat, outputFormat(value), validOutputFormats)
}

func (v *formatValue) Type() string {
	return "format"
}

// splitValue is a pflag.Value holding a graphfile.SplitMode.
type splitValue struct {
	mode graphfile.SplitMode
}

func (v *splitValue) String() string {
	return string(v.mode)
}

func (v *splitValue) Set(value string) error {
	mode, err := graphfile.ParseSplitMode(value)
	if err != nil {
		return err
	}
	v.mode = mode
	return nil
}

func (v *splitValue) Type() string {
	return "mode"
}
