package format

import (
	"fmt"
	"io"

	"github.com/hnimtadd/promptline/env"
	"github.com/hnimtadd/promptline/styling"
)

// When controls when the numeric exit code follows the symbol in
// WriteExitCodeSymbol.
type When int

const (
	// Never show the exit code.
	Never When = iota
	// OnError shows the exit code only for failures.
	OnError
	// Always show the exit code.
	Always
)

// Default symbols and style changes for command results.
const (
	DefaultSuccessSymbol = "✔"
	DefaultErrorSymbol   = "✘"
)

var (
	DefaultSuccessStyleChange = styling.StyleChange{
		Foreground: styling.Set(styling.BasicColor(styling.BrightGreen)),
	}
	DefaultErrorStyleChange = styling.StyleChange{
		Foreground: styling.Set(styling.BasicColor(styling.BrightRed)),
	}
)

// WriteExitCodeSymbol writes a symbol indicating code's success status,
// followed — depending on showCodeWhen — by the numeric code in the same
// style.
func WriteExitCodeSymbol(
	w styling.StyledWriter,
	code env.ExitCode,
	successSymbol string,
	successChange styling.StyleChange,
	errorSymbol string,
	errorChange styling.StyleChange,
	showCodeWhen When,
) error {
	symbol, change := errorSymbol, errorChange
	showCode := showCodeWhen == Always || showCodeWhen == OnError
	if code.IsSuccess() {
		symbol, change = successSymbol, successChange
		showCode = showCodeWhen == Always
	}
	return styling.WithStyle(w, change, func() error {
		if _, err := io.WriteString(w, symbol); err != nil {
			return err
		}
		if !showCode {
			return nil
		}
		_, err := fmt.Fprintf(w, " %d", int(code))
		return err
	})
}

// WriteExitCodeSymbolWithDefaults is WriteExitCodeSymbol with the default
// symbols and style changes.
func WriteExitCodeSymbolWithDefaults(w styling.StyledWriter, code env.ExitCode, showCodeWhen When) error {
	return WriteExitCodeSymbol(
		w,
		code,
		DefaultSuccessSymbol,
		DefaultSuccessStyleChange,
		DefaultErrorSymbol,
		DefaultErrorStyleChange,
		showCodeWhen,
	)
}

// WriteCommandResult writes a symbol for result, styled by the matching
// style change, reverting the style afterwards.
func WriteCommandResult(
	w styling.StyledWriter,
	result env.CommandResult,
	successSymbol string,
	successChange styling.StyleChange,
	errorSymbol string,
	errorChange styling.StyleChange,
) error {
	if result.IsSuccess() {
		return styling.Writef(w, successChange, "%s", successSymbol)
	}
	return styling.Writef(w, errorChange, "%s", errorSymbol)
}

// WriteCommandResultWithDefaults is WriteCommandResult with the default
// symbols and style changes.
func WriteCommandResultWithDefaults(w styling.StyledWriter, result env.CommandResult) error {
	return WriteCommandResult(
		w,
		result,
		DefaultSuccessSymbol,
		DefaultSuccessStyleChange,
		DefaultErrorSymbol,
		DefaultErrorStyleChange,
	)
}
