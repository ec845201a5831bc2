package twr

import (
	"fmt"
	"log"
)

// WarningKind labels a data-quality anomaly absorbed during normalization.
type WarningKind string

const (
	WarnUnknownCurrency WarningKind = "unknown-currency"
	WarnCoercedValue    WarningKind = "coerced-value"
	WarnDuplicate       WarningKind = "duplicate-dropped"
)

// Warning records a non-fatal data-quality anomaly. Warnings are a side
// channel on the Result, never an error: a partially dirty input still
// produces a renderable report.
type Warning struct {
	Kind    WarningKind
	Message string
}

func (w Warning) String() string { return fmt.Sprintf("%s: %s", w.Kind, w.Message) }

// warnings collects anomalies during normalization, logging each one.
type warnings struct {
	list []Warning
}

func (w *warnings) addf(kind WarningKind, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	log.Printf("%s: %s", kind, msg)
	w.list = append(w.list, Warning{Kind: kind, Message: msg})
}
