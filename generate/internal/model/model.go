// Package model holds the sum description shared by the sources and the
// renderer.
package model

import (
	"unicode"
	"unicode/utf8"

	"github.com/wippyai/visit/errors"
)

// Form selects how a sum stores its active alternative.
type Form uint8

const (
	// FormInterface is a sealed interface; the dynamic type is the alternative.
	FormInterface Form = iota
	// FormPointerStruct is a struct with one pointer field per case; the
	// first non-nil field is the alternative.
	FormPointerStruct
)

func (f Form) String() string {
	switch f {
	case FormInterface:
		return "interface"
	case FormPointerStruct:
		return "pointer-struct"
	default:
		return "unknown"
	}
}

// Alternative is one member of a sum.
type Alternative struct {
	// Name is the Go identifier suffix used for handler methods and fields.
	Name string
	// GoType is the payload type as written in the generated package.
	GoType string
	// WitType is the WIT case type, empty for Go sources.
	WitType string
	// Unit marks a case without payload.
	Unit bool
}

// Sum is a closed set of alternatives in declaration order.
type Sum struct {
	Name         string
	Package      string
	Source       string
	Form         Form
	Alternatives []Alternative
}

// Validate checks that s can be dispatched: at least two alternatives with
// distinct names.
func (s *Sum) Validate() error {
	if s.Name == "" {
		return errors.InvalidInput(errors.PhaseGenerate, nil, "sum name required")
	}
	if len(s.Alternatives) < 2 {
		return errors.EmptySum(errors.PhaseGenerate, s.Name, len(s.Alternatives))
	}
	seen := make(map[string]struct{}, len(s.Alternatives))
	for _, alt := range s.Alternatives {
		if _, dup := seen[alt.Name]; dup {
			return errors.Duplicate(errors.PhaseGenerate, []string{s.Name}, alt.Name)
		}
		seen[alt.Name] = struct{}{}
		if !alt.Unit && alt.GoType == "" {
			return errors.New(errors.PhaseGenerate, errors.KindInvalidInput).
				Path(s.Name, alt.Name).
				Detail("payload type missing").
				Build()
		}
	}
	return nil
}

// Exported reports whether s is visible outside its package.
func (s *Sum) Exported() bool {
	r, _ := utf8.DecodeRuneInString(s.Name)
	return unicode.IsUpper(r)
}

// VisitorName is the name of the generated visitor interface.
func (s *Sum) VisitorName() string {
	return s.Name + "Visitor"
}

// FuncName is the name of the generated dispatch function.
func (s *Sum) FuncName() string {
	if s.Exported() {
		return "Visit" + s.Name
	}
	return "visit" + Export(s.Name)
}

// Export upper-cases the first letter of name.
func Export(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
