package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:   PhaseScan,
				Kind:    KindTypeMismatch,
				Path:    []string{"shapes", "Shape", "Circle"},
				GoType:  "*Circle",
				WitType: "circle",
				Detail:  "pointer receiver",
			},
			contains: []string{"[scan]", "type_mismatch", "shapes.Shape.Circle", "*Circle", "circle", "pointer receiver"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDispatch,
				Kind:  KindInvalidVariant,
			},
			contains: []string{"[dispatch]", "invalid_variant"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindInvalidData,
				Detail: "read shapes.wit.json",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[load]", "invalid_data", "read shapes.wit.json", "caused by", "underlying error"},
		},
		{
			name: "wit type only",
			err: &Error{
				Phase:   PhaseParse,
				Kind:    KindUnsupported,
				WitType: "tuple<u8, u8>",
				Detail:  "no Go mapping",
			},
			contains: []string{"WIT type tuple<u8, u8> - no Go mapping"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseWrite,
		Kind:  KindInvalidData,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase: PhaseDispatch,
		Kind:  KindInvalidVariant,
		Path:  []string{"Of2"},
	}

	if !err.Is(&Error{Phase: PhaseDispatch, Kind: KindInvalidVariant}) {
		t.Error("Is should match same phase and kind")
	}

	if err.Is(&Error{Phase: PhaseScan, Kind: KindInvalidVariant}) {
		t.Error("Is should not match different phase")
	}

	if err.Is(&Error{Phase: PhaseDispatch, Kind: KindNotFound}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseDispatch, Kind: KindInvalidVariant}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}

	var asErr *Error
	if !errors.As(Wrap(PhaseWrite, KindInvalidData, err, "write"), &asErr) {
		t.Error("errors.As should find *Error")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseScan, KindTypeMismatch).
		Path("shapes", "Shape").
		GoType("Circle").
		WitType("circle").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "pointer", "value").
		Build()

	if err.Phase != PhaseScan {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseScan)
	}
	if err.Kind != KindTypeMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
	}
	if len(err.Path) != 2 || err.Path[0] != "shapes" || err.Path[1] != "Shape" {
		t.Errorf("Path = %v, want [shapes Shape]", err.Path)
	}
	if err.GoType != "Circle" {
		t.Errorf("GoType = %v, want 'Circle'", err.GoType)
	}
	if err.WitType != "circle" {
		t.Errorf("WitType = %v, want 'circle'", err.WitType)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected pointer, got value" {
		t.Errorf("Detail = %v, want 'expected pointer, got value'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("InvalidDiscriminant", func(t *testing.T) {
		err := InvalidDiscriminant(PhaseDispatch, []string{"Of3"}, 5, 3)
		if err.Kind != KindInvalidVariant {
			t.Errorf("Kind = %v, want %v", err.Kind, KindInvalidVariant)
		}
		if !strings.Contains(err.Detail, "5 out of range") {
			t.Errorf("Detail = %q", err.Detail)
		}
	})

	t.Run("InvalidDiscriminant empty", func(t *testing.T) {
		err := InvalidDiscriminant(PhaseDispatch, nil, -1, 2)
		if !strings.Contains(err.Detail, "no active alternative") {
			t.Errorf("Detail = %q", err.Detail)
		}
		if err.Value != -1 {
			t.Errorf("Value = %v, want -1", err.Value)
		}
	})

	t.Run("TypeMismatch", func(t *testing.T) {
		err := TypeMismatch(PhaseScan, []string{"field"}, "int", "string")
		if err.Kind != KindTypeMismatch {
			t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
		}
		if err.GoType != "int" || err.WitType != "string" {
			t.Errorf("GoType=%v WitType=%v", err.GoType, err.WitType)
		}
	})

	t.Run("Unsupported", func(t *testing.T) {
		err := Unsupported(PhaseParse, "resource types")
		if err.Kind != KindUnsupported {
			t.Errorf("Kind = %v, want %v", err.Kind, KindUnsupported)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		err := NotFound(PhaseScan, "sum", "Shape")
		if err.Kind != KindNotFound {
			t.Errorf("Kind = %v, want %v", err.Kind, KindNotFound)
		}
		if !strings.Contains(err.Detail, `"Shape"`) {
			t.Errorf("Detail = %q", err.Detail)
		}
	})

	t.Run("Duplicate", func(t *testing.T) {
		err := Duplicate(PhaseGenerate, []string{"Shape"}, "Circle")
		if err.Kind != KindDuplicate || err.Value != "Circle" {
			t.Errorf("Kind=%v Value=%v", err.Kind, err.Value)
		}
	})

	t.Run("EmptySum", func(t *testing.T) {
		err := EmptySum(PhaseGenerate, "Shape", 1)
		if err.Kind != KindEmptySum {
			t.Errorf("Kind = %v, want %v", err.Kind, KindEmptySum)
		}
		if !strings.Contains(err.Error(), "at Shape") {
			t.Errorf("Error() = %q", err.Error())
		}
	})

	t.Run("ParseFailed", func(t *testing.T) {
		err := ParseFailed("WIT JSON", errors.New("eof"))
		if err.Phase != PhaseParse || err.Detail != "parse WIT JSON" {
			t.Errorf("Phase=%v Detail=%q", err.Phase, err.Detail)
		}
	})
}
