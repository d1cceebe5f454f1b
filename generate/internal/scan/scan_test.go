package scan

import (
	stderrors "errors"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"

	"github.com/wippyai/visit/errors"
	"github.com/wippyai/visit/generate/internal/model"
)

const shapesSrc = `package shapes

type Shape interface{ isShape() }

type Rect struct{ W, H float64 }

func (*Rect) isShape() {}

type Circle struct{ R float64 }

func (Circle) isShape() {}

type Open interface{ Area() float64 }

type Token interface {
	Shape
	String() string
}

type Lonely interface{ lonely() }

type only struct{}

func (only) lonely() {}

type Box[T any] struct{ v T }

func (Box[T]) isShape() {}
`

func checkSource(t *testing.T, src string) *types.Package {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "shapes.go", src, 0)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	pkg, err := (&types.Config{}).Check("example.com/shapes", fset, []*ast.File{f}, nil)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	return pkg
}

func TestSums_DeclarationOrder(t *testing.T) {
	pkg := checkSource(t, shapesSrc)

	sums, err := Sums(pkg, []string{"Shape"})
	if err != nil {
		t.Fatalf("Sums() error = %v", err)
	}
	if len(sums) != 1 {
		t.Fatalf("got %d sums, want 1", len(sums))
	}

	s := sums[0]
	if s.Name != "Shape" || s.Package != "shapes" || s.Form != model.FormInterface {
		t.Errorf("sum = %+v", s)
	}

	want := []model.Alternative{
		{Name: "Rect", GoType: "*Rect"},
		{Name: "Circle", GoType: "Circle"},
	}
	if len(s.Alternatives) != len(want) {
		t.Fatalf("alternatives = %+v, want %+v", s.Alternatives, want)
	}
	for i := range want {
		if s.Alternatives[i] != want[i] {
			t.Errorf("alternative %d = %+v, want %+v", i, s.Alternatives[i], want[i])
		}
	}
}

func TestSums_FilterKeepsLaterInterfacesOut(t *testing.T) {
	pkg := checkSource(t, shapesSrc)

	tests := []struct {
		name string
		only []string
		want []string
	}{
		{"first declared", []string{"Shape"}, []string{"Shape"}},
		{"last declared", []string{"Lonely"}, []string{"Lonely"}},
		{"two in reverse order", []string{"Lonely", "Shape"}, []string{"Shape", "Lonely"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sums, err := Sums(pkg, tt.only)
			if err != nil {
				t.Fatalf("Sums() error = %v", err)
			}
			var got []string
			for _, s := range sums {
				got = append(got, s.Name)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("Sums(%v) = %v, want %v", tt.only, got, tt.want)
			}
		})
	}
}

func TestSums_ValueReceiverAlternative(t *testing.T) {
	pkg := checkSource(t, shapesSrc)

	sums, err := Sums(pkg, []string{"Shape"})
	if err != nil {
		t.Fatalf("Sums() error = %v", err)
	}
	shape := pkg.Scope().Lookup("Shape").Type().Underlying().(*types.Interface)
	circle := pkg.Scope().Lookup("Circle").Type()

	// Both Circle and *Circle belong to Shape; the sum lists Circle once and
	// the renderer covers the pointer form.
	if !types.Implements(types.NewPointer(circle), shape) {
		t.Fatal("*Circle should implement Shape")
	}
	var circles int
	for _, alt := range sums[0].Alternatives {
		if alt.Name == "Circle" {
			circles++
			if alt.GoType != "Circle" {
				t.Errorf("Circle GoType = %q, want Circle", alt.GoType)
			}
		}
	}
	if circles != 1 {
		t.Errorf("Circle listed %d times, want 1", circles)
	}
}

func TestSums_All(t *testing.T) {
	pkg := checkSource(t, shapesSrc)

	sums, err := Sums(pkg, nil)
	if err != nil {
		t.Fatalf("Sums() error = %v", err)
	}

	names := make(map[string]int)
	for _, s := range sums {
		names[s.Name] = len(s.Alternatives)
	}
	if _, ok := names["Open"]; ok {
		t.Error("Open has no unexported method and must not be a sum")
	}
	if names["Shape"] != 2 {
		t.Errorf("Shape alternatives = %d, want 2", names["Shape"])
	}
	if n, ok := names["Lonely"]; !ok || n != 1 {
		t.Errorf("Lonely alternatives = %d, %v, want 1, true", n, ok)
	}
	if _, ok := names["Token"]; !ok {
		t.Error("Token embeds an unexported method and should be found")
	}
}

func TestSums_Errors(t *testing.T) {
	pkg := checkSource(t, shapesSrc)

	tests := []struct {
		name string
		only []string
		kind errors.Kind
	}{
		{"missing", []string{"Nope"}, errors.KindNotFound},
		{"one of two missing", []string{"Shape", "Nope"}, errors.KindNotFound},
		{"not sealed", []string{"Open"}, errors.KindTypeMismatch},
		{"struct", []string{"Circle"}, errors.KindTypeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Sums(pkg, tt.only)
			var e *errors.Error
			if !stderrors.As(err, &e) || e.Kind != tt.kind {
				t.Fatalf("Sums(%v) = %v, want kind %s", tt.only, err, tt.kind)
			}
			if tt.kind == errors.KindTypeMismatch && (e.GoType == "" || e.Detail != "not a sealed interface") {
				t.Errorf("type mismatch error = %+v", e)
			}
		})
	}
}
