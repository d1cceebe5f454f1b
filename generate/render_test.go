package generate

import (
	stderrors "errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"os"
	"strings"
	"testing"

	"github.com/wippyai/visit/errors"
)

// variantImporter provides the subset of the variant package that generated
// code refers to.
type variantImporter struct{}

func (variantImporter) Import(path string) (*types.Package, error) {
	if path != VariantImport {
		return nil, fmt.Errorf("unexpected import %q", path)
	}
	pkg := types.NewPackage(path, "variant")
	params := types.NewTuple(
		types.NewVar(token.NoPos, pkg, "sum", types.Typ[types.String]),
		types.NewVar(token.NoPos, pkg, "index", types.Typ[types.Int]),
		types.NewVar(token.NoPos, pkg, "alternatives", types.Typ[types.Int]),
	)
	sig := types.NewSignatureType(nil, nil, nil, params, nil, false)
	pkg.Scope().Insert(types.NewFunc(token.NoPos, pkg, "Unmatched", sig))
	pkg.MarkComplete()
	return pkg, nil
}

// typeCheck parses and type-checks the given files as one package.
func typeCheck(t *testing.T, files map[string]string) {
	t.Helper()
	fset := token.NewFileSet()
	var parsed []*ast.File
	for name, src := range files {
		f, err := parser.ParseFile(fset, name, src, parser.ParseComments)
		if err != nil {
			t.Fatalf("parse %s: %v\n%s", name, err, src)
		}
		parsed = append(parsed, f)
	}
	cfg := types.Config{Importer: variantImporter{}}
	if _, err := cfg.Check("example.com/shapes", fset, parsed, nil); err != nil {
		t.Fatalf("type-check: %v", err)
	}
}

var interfaceSum = Sum{
	Name:    "Shape",
	Package: "shapes",
	Form:    FormInterface,
	Alternatives: []Alternative{
		{Name: "Rect", GoType: "*Rect"},
		{Name: "Circle", GoType: "Circle"},
	},
}

const interfaceSrc = `package shapes

type Shape interface{ isShape() }

type Rect struct{ W, H float64 }

func (*Rect) isShape() {}

type Circle struct{ R float64 }

func (Circle) isShape() {}
`

const interfaceUse = `package shapes

type area struct{ total float64 }

func (a *area) VisitRect(r *Rect)   { a.total += r.W * r.H }
func (a *area) VisitCircle(c Circle) { a.total += 3 * c.R * c.R }

func total(shapes []Shape) float64 {
	a := &area{}
	for _, s := range shapes {
		VisitShape(a, s)
	}
	return a.total
}
`

func TestRender_Interface(t *testing.T) {
	out, err := Render("shapes", []Sum{interfaceSum})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	src := string(out)

	for _, want := range []string{
		"// Code generated by visitgen. DO NOT EDIT.",
		`import "github.com/wippyai/visit/variant"`,
		"type ShapeVisitor interface {\n\tVisitRect(*Rect)\n\tVisitCircle(Circle)\n}",
		"func VisitShape[V ShapeVisitor](visitor V, x Shape) {",
		"\tcase *Rect:\n\t\tvisitor.VisitRect(x)\n\tcase Circle:\n\t\tvisitor.VisitCircle(x)\n",
		`variant.Unmatched("Shape", -1, 2)`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("output missing %q\n%s", want, src)
		}
	}

	typeCheck(t, map[string]string{
		"shapes.go":    interfaceSrc,
		"use.go":       interfaceUse,
		"visit_gen.go": src,
	})
}

func TestRender_PointerToValueAlternative(t *testing.T) {
	out, err := Render("shapes", []Sum{interfaceSum})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	src := string(out)

	want := "\tcase *Circle:\n\t\tif x != nil {\n\t\t\tvisitor.VisitCircle(*x)\n\t\t\treturn\n\t\t}\n\t\tvariant.Unmatched(\"Shape\", -1, 2)\n"
	if !strings.Contains(src, want) {
		t.Errorf("output missing pointer case for Circle\n%s", src)
	}
	if strings.Contains(src, "case **Rect:") {
		t.Error("pointer alternatives must not get a second case")
	}

	typeCheck(t, map[string]string{
		"shapes.go":    interfaceSrc,
		"use.go":       interfaceUse + "\nvar _ = total([]Shape{&Circle{R: 1}, Circle{R: 2}, &Rect{}})\n",
		"visit_gen.go": src,
	})
}

func TestRender_ValueAndPointerListed(t *testing.T) {
	sum := Sum{
		Name: "Node",
		Alternatives: []Alternative{
			{Name: "Leaf", GoType: "Leaf"},
			{Name: "LeafPtr", GoType: "*Leaf"},
		},
	}
	out, err := Render("tree", []Sum{sum})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if n := strings.Count(string(out), "case *Leaf:"); n != 1 {
		t.Errorf("case *Leaf appears %d times, want 1\n%s", n, out)
	}
}

var structSum = Sum{
	Name:    "Shape",
	Package: "shapes",
	Source:  "shape",
	Form:    FormPointerStruct,
	Alternatives: []Alternative{
		{Name: "Circle", GoType: "float64", WitType: "f64"},
		{Name: "Rect", GoType: "Rect", WitType: "rect"},
		{Name: "Label", GoType: "*string", WitType: "option<string>"},
		{Name: "Empty", Unit: true},
	},
}

const structUse = `package shapes

type Rect struct{ W, H float64 }

type names struct{ seen []string }

func (n *names) VisitCircle(float64) { n.seen = append(n.seen, "circle") }
func (n *names) VisitRect(Rect)      { n.seen = append(n.seen, "rect") }
func (n *names) VisitLabel(*string)  { n.seen = append(n.seen, "label") }
func (n *names) VisitEmpty()         { n.seen = append(n.seen, "empty") }

func collect(shapes []Shape) []string {
	n := &names{}
	for i := range shapes {
		VisitShape(n, &shapes[i])
	}
	return n.seen
}
`

func TestRender_PointerStruct(t *testing.T) {
	out, err := Render("shapes", []Sum{structSum})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	src := string(out)

	for _, want := range []string{
		"// Shape mirrors the WIT variant shape. Exactly one field is non-nil.",
		"\tCircle *float64\n",
		"\tLabel  **string\n",
		"\tEmpty  *struct{}\n",
		"\tVisitEmpty()\n",
		"func (x *Shape) Index() int {",
		"\tif x.Rect != nil {\n\t\tvisitor.VisitRect(*x.Rect)\n\t\treturn\n\t}",
		"\tif x.Empty != nil {\n\t\tvisitor.VisitEmpty()\n\t\treturn\n\t}",
		`variant.Unmatched("Shape", -1, 4)`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("output missing %q\n%s", want, src)
		}
	}

	typeCheck(t, map[string]string{
		"use.go":       structUse,
		"shape_gen.go": src,
	})
}

func TestRender_Unexported(t *testing.T) {
	sum := Sum{
		Name: "token",
		Alternatives: []Alternative{
			{Name: "Word", GoType: "word"},
			{Name: "Space", GoType: "space"},
		},
	}
	out, err := Render("lexer", []Sum{sum})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(string(out), "func visitToken[V tokenVisitor](visitor V, x token) {") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestRender_Errors(t *testing.T) {
	indexCase := structSum
	indexCase.Alternatives = []Alternative{
		{Name: "Index", GoType: "uint32"},
		{Name: "Empty", Unit: true},
	}

	tests := []struct {
		name string
		pkg  string
		sums []Sum
		kind errors.Kind
	}{
		{"no package", "", []Sum{interfaceSum}, errors.KindInvalidInput},
		{"no sums", "shapes", nil, errors.KindInvalidInput},
		{"wrong package", "other", []Sum{interfaceSum}, errors.KindInvalidInput},
		{"single alternative", "shapes", []Sum{{Name: "S", Alternatives: []Alternative{{Name: "A", GoType: "A"}}}}, errors.KindEmptySum},
		{"index collision", "shapes", []Sum{indexCase}, errors.KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(tt.pkg, tt.sums)
			var e *errors.Error
			if !stderrors.As(err, &e) || e.Kind != tt.kind {
				t.Errorf("Render() = %v, want kind %s", err, tt.kind)
			}
		})
	}
}

func TestRenderArities(t *testing.T) {
	out, err := RenderArities("variant", 2, 3)
	if err != nil {
		t.Fatalf("RenderArities() error = %v", err)
	}
	src := string(out)

	for _, want := range []string{
		"// Code generated by visitgen -arities 2:3. DO NOT EDIT.",
		"type Of3[A, B, C any] struct {\n\ttag uint8\n\tv0  A\n\tv1  B\n\tv2  C\n}",
		"func Visit3[A, B, C any, V Visitor3[A, B, C]](visitor V, x *Of3[A, B, C]) {",
		"func Match2[A, B any](x *Of2[A, B], f0 func(A), f1 func(B)) {",
		`Unmatched("Accessor3", -1, 3)`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(src, "Of4") {
		t.Error("output should stop at arity 3")
	}
}

func TestRenderArities_MatchesVariantPackage(t *testing.T) {
	want, err := os.ReadFile("../variant/of_gen.go")
	if err != nil {
		t.Fatalf("read of_gen.go: %v", err)
	}
	got, err := RenderArities("variant", 2, MaxArity)
	if err != nil {
		t.Fatalf("RenderArities() error = %v", err)
	}
	if string(got) != string(want) {
		t.Error("variant/of_gen.go is stale; run go generate ./variant")
	}
}

func TestRenderArities_InvalidRange(t *testing.T) {
	for _, r := range [][2]int{{1, 3}, {2, 11}, {5, 4}} {
		if _, err := RenderArities("variant", r[0], r[1]); err == nil {
			t.Errorf("RenderArities(%d, %d) should fail", r[0], r[1])
		}
	}
	if _, err := RenderArities("", 2, 3); err == nil {
		t.Error("RenderArities with empty package should fail")
	}
}
