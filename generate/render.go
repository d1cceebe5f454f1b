package generate

import (
	"bytes"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/wippyai/visit/errors"
	"github.com/wippyai/visit/generate/internal/model"
)

// VariantImport is the import path generated code uses for variant.Unmatched.
const VariantImport = "github.com/wippyai/visit/variant"

type altView struct {
	model.Alternative
	Method string
	Index  int
	// Deref adds a *T case for a value alternative T of an interface sum,
	// since *T has T's methods and is a member too.
	Deref bool
}

type sumView struct {
	model.Sum
	Visitor       string
	Func          string
	PointerStruct bool
	Alts          []altView
}

// Render renders the visitor interface and dispatch function of every sum
// into one source file of package pkg.
func Render(pkg string, sums []Sum) ([]byte, error) {
	if pkg == "" {
		return nil, errors.InvalidInput(errors.PhaseGenerate, []string{"package"}, "package name required")
	}
	if len(sums) == 0 {
		return nil, errors.InvalidInput(errors.PhaseGenerate, []string{pkg}, "no sums to render")
	}

	views := make([]sumView, 0, len(sums))
	for i := range sums {
		s := &sums[i]
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if s.Package != "" && s.Package != pkg {
			return nil, errors.New(errors.PhaseGenerate, errors.KindInvalidInput).
				Path(pkg, s.Name).
				Detail("sum belongs to package %s", s.Package).
				Build()
		}
		v := sumView{
			Sum:           *s,
			Visitor:       s.VisitorName(),
			Func:          s.FuncName(),
			PointerStruct: s.Form == model.FormPointerStruct,
		}
		goTypes := make(map[string]bool, len(s.Alternatives))
		for _, alt := range s.Alternatives {
			goTypes[alt.GoType] = true
		}
		for j, alt := range s.Alternatives {
			if v.PointerStruct && alt.Name == "Index" {
				return nil, errors.New(errors.PhaseGenerate, errors.KindInvalidInput).
					Path(pkg, s.Name, alt.Name).
					Detail("case name collides with the generated Index method").
					Build()
			}
			deref := !v.PointerStruct && !strings.HasPrefix(alt.GoType, "*") && !goTypes["*"+alt.GoType]
			v.Alts = append(v.Alts, altView{
				Alternative: alt,
				Method:      "Visit" + alt.Name,
				Index:       j,
				Deref:       deref,
			})
		}
		views = append(views, v)
	}

	data := struct {
		Package string
		Import  string
		Sums    []sumView
	}{Package: pkg, Import: strconv.Quote(VariantImport), Sums: views}

	var buf bytes.Buffer
	if err := sumsTmpl.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(errors.PhaseGenerate, errors.KindInvalidData, err, "execute sum template")
	}
	return format(pkg+"_visit.go", buf.Bytes())
}

func format(filename string, src []byte) ([]byte, error) {
	out, err := imports.Process(filename, src, &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, errors.New(errors.PhaseGenerate, errors.KindInvalidData).
			Detail("format %s", filename).
			Cause(err).
			Build()
	}
	return out, nil
}

var sumsTmpl = template.Must(template.New("sums").Parse(sumsTemplate))

const sumsTemplate = `// Code generated by visitgen. DO NOT EDIT.

package {{.Package}}

import {{.Import}}
{{range .Sums}}{{if .PointerStruct}}{{template "struct" .}}{{else}}{{template "iface" .}}{{end}}{{end}}

{{define "iface"}}
// {{.Visitor}} handles each alternative of {{.Name}}.
type {{.Visitor}} interface {
{{- range .Alts}}
	{{.Method}}({{.GoType}})
{{- end}}
}

// {{.Func}} calls the visitor method for the dynamic type of x. A pointer to a
// value alternative is dispatched as that alternative.
// It panics with variant.ErrUnmatched if x is nil or of an undeclared type.
func {{.Func}}[V {{.Visitor}}](visitor V, x {{.Name}}) {
	switch x := x.(type) {
{{- range .Alts}}
	case {{.GoType}}:
		visitor.{{.Method}}(x)
{{- if .Deref}}
	case *{{.GoType}}:
		if x != nil {
			visitor.{{.Method}}(*x)
			return
		}
		variant.Unmatched("{{$.Name}}", -1, {{len $.Alts}})
{{- end}}
{{- end}}
	default:
		variant.Unmatched("{{.Name}}", -1, {{len .Alts}})
	}
}
{{end}}

{{define "struct"}}
// {{.Name}} mirrors the WIT variant {{.Source}}. Exactly one field is non-nil.
type {{.Name}} struct {
{{- range .Alts}}
	{{.Name}} *{{if .Unit}}struct{}{{else}}{{.GoType}}{{end}}
{{- end}}
}

// {{.Visitor}} handles each case of {{.Name}}.
type {{.Visitor}} interface {
{{- range .Alts}}
	{{.Method}}({{if not .Unit}}{{.GoType}}{{end}})
{{- end}}
}

// Index returns the position of the first non-nil case of x, or -1.
func (x *{{.Name}}) Index() int {
	switch {
{{- range .Alts}}
	case x.{{.Name}} != nil:
		return {{.Index}}
{{- end}}
	}
	return -1
}

// {{.Func}} calls the visitor method for the first non-nil case of x.
// It panics with variant.ErrUnmatched if every case is nil.
func {{.Func}}[V {{.Visitor}}](visitor V, x *{{.Name}}) {
{{- range .Alts}}
	if x.{{.Name}} != nil {
		visitor.{{.Method}}({{if not .Unit}}*x.{{.Name}}{{end}})
		return
	}
{{- end}}
	variant.Unmatched("{{.Name}}", -1, {{len .Alts}})
}
{{end}}`
