package generate

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/wippyai/visit/errors"
)

// MaxArity is the largest alternative count the generic unions support.
const MaxArity = 10

var arityLetters = [MaxArity]string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}

type arityAlt struct {
	I     int
	Tag   int
	Param string
	Field string
}

type arityData struct {
	N      int
	Name   string
	Params string
	Alts   []arityAlt
}

// RenderArities renders the generic OfN unions with their visitor, accessor
// and dispatch functions for every arity in [min, max]. The output belongs in
// the package that defines Unmatched and unmatchedError.
func RenderArities(pkg string, min, max int) ([]byte, error) {
	if min < 2 || max > MaxArity || min > max {
		return nil, errors.InvalidInput(errors.PhaseGenerate, []string{"arities"},
			fmt.Sprintf("range %d:%d outside 2:%d", min, max, MaxArity))
	}
	if pkg == "" {
		return nil, errors.InvalidInput(errors.PhaseGenerate, []string{"package"}, "package name required")
	}

	data := struct {
		Package  string
		Min, Max int
		Arities  []arityData
	}{Package: pkg, Min: min, Max: max}

	for n := min; n <= max; n++ {
		a := arityData{
			N:      n,
			Name:   fmt.Sprintf("Of%d", n),
			Params: strings.Join(arityLetters[:n], ", "),
		}
		for i := 0; i < n; i++ {
			a.Alts = append(a.Alts, arityAlt{
				I:     i,
				Tag:   i + 1,
				Param: arityLetters[i],
				Field: fmt.Sprintf("v%d", i),
			})
		}
		data.Arities = append(data.Arities, a)
	}

	var buf bytes.Buffer
	if err := arityTmpl.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(errors.PhaseGenerate, errors.KindInvalidData, err, "execute arity template")
	}
	return format("of_gen.go", buf.Bytes())
}

var arityTmpl = template.Must(template.New("arity").Parse(arityTemplate))

const arityTemplate = `// Code generated by visitgen -arities {{.Min}}:{{.Max}}. DO NOT EDIT.

package {{.Package}}
{{range $a := .Arities}}
// {{$a.Name}} is a tagged union holding exactly one of {{$a.N}} alternatives.
// The zero value holds none of them.
type {{$a.Name}}[{{$a.Params}} any] struct {
	tag uint8
{{- range $a.Alts}}
	{{.Field}} {{.Param}}
{{- end}}
}

// Visitor{{$a.N}} handles each alternative of {{$a.Name}}.
type Visitor{{$a.N}}[{{$a.Params}} any] interface {
{{- range $a.Alts}}
	Visit{{.I}}({{.Param}})
{{- end}}
}

// Accessor{{$a.N}} is any tagged union reporting presence per alternative.
type Accessor{{$a.N}}[{{$a.Params}} any] interface {
{{- range $a.Alts}}
	Get{{.I}}() ({{.Param}}, bool)
{{- end}}
}

// Index returns the position of the active alternative, or -1 if x is empty.
func (x *{{$a.Name}}[{{$a.Params}}]) Index() int {
	return int(x.tag) - 1
}

// Valid reports whether x holds one of its alternatives.
func (x *{{$a.Name}}[{{$a.Params}}]) Valid() bool {
	return x.tag >= 1 && x.tag <= {{$a.N}}
}

// Check returns an error matching ErrUnmatched if x holds no alternative.
func (x *{{$a.Name}}[{{$a.Params}}]) Check() error {
	if x.Valid() {
		return nil
	}
	return unmatchedError("{{$a.Name}}", x.Index(), {{$a.N}})
}

// Reset empties x.
func (x *{{$a.Name}}[{{$a.Params}}]) Reset() {
	*x = {{$a.Name}}[{{$a.Params}}]{}
}
{{range $a.Alts}}
// Set{{.I}} makes v the active alternative.
func (x *{{$a.Name}}[{{$a.Params}}]) Set{{.I}}(v {{.Param}}) {
	*x = {{$a.Name}}[{{$a.Params}}]{tag: {{.Tag}}, {{.Field}}: v}
}

// With{{.I}} returns a copy of x holding v as the active alternative.
func (x {{$a.Name}}[{{$a.Params}}]) With{{.I}}(v {{.Param}}) {{$a.Name}}[{{$a.Params}}] {
	x.Set{{.I}}(v)
	return x
}

// Get{{.I}} returns alternative {{.I}} and whether it is active.
func (x *{{$a.Name}}[{{$a.Params}}]) Get{{.I}}() ({{.Param}}, bool) {
	if x.tag == {{.Tag}} {
		return x.{{.Field}}, true
	}
	var zero {{.Param}}
	return zero, false
}
{{end}}
// Visit{{$a.N}} calls the visitor method for the active alternative of x.
// It panics with ErrUnmatched if x is empty.
func Visit{{$a.N}}[{{$a.Params}} any, V Visitor{{$a.N}}[{{$a.Params}}]](visitor V, x *{{$a.Name}}[{{$a.Params}}]) {
	switch x.tag {
{{- range $a.Alts}}
	case {{.Tag}}:
		visitor.Visit{{.I}}(x.{{.Field}})
{{- end}}
	default:
		Unmatched("{{$a.Name}}", x.Index(), {{$a.N}})
	}
}

// Match{{$a.N}} calls the handler for the active alternative of x.
// It panics with ErrUnmatched if x is empty.
func Match{{$a.N}}[{{$a.Params}} any](x *{{$a.Name}}[{{$a.Params}}]{{range $a.Alts}}, f{{.I}} func({{.Param}}){{end}}) {
	switch x.tag {
{{- range $a.Alts}}
	case {{.Tag}}:
		f{{.I}}(x.{{.Field}})
{{- end}}
	default:
		Unmatched("{{$a.Name}}", x.Index(), {{$a.N}})
	}
}

// VisitAccessor{{$a.N}} probes u in declaration order and calls the visitor
// method for the first present alternative only.
// It panics with ErrUnmatched if no alternative is present.
func VisitAccessor{{$a.N}}[{{$a.Params}} any, V Visitor{{$a.N}}[{{$a.Params}}], U Accessor{{$a.N}}[{{$a.Params}}]](visitor V, u U) {
{{- range $a.Alts}}
	if v, ok := u.Get{{.I}}(); ok {
		visitor.Visit{{.I}}(v)
		return
	}
{{- end}}
	Unmatched("Accessor{{$a.N}}", -1, {{$a.N}})
}
{{end}}`
