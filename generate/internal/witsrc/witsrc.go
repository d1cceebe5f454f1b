// Package witsrc turns WIT variant definitions into pointer-struct sums.
package witsrc

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.bytecodealliance.org/wit"

	"github.com/wippyai/visit/errors"
	"github.com/wippyai/visit/generate/internal/model"
)

// Load decodes a WIT JSON file, as produced by wasm-tools component wit --json.
func Load(path string) (*wit.Resolve, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Load(fmt.Sprintf("open %s", path), err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode decodes WIT JSON from r.
func Decode(r io.Reader) (*wit.Resolve, error) {
	res, err := wit.DecodeJSON(r)
	if err != nil {
		return nil, errors.ParseFailed("WIT JSON", err)
	}
	return res, nil
}

// Sums returns a sum for every named variant in res. only filters by WIT or
// Go name; every listed name must match a variant.
func Sums(res *wit.Resolve, pkg string, only []string) ([]model.Sum, error) {
	want := make(map[string]bool, len(only))
	for _, name := range only {
		want[name] = true
	}
	found := make(map[string]bool, len(only))

	var sums []model.Sum
	for _, td := range res.TypeDefs {
		v, ok := td.Kind.(*wit.Variant)
		if !ok || td.Name == nil {
			continue
		}
		witName := *td.Name
		goName := GoName(witName)
		if len(want) > 0 {
			switch {
			case want[witName]:
				found[witName] = true
			case want[goName]:
				found[goName] = true
			default:
				continue
			}
		}

		sum, err := variantSum(witName, goName, pkg, v)
		if err != nil {
			return nil, err
		}
		sums = append(sums, sum)
	}

	for _, name := range only {
		if !found[name] {
			return nil, errors.NotFound(errors.PhaseParse, "variant", name)
		}
	}
	return sums, nil
}

func variantSum(witName, goName, pkg string, v *wit.Variant) (model.Sum, error) {
	sum := model.Sum{
		Name:    goName,
		Package: pkg,
		Source:  witName,
		Form:    model.FormPointerStruct,
	}
	for _, c := range v.Cases {
		alt := model.Alternative{Name: GoName(c.Name)}
		if c.Type == nil {
			alt.Unit = true
		} else {
			goType, err := GoType(c.Type)
			if err != nil {
				if e, ok := err.(*errors.Error); ok {
					e.Path = append([]string{witName, c.Name}, e.Path...)
				}
				return model.Sum{}, err
			}
			alt.GoType = goType
			alt.WitType = WitName(c.Type)
		}
		sum.Alternatives = append(sum.Alternatives, alt)
	}
	return sum, nil
}

// GoType maps a WIT type to the Go type used for its payload.
func GoType(t wit.Type) (string, error) {
	switch t := t.(type) {
	case wit.Bool:
		return "bool", nil
	case wit.U8:
		return "uint8", nil
	case wit.S8:
		return "int8", nil
	case wit.U16:
		return "uint16", nil
	case wit.S16:
		return "int16", nil
	case wit.U32:
		return "uint32", nil
	case wit.S32:
		return "int32", nil
	case wit.U64:
		return "uint64", nil
	case wit.S64:
		return "int64", nil
	case wit.F32:
		return "float32", nil
	case wit.F64:
		return "float64", nil
	case wit.Char:
		return "rune", nil
	case wit.String:
		return "string", nil
	case *wit.TypeDef:
		if t.Name != nil {
			return GoName(*t.Name), nil
		}
		switch k := t.Kind.(type) {
		case *wit.List:
			elem, err := GoType(k.Type)
			if err != nil {
				return "", err
			}
			return "[]" + elem, nil
		case *wit.Option:
			elem, err := GoType(k.Type)
			if err != nil {
				return "", err
			}
			return "*" + elem, nil
		case wit.Type:
			return GoType(k)
		}
	}
	return "", errors.New(errors.PhaseParse, errors.KindUnsupported).
		WitType(WitName(t)).
		Detail("no Go mapping").
		Build()
}

// WitName renders t the way WIT source spells it, for messages and comments.
func WitName(t wit.Type) string {
	switch t := t.(type) {
	case wit.Bool:
		return "bool"
	case wit.U8:
		return "u8"
	case wit.S8:
		return "s8"
	case wit.U16:
		return "u16"
	case wit.S16:
		return "s16"
	case wit.U32:
		return "u32"
	case wit.S32:
		return "s32"
	case wit.U64:
		return "u64"
	case wit.S64:
		return "s64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	case wit.Char:
		return "char"
	case wit.String:
		return "string"
	case *wit.TypeDef:
		if t.Name != nil {
			return *t.Name
		}
		switch k := t.Kind.(type) {
		case *wit.List:
			return "list<" + WitName(k.Type) + ">"
		case *wit.Option:
			return "option<" + WitName(k.Type) + ">"
		case *wit.Tuple:
			parts := make([]string, len(k.Types))
			for i, e := range k.Types {
				parts[i] = WitName(e)
			}
			return "tuple<" + strings.Join(parts, ", ") + ">"
		case *wit.Result:
			return "result"
		}
		return "typedef"
	default:
		return fmt.Sprintf("%T", t)
	}
}

// GoName converts a kebab-case WIT identifier to an exported Go name.
func GoName(witName string) string {
	var b strings.Builder
	for _, part := range strings.Split(strings.TrimPrefix(witName, "%"), "-") {
		if part == "" {
			continue
		}
		b.WriteString(model.Export(part))
	}
	return b.String()
}
