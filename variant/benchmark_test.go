package variant

import (
	"math/rand"
	"testing"
)

const benchSize = 10000

// benchValues holds the same random Foo/Bar mix for every benchmark.
var benchValues = func() []FooBar {
	rng := rand.New(rand.NewSource(1))
	values := make([]FooBar, benchSize)
	for i := range values {
		if rng.Intn(2) == 0 {
			values[i].Set0(Foo{F: 3})
		} else {
			values[i].Set1(Bar{B: 5})
		}
	}
	return values
}()

type sumVisitor struct {
	counter int
}

func (v *sumVisitor) Visit0(f Foo) { v.counter += f.F }
func (v *sumVisitor) Visit1(b Bar) { v.counter += b.B }

// boxed is the method-table equivalent of FooBar.
type boxed interface {
	accept(v *sumVisitor)
}

type boxedFoo struct{ Foo }
type boxedBar struct{ Bar }

func (f boxedFoo) accept(v *sumVisitor) { v.Visit0(f.Foo) }
func (b boxedBar) accept(v *sumVisitor) { v.Visit1(b.Bar) }

func boxedValues() []boxed {
	out := make([]boxed, len(benchValues))
	for i := range benchValues {
		if f, ok := benchValues[i].Get0(); ok {
			out[i] = boxedFoo{f}
		} else {
			b, _ := benchValues[i].Get1()
			out[i] = boxedBar{b}
		}
	}
	return out
}

func BenchmarkVisit2(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := sumVisitor{}
		for j := range benchValues {
			Visit2(&v, &benchValues[j])
		}
	}
}

func BenchmarkMatch2(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v := sumVisitor{}
		for j := range benchValues {
			Match2(&benchValues[j], v.Visit0, v.Visit1)
		}
	}
}

func BenchmarkInterfaceMethod(b *testing.B) {
	values := boxedValues()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := sumVisitor{}
		for _, x := range values {
			x.accept(&v)
		}
	}
}

func BenchmarkTypeSwitch(b *testing.B) {
	values := boxedValues()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := sumVisitor{}
		for _, x := range values {
			switch x := x.(type) {
			case boxedFoo:
				v.Visit0(x.Foo)
			case boxedBar:
				v.Visit1(x.Bar)
			}
		}
	}
}
