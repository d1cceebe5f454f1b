package variant_test

import (
	"fmt"

	"github.com/wippyai/visit/variant"
)

type Circle struct{ R float64 }
type Square struct{ Side float64 }

type Shape = variant.Of2[Circle, Square]

type areaSum struct {
	total float64
}

func (a *areaSum) Visit0(c Circle) { a.total += 3 * c.R * c.R }
func (a *areaSum) Visit1(s Square) { a.total += s.Side * s.Side }

func ExampleVisit2() {
	shapes := []Shape{
		Shape{}.With0(Circle{R: 1}),
		Shape{}.With1(Square{Side: 2}),
	}

	sum := &areaSum{}
	for i := range shapes {
		variant.Visit2(sum, &shapes[i])
	}
	fmt.Println(sum.total)
	// Output: 7
}

func ExampleMatch2() {
	var s Shape
	s.Set1(Square{Side: 3})

	variant.Match2(&s,
		func(c Circle) { fmt.Println("circle", c.R) },
		func(sq Square) { fmt.Println("square", sq.Side) },
	)
	// Output: square 3
}

func ExampleOf2_Check() {
	var s Shape
	fmt.Println(s.Check())
	// Output: [dispatch] invalid_variant at Of2: no active alternative (2 alternatives)
}
