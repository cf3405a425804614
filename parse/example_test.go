package parse_test

import (
	"fmt"

	"github.com/katalvlaran/cval/core"
	"github.com/katalvlaran/cval/parse"
)

// ExampleParse builds a value from its string form and hands it to the
// numeric core.
func ExampleParse() {
	z, _ := parse.Parse("3+4i")
	fmt.Println(z.Abs())
	// Output: 5
}

// ExampleParse_polar builds a value from a polar map.
func ExampleParse_polar() {
	z, _ := parse.Parse(map[string]float64{"abs": 2, "arg": 0})
	fmt.Println(z.Re(), z.Im())
	// Output: 2 0
}

// ExampleFormat renders the unit imaginary in its shortest form.
func ExampleFormat() {
	fmt.Println(parse.Format(core.New(0, -1)))
	fmt.Println(parse.Format(core.New(1.5, 1)))
	// Output:
	// -i
	// 1.5+i
}
