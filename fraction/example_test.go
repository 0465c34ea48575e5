package fraction_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/ratla/fraction"
)

// ExampleValue_Add shows that mixing modes poisons the result instead of
// failing at the operator.
func ExampleValue_Add() {
	exact := fraction.ExactFactory()
	approx := fraction.ApproxFactory()

	sum := exact.Pair(1, 4).Add(exact.Pair(1, 6))
	fmt.Println(sum)

	mixed := sum.Add(approx.Float(0.5)).Mul(exact.Int(2))
	fmt.Println(mixed.IsIncompatible())

	_, err := mixed.Rat()
	fmt.Println(err)

	// Output:
	// 5/12
	// true
	// Rat: fraction: cannot combine exact and approximate values
}

// ExampleFactory_Parse parses the accepted literal forms.
func ExampleFactory_Parse() {
	f := fraction.ExactFactory()
	for _, s := range []string{"0.2", "-1/5", ".25", "3/0"} {
		v, err := f.Parse(s)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(v)
	}

	// Output:
	// 1/5
	// -1/5
	// 1/4
	// +Inf
}

// ExampleValue_Export prints a value for humans.
func ExampleValue_Export() {
	v := fraction.ExactFactory().Pair(2, 3)
	_ = v.Export(os.Stdout)

	// Output:
	// 2/3
	// Approximately 0.6667
}
