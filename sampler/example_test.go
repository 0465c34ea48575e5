package sampler_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/ratla/fraction"
	"github.com/katalvlaran/ratla/sampler"
)

// ExampleCache_Select picks the index whose cumulative probability first
// reaches the given point.
func ExampleCache_Select() {
	f := fraction.ExactFactory()
	c, _ := sampler.NewCache([]fraction.Value{f.Pair(1, 4), f.Pair(1, 4), f.Pair(1, 2)})
	fmt.Println(c.Cumulative())
	i, _ := c.Select(f.Pair(1, 3))
	fmt.Println(i)

	// Output:
	// [1/4 1/2 1]
	// 1
}

// ExampleChooseRandomly draws with a caller-owned seeded source.
func ExampleChooseRandomly() {
	f := fraction.ExactFactory()
	src := rand.NewPCG(1, 2)
	i, err := sampler.ChooseRandomly([]fraction.Value{f.Zero(), f.Pair(2, 3)}, src)
	fmt.Println(i, err)

	// Output:
	// 1 <nil>
}
