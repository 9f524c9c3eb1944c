package genpos_test

import (
	"fmt"

	"github.com/katalvlaran/genpos"
	"github.com/katalvlaran/genpos/geom"
)

// ExampleCheckers runs both algorithms side by side on one input, the way a
// comparison harness would.
func ExampleCheckers() {
	pts := []geom.Point{{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 6}, {X: 0, Y: 5}}

	for _, c := range genpos.Checkers() {
		ok, err := c.IsGeneralPosition(pts)
		if err != nil {
			fmt.Println(c.Name(), "error:", err)
			continue
		}
		fmt.Printf("%s: %v\n", c.Name(), ok)
	}

	// Output:
	// brute-force: false
	// duality: false
}
