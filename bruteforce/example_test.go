package bruteforce_test

import (
	"fmt"

	"github.com/katalvlaran/genpos/bruteforce"
	"github.com/katalvlaran/genpos/geom"
)

// ExampleIsGeneralPosition demonstrates the two basic verdicts: a proper
// triangle is in general position, three points on y = 2x are not.
func ExampleIsGeneralPosition() {
	triangle := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	line := []geom.Point{{X: 1, Y: 2}, {X: 2, Y: 4}, {X: 3, Y: 6}}

	ok, _ := bruteforce.IsGeneralPosition(triangle)
	fmt.Println("triangle:", ok)

	ok, _ = bruteforce.IsGeneralPosition(line)
	fmt.Println("line:", ok)

	// Output:
	// triangle: true
	// line: false
}

// ExampleIsGeneralPosition_withEpsilon widens the tolerance so a slightly
// bent triple counts as collinear.
func ExampleIsGeneralPosition_withEpsilon() {
	bent := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2 + 1e-6}}

	strict, _ := bruteforce.IsGeneralPosition(bent)
	loose, _ := bruteforce.IsGeneralPosition(bent, geom.WithEpsilon(1e-4))
	fmt.Println(strict, loose)

	// Output: true false
}
