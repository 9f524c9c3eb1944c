// Command genpos is the calling environment around the general-position
// checkers: it builds a point set (generated or read from stdin), runs the
// selected algorithm(s), measures wall-clock time around each call, and
// prints colored verdicts. Timing and output live here on purpose; the
// library functions stay pure.
//
// Input on stdin (with --stdin) is newline-separated points in the form
// "x y". Generated input comes from the pointgen package and is fully
// determined by --seed.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/katalvlaran/genpos"
	"github.com/katalvlaran/genpos/geom"
	"github.com/katalvlaran/genpos/pointgen"
)

var (
	numPoints = kingpin.Flag("n", "Number of points to generate.").Default("32").Int()
	seed      = kingpin.Flag("seed", "RNG seed; 0 maps to a fixed default.").Default("0").Int64()
	plant     = kingpin.Flag("plant", "Structure to plant in the generated set.").
			Default("none").Enum("none", "collinear", "near", "duplicate")
	jitter  = kingpin.Flag("jitter", "Off-line displacement for --plant=near.").Default("1e-12").Float64()
	eps     = kingpin.Flag("eps", "Comparison tolerance for both algorithms.").Default("1e-9").Float64()
	algo    = kingpin.Flag("algo", "Algorithm to run.").Default("both").Enum("brute", "duality", "both")
	pngPath = kingpin.Flag("png", "Render the point set to this PNG file.").String()
	cat     = kingpin.Flag("imgcat", "Print the rendered PNG inline (iTerm2).").Bool()
	stdinIn = kingpin.Flag("stdin", "Read \"x y\" lines from stdin instead of generating.").Bool()
	label   = kingpin.Flag("label", "Run label; default is a random readable name.").String()
)

func main() {
	kingpin.Parse()

	if *label == "" {
		petname.NonDeterministicMode()
		*label = petname.Generate(2, "-")
	}

	pts, err := loadPoints()
	if err != nil {
		fatalf("input: %v", err)
	}
	fmt.Printf("[%s] %d points\n", *label, len(pts))

	verdicts := make(map[string]bool, 2)
	for _, c := range selectCheckers() {
		start := time.Now()
		ok, err := c.IsGeneralPosition(pts, geom.WithEpsilon(*eps))
		took := time.Since(start)
		if err != nil {
			fatalf("%s: %v", c.Name(), err)
		}
		verdicts[c.Name()] = ok
		fmt.Printf("[%s] %-11s %s in %v\n", *label, c.Name(), verdict(ok), took)
	}
	if len(verdicts) == 2 && verdicts["brute-force"] != verdicts["duality"] {
		fmt.Println(aurora.Yellow("WARNING: the algorithms disagree on this input"))
	}

	if *pngPath != "" {
		if err = renderPNG(pts, *pngPath); err != nil {
			fatalf("render: %v", err)
		}
		if *cat {
			catPNG(*pngPath)
		}
	}
}

// selectCheckers maps --algo onto the strategy surface.
func selectCheckers() []genpos.Checker {
	switch *algo {
	case "brute":
		return []genpos.Checker{genpos.BruteForce()}
	case "duality":
		return []genpos.Checker{genpos.Duality()}
	default:
		return genpos.Checkers()
	}
}

// loadPoints builds the input set from stdin or from pointgen per --plant.
func loadPoints() ([]geom.Point, error) {
	if *stdinIn {
		return readPoints(os.Stdin)
	}
	switch *plant {
	case "collinear":
		return pointgen.WithCollinearTriple(*numPoints, *seed)
	case "near":
		return pointgen.NearCollinear(*numPoints, *seed, *jitter)
	case "duplicate":
		return pointgen.WithDuplicate(*numPoints, *seed)
	default:
		return pointgen.Uniform(*numPoints, *seed)
	}
}

// readPoints scans newline-separated "x y" pairs; blank lines are skipped.
func readPoints(in *os.File) ([]geom.Point, error) {
	var pts []geom.Point
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed line %q: want \"x y\"", line)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("malformed x in %q: %w", line, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("malformed y in %q: %w", line, err)
		}
		pts = append(pts, geom.Point{X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return pts, nil
}

func verdict(ok bool) aurora.Value {
	if ok {
		return aurora.Green("general position")
	}
	return aurora.Red("degenerate")
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
