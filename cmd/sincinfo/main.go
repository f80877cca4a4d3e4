// Command sincinfo prints a table of the normalized sinc function,
// useful for eyeballing windowed-sinc filter taps.
//
// Usage:
//
//	sincinfo [flags]
//
// Examples:
//
//	sincinfo
//	sincinfo -from -4 -to 4 -steps 33
//	sincinfo -steps 9 -db
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	mathx "github.com/cwbudde/algo-mathx"
)

func main() {
	from := flag.Float64("from", -3, "start of the evaluated range")
	to := flag.Float64("to", 3, "end of the evaluated range")
	steps := flag.Int("steps", 25, "number of evaluation points")
	showDB := flag.Bool("db", false, "print magnitude in dB as well")
	flag.Parse()

	if *steps < 2 {
		fmt.Fprintln(os.Stderr, "sincinfo: -steps must be at least 2")
		os.Exit(2)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)

	if *showDB {
		fmt.Fprintln(w, "x\tsinc(x)\tdB\t")
	} else {
		fmt.Fprintln(w, "x\tsinc(x)\t")
	}

	for i := 0; i < *steps; i++ {
		ratio := float64(i) / float64(*steps-1)
		x := mathx.RemapUnit(ratio, *from, *to)
		y := mathx.Sinc(x)

		if *showDB {
			fmt.Fprintf(w, "%+.4f\t%+.6f\t%s\t\n", x, y, magnitudeDB(y))
		} else {
			fmt.Fprintf(w, "%+.4f\t%+.6f\t\n", x, y)
		}
	}

	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "sincinfo: %v\n", err)
		os.Exit(1)
	}
}

// magnitudeDB formats 20*log10(|y|), with a readable floor for zeros.
func magnitudeDB(y float64) string {
	a := math.Abs(y)
	if a == 0 {
		return "-inf"
	}

	return fmt.Sprintf("%.2f", 20*math.Log10(a))
}
