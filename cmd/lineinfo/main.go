// Command lineinfo prints atomic data from the builtin line list and can
// run a synthetic measurement smoke test.
//
// Usage:
//
//	lineinfo [flags] [transition-name ...]
//
// Without arguments it prints the whole builtin ISM list.
//
// Examples:
//
//	lineinfo
//	lineinfo "CIV 1548" "CIV 1550"
//	lineinfo -wave 1215.67
//	lineinfo -demo
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectro/line"
	"github.com/cwbudde/algo-spectro/linelist"
	"github.com/cwbudde/algo-spectro/measure/aodm"
	"github.com/cwbudde/algo-spectro/measure/ew"
	"github.com/cwbudde/algo-spectro/spectrum"
	"github.com/cwbudde/algo-spectro/stats/flux"
	"github.com/cwbudde/algo-spectro/unit"
)

func main() {
	listName := flag.String("list", "ISM", "line list to use")
	waveArg := flag.Float64("wave", 0, "look up a transition by rest wavelength in Angstrom")
	demo := flag.Bool("demo", false, "measure a synthetic absorption line and print the results")
	flag.Parse()

	list, err := linelist.New(*listName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *demo {
		if err := runDemo(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		return
	}

	if *waveArg > 0 {
		tr, err := list.LookupWavelength(unit.Angstroms(*waveArg))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		printTransitions([]linelist.Transition{tr})

		return
	}

	if flag.NArg() > 0 {
		trs := make([]linelist.Transition, 0, flag.NArg())

		for _, name := range flag.Args() {
			tr, err := list.LookupName(name)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}

			trs = append(trs, tr)
		}

		printTransitions(trs)

		return
	}

	printTransitions(list.Transitions())
}

func printTransitions(trs []linelist.Transition) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tION\tWREST [A]\tFVAL\tGAMMA [1/s]")

	for _, tr := range trs {
		fmt.Fprintf(w, "%s\t%s\t%.4f\t%.5g\t%.4g\n",
			tr.Name, tr.Ion, tr.Wrest.Value, tr.Fval, tr.Gamma)
	}

	w.Flush()
}

// runDemo synthesizes a half-depth Lyman-alpha line across a ±100 km/s
// window and measures its equivalent width and AODM column density.
func runDemo() error {
	l, err := line.NewAbsorption(line.ByName("HI 1215"))
	if err != nil {
		return err
	}

	l.Attrib.Z = 0
	l.Analysis.VLim = [2]float64{-100, 100}

	n := 21
	wave := make([]float64, n)
	fx := make([]float64, n)
	sig := make([]float64, n)

	for i := range wave {
		v := -100 + 10*float64(i)

		w, err := spectrum.WavelengthAtVelocity(l.Wrest, v)
		if err != nil {
			return err
		}

		wave[i] = w.Value
		fx[i] = 0.5
		sig[i] = 0.01
	}

	l.Analysis.Spec = &spectrum.Spectrum{
		Wave:     wave,
		WaveUnit: unit.Length,
		Flux:     fx,
		Sigma:    sig,
	}
	l.Analysis.WvLim = [2]float64{wave[0], wave[n-1]}

	fmt.Println(l)

	st := flux.Calculate(fx)
	fmt.Printf("window: %d pixels, mean flux %.3f, median SNR %.1f\n",
		st.Pixels, st.Mean, flux.MedianSNR(fx, sig))

	ewRes, err := ew.RestEW(l)
	if err != nil {
		return err
	}

	fmt.Printf("EW = %s ± %s (%s frame)\n", ewRes.EW, ewRes.EWSig, ewRes.Frame)

	colRes, err := aodm.Measure(l)
	if err != nil {
		return err
	}

	fmt.Printf("logN = %.4f ± %.4f", colRes.LogN, colRes.SigLogN)

	if colRes.Saturated > 0 {
		fmt.Printf(" (lower limit, %d saturated pixels)", colRes.Saturated)
	}

	fmt.Println()

	return nil
}
