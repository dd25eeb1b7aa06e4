// Command sampling generates a sinusoid, decimates it by two, rebuilds it by
// linear interpolation and reports the mean squared reconstruction error,
// then sweeps the same measurement across a frequency range.
//
// Usage:
//
//	sampling -freq 10                        # single run plus 0..50 Hz sweep
//	sampling                                 # prompt for the frequency on stdin
//	sampling -freq 10 -no-sweep              # single run only
//	sampling -freq 10 -csv > sweep.csv       # sweep as CSV for a plotting tool
//	sampling -freq 10 -sweep-step 0.5 -v     # finer sweep with stage trace
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tphakala/simd/cpu"

	sampling "github.com/tphakala/go-sampling-lab"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sampling", flag.ContinueOnError)
	fs.SetOutput(stderr)
	freqArg := fs.String("freq", "", "Signal frequency in Hz (prompted for when empty)")
	sweepStart := fs.Float64("sweep-start", defaultSweepStart, "First sweep frequency in Hz")
	sweepStop := fs.Float64("sweep-stop", defaultSweepStop, "Last sweep frequency in Hz (inclusive)")
	sweepStep := fs.Float64("sweep-step", defaultSweepStep, "Sweep frequency step in Hz")
	noSweep := fs.Bool("no-sweep", false, "Skip the frequency sweep")
	parallel := fs.Bool("parallel", true, "Sweep frequencies concurrently")
	csvOut := fs.Bool("csv", false, "Write the sweep as CSV instead of a table")
	verbose := fs.Bool("v", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	config := sampling.DefaultConfig()
	config.EnableParallel = *parallel

	analyzer, err := sampling.New(config)
	if err != nil {
		return fmt.Errorf("failed to create analyzer: %w", err)
	}

	// Keep the CSV stream on stdout clean of the prompt.
	prompt := stdout
	if *csvOut {
		prompt = stderr
	}

	freq, err := resolveFrequency(*freqArg, bufio.NewReader(stdin), prompt, config)
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("Frequency: %g Hz", freq)
		log.Printf("Sample rate: %g Hz, periods: %d", config.SampleRate, config.Periods)
		log.Printf("SIMD: %s", cpu.Info())
		if *parallel {
			log.Printf("Parallel: enabled (%d workers)", config.Workers())
		} else {
			log.Printf("Parallel: disabled (sequential sweep)")
		}
	}

	res, err := analyzer.Process(freq)
	if err != nil {
		return err
	}
	if *verbose {
		for _, st := range res.Stages {
			log.Printf("Stage %s: %d -> %d samples", st.Name, st.InputLen, st.OutputLen)
		}
	}
	if !*csvOut {
		writeSummary(stdout, res, config)
	}

	if *noSweep {
		return nil
	}

	freqs, err := sampling.FrequencyRange(*sweepStart, *sweepStop, *sweepStep)
	if err != nil {
		return err
	}
	for _, f := range freqs {
		if err := config.CheckFrequency(f); err != nil {
			return fmt.Errorf("sweep range: %w", err)
		}
	}

	sweep, err := analyzer.Sweep(freqs)
	if err != nil {
		return err
	}
	if *verbose {
		if peak, ok := sweep.Peak(); ok {
			log.Printf("Peak error: %.2e at %g Hz", peak.MSE, peak.Frequency)
		}
	}

	if *csvOut {
		return writeSweepCSV(stdout, sweep)
	}
	return writeSweepTable(stdout, sweep)
}

// errInvalidFrequency is reported for unparsable or out-of-range input.
var errInvalidFrequency = errors.New("invalid frequency")

// resolveFrequency returns the -freq value, or prompts for one when empty.
func resolveFrequency(arg string, in *bufio.Reader, out io.Writer, config *sampling.Config) (float64, error) {
	if arg == "" {
		fmt.Fprintf(out, "Enter frequency (0-%g Hz): ", config.MaxFrequency())
		line, err := in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("failed to read frequency: %w", err)
		}
		arg = line
	}
	return parseFrequency(arg, config)
}
