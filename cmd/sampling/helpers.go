package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	sampling "github.com/tphakala/go-sampling-lab"
)

// parseFrequency parses and range checks a frequency typed by the user.
func parseFrequency(s string, config *sampling.Config) (float64, error) {
	freq, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidFrequency, strings.TrimSpace(s))
	}
	if err := config.CheckFrequency(freq); err != nil {
		return 0, fmt.Errorf("%w: %w", errInvalidFrequency, err)
	}
	return freq, nil
}

// writeSummary prints the single-run report.
func writeSummary(w io.Writer, res *sampling.Result, config *sampling.Config) {
	fmt.Fprintf(w, "Signal: %g Hz, %d points at %g Hz\n", res.Frequency, len(res.Time), config.SampleRate)
	for _, st := range res.Stages {
		fmt.Fprintf(w, "  %-12s %d -> %d\n", st.Name+":", st.InputLen, st.OutputLen)
	}
	fmt.Fprintf(w, "  MSE: %.2e\n", res.MSE)
	fmt.Fprintf(w, "  Decimated Nyquist limit: %g Hz\n", config.DecimatedNyquist())
}

// writeSweepTable prints the sweep as an aligned two-column table.
func writeSweepTable(w io.Writer, sweep sampling.SweepResult) error {
	fmt.Fprintln(w, "\nMSE vs frequency:")
	tw := tabwriter.NewWriter(w, tabMinWidth, tabWidth, tabPadding, tabPadChar, 0)
	fmt.Fprintln(tw, "Frequency (Hz)\tMSE")
	for _, p := range sweep {
		fmt.Fprintf(tw, "%g\t%.3e\n", p.Frequency, p.MSE)
	}
	return tw.Flush()
}

// writeSweepCSV writes the sweep as frequency_hz,mse rows with a header.
func writeSweepCSV(w io.Writer, sweep sampling.SweepResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"frequency_hz", "mse"}); err != nil {
		return err
	}
	for _, p := range sweep {
		row := []string{
			strconv.FormatFloat(p.Frequency, 'g', -1, 64),
			strconv.FormatFloat(p.MSE, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
