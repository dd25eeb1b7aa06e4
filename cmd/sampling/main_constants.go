package main

// Default command-line flag values
const (
	defaultSweepStart = 0.0  // DC
	defaultSweepStop  = 50.0 // Nyquist limit of the 100 Hz signal
	defaultSweepStep  = 1.0  // Integer frequencies
)

// Output formatting
const (
	tabMinWidth = 0
	tabWidth    = 8
	tabPadding  = 2
	tabPadChar  = ' '
)
