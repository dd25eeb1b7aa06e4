package sampling_test

import (
	"fmt"

	sampling "github.com/tphakala/go-sampling-lab"
)

func ExampleProcessSignal() {
	res, err := sampling.ProcessSignal(10)
	if err != nil {
		panic(err)
	}
	fmt.Println(len(res.Time), res.Stages[0].OutputLen, len(res.Restored))

	// Output:
	// 300 150 300
}

func ExampleSweep() {
	freqs, err := sampling.FrequencyRange(0, 2, 1)
	if err != nil {
		panic(err)
	}
	result, err := sampling.Sweep(freqs)
	if err != nil {
		panic(err)
	}
	for _, p := range result {
		fmt.Printf("%.0f Hz: %.1e\n", p.Frequency, p.MSE)
	}

	// Output:
	// 0 Hz: 0.0e+00
	// 1 Hz: 2.8e-06
	// 2 Hz: 3.4e-05
}
