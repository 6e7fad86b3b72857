package filter_test

import (
	"fmt"

	"github.com/cwbudde/algo-sfx/dsp/filter"
)

func ExampleLowPass() {
	lp := filter.NewLowPass()
	for range 3 {
		fmt.Printf("%.3f ", lp.Process(0.5, 1))
	}
	fmt.Println()

	// Output:
	// 0.500 0.750 0.875
}
