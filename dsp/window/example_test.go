package window_test

import (
	"fmt"

	"github.com/cwbudde/algo-sfx/dsp/window"
)

func ExampleHann() {
	w, err := window.Hann(8, window.WithPeriodic())
	if err != nil {
		fmt.Println("error")
		return
	}
	fmt.Printf("%.3f\n", w)
	// Output:
	// [0.000 0.146 0.500 0.854 1.000 0.854 0.500 0.146]
}
