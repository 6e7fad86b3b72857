package effects_test

import (
	"fmt"

	"github.com/cwbudde/algo-sfx/dsp/effects"
)

func ExampleDelay_ProcessInPlace() {
	delay, err := effects.NewDelay(4, 1, 0.5)
	if err != nil {
		fmt.Println("error")
		return
	}

	buf := []float64{1, 0, 0, 0, 0, 0, 0, 0, 0}
	delay.ProcessInPlace(buf)

	fmt.Println(buf)
	// Output:
	// [1 0 0 0 0.5 0 0 0 0.25]
}

func ExampleCrusher() {
	c, err := effects.NewCrusher(3, 2)
	if err != nil {
		fmt.Println("error")
		return
	}

	buf := []float64{0.3, 0.9, -0.6, 0.1}
	c.ProcessInPlace(buf)

	fmt.Println(buf)
	// Output:
	// [0.25 0.25 -0.5 -0.5]
}
