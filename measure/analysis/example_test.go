package analysis_test

import (
	"fmt"

	"github.com/cwbudde/algo-sfx/measure/analysis"
)

func ExampleMeasureLevel() {
	lv := analysis.MeasureLevel([]float64{0.5, -1, 0.25, 0}, 4)
	fmt.Printf("peak %.2f at %d, %d zero crossings\n", lv.Peak, lv.PeakPos, lv.ZeroCrossings)
	// Output:
	// peak 1.00 at 1, 2 zero crossings
}
