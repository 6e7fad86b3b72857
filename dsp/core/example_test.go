package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-sfx/dsp/core"
)

func ExampleApplyRenderOptions() {
	cfg := core.ApplyRenderOptions(
		core.WithSampleRate(48000),
		core.WithSeed(42),
	)

	fmt.Printf("sampleRate=%d seed=%d\n", cfg.SampleRate, cfg.Seed)

	// Output:
	// sampleRate=48000 seed=42
}

func ExampleGeneratorFunc() {
	n := 0.0
	g := core.GeneratorFunc(func() float64 {
		n += 0.5
		return n
	})

	fmt.Println(g.Next(), g.Next())

	// Output:
	// 0.5 1
}
