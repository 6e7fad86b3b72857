// Command sfxgen renders the built-in sound effect presets to WAV files.
//
// Usage:
//
//	sfxgen [flags] [preset ...]
//
// Each named preset is written to <preset>.wav unless -o is given.
//
// Examples:
//
//	sfxgen -list
//	sfxgen zap
//	sfxgen -preset bomb -seed 7 -o bomb.wav
//	sfxgen -preset hit -format float32 -o - | aplay
//	sfxgen -stats -play shoot
//	sfxgen -reverb 0.8 -crush 6 -o - bomb | aplay
//	sfxgen -all out/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-sfx/audio/wav"
	"github.com/cwbudde/algo-sfx/dsp/core"
	"github.com/cwbudde/algo-sfx/dsp/effects"
	"github.com/cwbudde/algo-sfx/dsp/render"
	"github.com/cwbudde/algo-sfx/internal/playback"
	"github.com/cwbudde/algo-sfx/measure/analysis"
	"github.com/cwbudde/algo-sfx/sfx"
	"golang.org/x/term"
)

type options struct {
	list       bool
	preset     string
	output     string
	format     wav.Format
	sampleRate int
	seed       uint64
	gain       float64
	volume     int
	normalize  float64
	reverb     float64
	crushBits  float64
	crushHold  int
	dither     bool
	play       bool
	stats      bool
	allDir     string
	workers    int
	names      []string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("sfxgen: ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var (
		opts   options
		format string
	)
	defaults := core.DefaultRenderConfig()
	fs := flag.NewFlagSet("sfxgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&opts.list, "list", false, "list available presets")
	fs.StringVar(&opts.preset, "preset", "", "preset to render (alternative to positional names)")
	fs.StringVar(&opts.output, "o", "", `output file; "-" writes to stdout (single preset only)`)
	fs.StringVar(&format, "format", "pcm16", "sample format: pcm16 or float32")
	fs.IntVar(&opts.sampleRate, "sample-rate", defaults.SampleRate, "sample rate in Hz")
	fs.Uint64Var(&opts.seed, "seed", defaults.Seed, "seed for noise and randomized presets")
	fs.Float64Var(&opts.gain, "gain", 1, "linear output gain")
	fs.IntVar(&opts.volume, "volume", sfx.MaxVolumeLevel, "volume step 0..9 applied on top of -gain")
	fs.Float64Var(&opts.normalize, "normalize", 0, "normalize to this peak before gain (0 disables)")
	fs.Float64Var(&opts.reverb, "reverb", 0, "add a room tail with this comb feedback in (0, 1) (0 disables)")
	fs.Float64Var(&opts.crushBits, "crush", 0, "bit-crush to this depth in [1, 24] (0 disables)")
	fs.IntVar(&opts.crushHold, "crush-hold", 1, "sample-and-hold factor for -crush")
	fs.BoolVar(&opts.dither, "dither", false, "add TPDF dither before 16-bit quantization")
	fs.BoolVar(&opts.play, "play", false, "play the result on the default audio device")
	fs.BoolVar(&opts.stats, "stats", false, "print level and spectrum statistics to stderr")
	fs.StringVar(&opts.allDir, "all", "", "render every preset into this directory")
	fs.IntVar(&opts.workers, "workers", 0, "parallel renders for -all (0 = GOMAXPROCS)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: sfxgen [flags] [preset ...]\n\n")
		fmt.Fprintf(stderr, "Renders procedural sound effect presets to WAV.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  sfxgen -list\n")
		fmt.Fprintf(stderr, "  sfxgen -preset bomb -seed 7 -o bomb.wav\n")
		fmt.Fprintf(stderr, "  sfxgen -preset hit -o - | aplay\n")
		fmt.Fprintf(stderr, "  sfxgen -all out/\n")
	}
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	f, err := wav.ParseFormat(format)
	if err != nil {
		return options{}, err
	}
	opts.format = f

	if opts.sampleRate <= 0 {
		return options{}, fmt.Errorf("-sample-rate must be > 0: %d", opts.sampleRate)
	}
	if opts.volume < 0 || opts.volume > sfx.MaxVolumeLevel {
		return options{}, fmt.Errorf("-volume must be in 0..%d: %d", sfx.MaxVolumeLevel, opts.volume)
	}

	opts.names = fs.Args()
	if opts.preset != "" {
		opts.names = append([]string{opts.preset}, opts.names...)
	}
	for i, n := range opts.names {
		opts.names[i] = strings.ToLower(strings.TrimSpace(n))
	}
	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	if opts.list {
		return printList(stdout)
	}
	if opts.allDir != "" {
		return renderAll(ctx, opts, stderr)
	}
	if len(opts.names) == 0 {
		return errors.New("no preset given (use -list to see available presets)")
	}
	if opts.output != "" && len(opts.names) > 1 {
		return errors.New("-o needs exactly one preset")
	}

	for _, name := range opts.names {
		p, err := sfx.Lookup(name)
		if err != nil {
			return err
		}
		samples, err := renderPreset(p, opts)
		if err != nil {
			return err
		}
		if err := emit(ctx, p, samples, opts, stdout, stderr); err != nil {
			return err
		}
	}
	return nil
}

func printList(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSECONDS\tDESCRIPTION")
	for _, p := range sfx.Presets() {
		fmt.Fprintf(tw, "%s\t%.2f\t%s\n", p.Name, p.Duration, p.Description)
	}
	return tw.Flush()
}

func renderPreset(p sfx.Preset, opts options) ([]float64, error) {
	samples, err := p.Render(core.WithSampleRate(opts.sampleRate), core.WithSeed(opts.seed))
	if err != nil {
		return nil, err
	}
	return samples, postProcess(samples, opts)
}

func postProcess(samples []float64, opts options) error {
	if opts.crushBits > 0 {
		c, err := effects.NewCrusher(opts.crushBits, opts.crushHold)
		if err != nil {
			return err
		}
		c.ProcessInPlace(samples)
	}
	if opts.reverb > 0 {
		r, err := effects.NewReverb(float64(opts.sampleRate),
			effects.WithReverbRoom(opts.reverb),
			effects.WithReverbMix(0.5, 1))
		if err != nil {
			return err
		}
		r.ProcessInPlace(samples)
	}
	if opts.normalize > 0 {
		if _, err := render.Normalize(samples, opts.normalize); err != nil {
			return err
		}
	}
	if g := opts.gain * sfx.VolumeFromSetting(opts.volume); g != 1 {
		render.Gain(samples, g)
	}
	return nil
}

func emit(ctx context.Context, p sfx.Preset, samples []float64, opts options, stdout, stderr io.Writer) error {
	if opts.stats {
		if err := printStats(stderr, p.Name, samples, opts.sampleRate); err != nil {
			return err
		}
	}

	out := opts.output
	if out == "" {
		out = p.Name + ".wav"
	}
	if out == "-" {
		if isTerminal(stdout) {
			return errors.New("refusing to write binary WAV data to a terminal")
		}
		if err := encode(stdout, p, samples, opts); err != nil {
			return err
		}
	} else {
		if err := writeFile(out, p, samples, opts); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "wrote %s (%d samples, %s)\n", out, len(samples), opts.format)
	}

	if opts.play {
		if err := playback.Play(ctx, samples, opts.sampleRate); err != nil {
			return fmt.Errorf("%s: %w", p.Name, err)
		}
	}
	return nil
}

func encode(w io.Writer, p sfx.Preset, samples []float64, opts options) error {
	encOpts := []wav.Option{
		wav.WithTitle(p.Name),
		wav.WithComment(fmt.Sprintf("seed %d", opts.seed)),
	}
	if opts.dither {
		encOpts = append(encOpts, wav.WithDither(int64(opts.seed)))
	}
	return wav.Encode(w, samples, opts.sampleRate, opts.format, encOpts...)
}

func writeFile(path string, p sfx.Preset, samples []float64, opts options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return encode(f, p, samples, opts)
}

func printStats(w io.Writer, name string, samples []float64, sampleRate int) error {
	r, err := analysis.Measure(samples, float64(sampleRate))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "== %s\n%s", name, r)
	return nil
}

func renderAll(ctx context.Context, opts options, stderr io.Writer) error {
	if opts.output != "" {
		return errors.New("-o cannot be combined with -all")
	}
	if err := os.MkdirAll(opts.allDir, 0o755); err != nil {
		return err
	}

	presets := sfx.Presets()
	jobs := make([]render.Job, len(presets))
	for i, p := range presets {
		jobs[i] = render.Job{
			Name:       p.Name,
			Duration:   p.Duration,
			SampleRate: opts.sampleRate,
			Build: func() (core.Generator, error) {
				return p.Build(opts.sampleRate, opts.seed)
			},
		}
	}

	buffers, err := render.Batch(ctx, jobs, opts.workers)
	if err != nil {
		return err
	}

	for i, p := range presets {
		samples := buffers[i]
		if err := postProcess(samples, opts); err != nil {
			return err
		}
		if opts.stats {
			if err := printStats(stderr, p.Name, samples, opts.sampleRate); err != nil {
				return err
			}
		}
		path := filepath.Join(opts.allDir, p.Name+".wav")
		if err := writeFile(path, p, samples, opts); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "wrote %s\n", path)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
