// Command neomatrix-demo plays animations on a WS2812B LED matrix, and can
// run the wiring diagnostic that tells serpentine panels from linear ones.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"periph.io/x/host/v3"

	"github.com/dominicmooney007/neomatrix"
	"github.com/dominicmooney007/neomatrix/anim"
)

var (
	configPath = "neomatrix.toml"
	verbose    = false
	list       = false
	testLayout = false
	loop       = false
	seed       = int64(0)
)

func init() {
	pflag.StringVarP(&configPath, "config", "c", configPath, "configuration file")
	pflag.BoolVarP(&verbose, "verbose", "v", verbose, "verbose output")
	pflag.BoolVarP(&list, "list", "l", list, "list available animations")
	pflag.BoolVar(&testLayout, "test-layout", testLayout, "run the wiring diagnostic instead of animations")
	pflag.BoolVar(&loop, "loop", loop, "repeat the animations until interrupted")
	pflag.Int64Var(&seed, "seed", seed, "random seed (0 seeds from the clock)")
}

func main() {
	pflag.Parse()

	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	animations := anim.All(rng)

	if list {
		for _, a := range animations {
			fmt.Println(a.Name())
		}
		return nil
	}

	config, err := readConfig()
	if err != nil {
		return err
	}

	if selected := pflag.Args(); len(selected) > 0 {
		animations, err = pick(animations, selected)
		if err != nil {
			return err
		}
	}

	if _, err := host.Init(); err != nil {
		return fmt.Errorf("failed to initialize host drivers: %w", err)
	}

	out, err := config.Open()
	if err != nil {
		return err
	}
	defer out.Close()
	slog.Debug("using output", "output", out.String())

	matrixConfig, err := config.MatrixConfig()
	if err != nil {
		return err
	}
	matrix := neomatrix.New(out, matrixConfig)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if testLayout {
		slog.Info("running layout test: watch the second row",
			"serpentine", "lights right to left", "linear", "lights left to right")
		err := matrix.TestLayout(ctx, 300*time.Millisecond)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}

	player := &anim.Player{
		Matrix:   matrix,
		Interval: time.Duration(config.FrameInterval),
		Logger:   slog.Default(),
	}

	errg, ctx := errgroup.WithContext(ctx)
	errg.Go(func() error {
		for {
			for _, a := range animations {
				slog.Info("playing animation", "name", a.Name())
				if err := player.Run(ctx, a); err != nil {
					return err
				}
			}
			if !loop {
				return nil
			}
		}
	})

	if err := errg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("animation failed: %w", err)
	}
	return nil
}

func pick(available []anim.Animation, names []string) ([]anim.Animation, error) {
	byName := make(map[string]anim.Animation, len(available))
	for _, a := range available {
		byName[a.Name()] = a
	}

	picked := make([]anim.Animation, 0, len(names))
	for _, name := range names {
		a, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown animation %q", name)
		}
		picked = append(picked, a)
	}
	return picked, nil
}

func readConfig() (*neomatrix.FileConfig, error) {
	f, err := os.Open(configPath)
	if os.IsNotExist(err) && !pflag.CommandLine.Changed("config") {
		// No file next to the binary is fine, the defaults describe the
		// common 8x8 panel.
		config := neomatrix.DefaultFileConfig
		return &config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	return neomatrix.ParseConfig(f)
}
