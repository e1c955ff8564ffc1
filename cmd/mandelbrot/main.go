package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/google/gops/agent"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/mandelbrot/internal/app"
	"github.com/bft-labs/mandelbrot/internal/cliconfig"
	"github.com/bft-labs/mandelbrot/pkg/log"
)

const longHelp = `Render the Mandelbrot set, or a Julia set, as a grayscale image.

Each pixel's brightness is how quickly the matching point of the complex
plane escapes under z <- z*z + c: white escapes at once, black never does.
The image is split into horizontal bands rendered in parallel.

Settings come from, in increasing priority: $HOME/.mandelbrot/config.toml
(or --config), MANDELBROT_* environment variables, then arguments and flags.`

var exampleUsage = strings.TrimSpace(`
  mandelbrot mandel.png 1000x750 -1.20,0.35 -1,0.20
  mandelbrot julia.png 1000x750 -1.5,1.0 1.5,-1.0 -0.727,0.189
  mandelbrot --config seahorse.toml --watch
`)

// positional lists the config keys filled by positional arguments, in order.
var positional = []string{"output", "pixels", "upper-left", "lower-right", "julia"}

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		log.NewZerologAdapter(log.ParseLevel("info")).Error("mandelbrot", log.Err(err))
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "mandelbrot [FILE PIXELS UPPERLEFT LOWERRIGHT [C]]",
		Short:         "Render the Mandelbrot set as a grayscale image",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.MaximumNArgs(len(positional)),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Build set of changed flags; positional arguments count as flags.
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			base := cfg
			dst := []*string{&base.Output, &base.Pixels, &base.UpperLeft, &base.LowerRight, &base.Julia}
			for i, arg := range args {
				*dst[i] = arg
				changed[positional[i]] = true
			}

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}
			load := func() (cliconfig.Config, error) {
				return cliconfig.Load(base, cfgFile, changed)
			}

			effective, err := load()
			if err != nil {
				return err
			}
			logger := log.NewZerologAdapter(log.ParseLevel(effective.LogLevel))
			logger.Debug("configuration",
				log.String("output", effective.Output),
				log.Stringer("bounds", effective.Bounds),
				log.Complex("upper_left", effective.Rect.UpperLeft),
				log.Complex("lower_right", effective.Rect.LowerRight),
				log.Bool("julia", effective.HasJulia),
				log.Int("iterations", effective.Iterations),
				log.Int("workers", effective.Workers),
				log.String("format", string(effective.ImageFormat)),
			)

			if effective.Gops {
				if err := agent.Listen(agent.Options{}); err != nil {
					return fmt.Errorf("start gops agent: %w", err)
				}
				defer agent.Close()
			}

			if _, err := app.Run(effective, logger); err != nil {
				return err
			}
			if !effective.Watch {
				return nil
			}
			if !cliconfig.FileExists(cfgFile) {
				return fmt.Errorf("watch: config file %q does not exist", cfgFile)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			w := app.NewWatcher(cfgFile, load, func(c cliconfig.Config) error {
				_, err := app.Run(c, logger)
				return err
			}, logger)
			return w.Run(ctx)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.mandelbrot/config.toml)")
	root.Flags().StringVar(&cfg.Julia, "julia", cfg.Julia, "render the Julia set of C (RE,IM) instead of the Mandelbrot set")
	root.Flags().IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "iteration budget per pixel")
	root.Flags().IntVar(&cfg.Workers, "workers", cfg.Workers, "number of bands rendered in parallel")
	root.Flags().StringVar(&cfg.Format, "format", cfg.Format, "output format: png, bmp or tiff (default: from file extension)")
	root.Flags().StringVar(&cfg.Report, "report", cfg.Report, "write a JSON render report to this path")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-render whenever the config file changes")
	root.Flags().BoolVar(&cfg.Gops, "gops", cfg.Gops, "start a gops diagnostics agent")

	return root
}
