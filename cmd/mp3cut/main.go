package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/clipforge/mp3cut/internal/adapters/execrunner"
	"github.com/clipforge/mp3cut/internal/cliconfig"
	"github.com/clipforge/mp3cut/internal/cutlist"
	"github.com/clipforge/mp3cut/internal/cutter"
	"github.com/clipforge/mp3cut/internal/domain"
	"github.com/clipforge/mp3cut/internal/ffmpegbin"
	"github.com/clipforge/mp3cut/internal/verify"
	"github.com/clipforge/mp3cut/internal/watch"
)

const longHelp = `Cut lossless clips out of a single MP3, driven by a JSON cut list.

The cut list names one source file and an ordered set of segments:

  {
    "source": "episode.mp3",
    "segments": [
      { "start": "0:30", "end": "1:45.5", "output": "clips/intro.mp3" }
    ]
  }

Timestamps accept plain seconds, mm:ss or hh:mm:ss, with optional
fractional seconds. Every clip is produced by stream copy (no
re-encode) with all metadata and non-audio streams stripped. A failing
segment never stops the rest of the batch.

ffmpeg is resolved from --ffmpeg, MP3CUT_FFMPEG, PATH, or the cache
directory; on first use a static build is downloaded and cached.`

var exampleUsage = strings.TrimSpace(`
  mp3cut cuts.json
  mp3cut --verify --timeout 2m cuts.json
  mp3cut --watch cuts.json
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultSettings()
	var cfgPath string

	root := &cobra.Command{
		Use:           "mp3cut <cutlist.json>",
		Short:         "Cut lossless, metadata-free clips out of an MP3",
		Long:          longHelp,
		Example:       exampleUsage,
		Args:          cobra.ExactArgs(1),
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Build set of changed flags so file/env values never override
			// an explicit flag.
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultSettingsPath()
			}
			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fs, err := cliconfig.LoadFileSettings(cfgFile)
				if err != nil {
					return fmt.Errorf("load settings: %w", err)
				}
				if err := cliconfig.ApplyFileSettings(&cfg, fs, changed); err != nil {
					return err
				}
			}
			if err := cliconfig.ApplyEnvSettings(&cfg, changed); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log := cliconfig.Logger(cfg.Debug)

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return run(ctx, log, cfg, args[0])
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to settings file (default: $HOME/.mp3cut/config.toml)")
	root.Flags().StringVar(&cfg.FFmpegPath, "ffmpeg", cfg.FFmpegPath, "path to an ffmpeg binary (skips resolution)")
	root.Flags().StringVar(&cfg.CacheDir, "cache-dir", cfg.CacheDir, "directory for the downloaded ffmpeg binary")
	root.Flags().DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-segment ffmpeg timeout (0 disables)")
	root.Flags().BoolVar(&cfg.Verify, "verify", cfg.Verify, "check produced clips for leftover metadata tags")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "keep running and re-cut when the cut list changes")
	root.Flags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "enable debug logging")

	if err := root.Execute(); err != nil {
		log := cliconfig.Logger(false)
		log.Error().Err(err).Msg("mp3cut")
		os.Exit(1)
	}
}

func run(ctx context.Context, log zerolog.Logger, cfg cliconfig.Settings, listPath string) error {
	// Validate the cut list before touching the binary so a broken list
	// fails fast with no download and no process invocation. Watch mode
	// tolerates a broken list, the next edit may fix it.
	list, err := cutlist.Load(listPath)
	if err != nil {
		if !cfg.Watch {
			return err
		}
		log.Error().Err(err).Msg("cut list invalid")
		list = nil
	}

	locator := ffmpegbin.New(cfg.FFmpegPath, cfg.CacheDir, http.DefaultClient, log)
	bin, err := locator.Locate(ctx)
	if err != nil {
		return err
	}
	log.Debug().Str("ffmpeg", bin).Msg("resolved binary")

	batch := &cutter.Batch{
		Cutter: &cutter.Executor{
			Bin:    bin,
			Runner: execrunner.New(cfg.Timeout),
			Log:    log,
		},
		Log: log,
	}
	if cfg.Verify {
		batch.Verifier = verify.Checker{}
	}

	runList := func(ctx context.Context, list *domain.CutList) error {
		for _, dup := range list.DuplicateOutputs() {
			log.Warn().Str("output", dup).Msg("output path used by more than one segment, last writer wins")
		}

		log.Info().Str("source", list.Source).Int("segments", len(list.Segments)).Msg("starting batch")
		report := batch.Run(ctx, list)
		log.Info().
			Int("succeeded", report.Succeeded()).
			Int("failed", report.Failed()).
			Int("total", len(list.Segments)).
			Msg("batch finished")
		if !report.OK() {
			return fmt.Errorf("%d of %d segments failed", report.Failed(), len(list.Segments))
		}
		return nil
	}

	if !cfg.Watch {
		return runList(ctx, list)
	}

	if list != nil {
		if err := runList(ctx, list); err != nil {
			log.Error().Err(err).Msg("run failed")
		}
	}
	w := &watch.Watcher{Path: listPath, Log: log}
	return w.Run(ctx, func(ctx context.Context) error {
		list, err := cutlist.Load(listPath)
		if err != nil {
			return err
		}
		return runList(ctx, list)
	})
}
