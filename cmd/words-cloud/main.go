package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sblando/words-cloud/internal/app"
)

// stopList collects repeated -stop flags, splitting comma-separated values.
type stopList []string

func (s *stopList) String() string { return strings.Join(*s, ",") }

func (s *stopList) Set(v string) error {
	for _, part := range strings.Split(v, ",") {
		if w := strings.TrimSpace(part); w != "" {
			*s = append(*s, w)
		}
	}
	return nil
}

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputDir   string
		outputDir  string
		topN       int
		bigrams    bool
		stops      stopList
		minLen     int
		stem       bool
		stripRefs  bool
		configPath string
		verbose    bool
	)

	flag.StringVar(&inputDir, "input", "", "Directory containing the input documents")
	flag.StringVar(&outputDir, "output", "output", "Directory for the CSV and PNG outputs")
	flag.IntVar(&topN, "top", 100, "Number of top terms kept per CSV")
	flag.BoolVar(&bigrams, "bigrams", false, "Also count adjacent-pair bigrams")
	flag.Var(&stops, "stop", "Extra stopword(s); repeat the flag or separate with commas")
	flag.IntVar(&minLen, "minlen", 3, "Minimum token length kept (0 disables)")
	flag.BoolVar(&stem, "stem", false, "Apply English Snowball stemming to kept tokens")
	flag.BoolVar(&stripRefs, "strip-refs", false, "Truncate each document at a references/bibliography heading")
	flag.StringVar(&configPath, "config", "", "Optional YAML or JSON config file; explicit flags win")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := app.Config{
		InputDir:       inputDir,
		OutputDir:      outputDir,
		TopN:           topN,
		Bigrams:        bigrams,
		ExtraStopwords: stops,
		MinTokenLen:    minLen,
		Stem:           stem,
		StripRefs:      stripRefs,
		Verbose:        verbose,
	}

	if configPath != "" {
		fc, err := app.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("config", configPath).Msg("config file unusable")
			os.Exit(2)
		}
		app.ApplyFileConfig(&cfg, fc)
		if cfg.Verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	}

	if err := run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: 2 for configuration problems caught before any
		// processing, 1 for runs where nothing could be processed.
		if isConfigError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// isConfigError reports whether err came from configuration validation. Kept
// narrow so processing failures never map to the config exit code.
func isConfigError(err error) bool {
	var cfgErr app.ConfigError
	return errors.As(err, &cfgErr)
}

func run(cfg app.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a, err := app.New(cfg)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	return a.Run(ctx)
}
