package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/UnknownOlympus/geocalc/internal/config"
	"github.com/UnknownOlympus/geocalc/internal/metrics"
	"github.com/UnknownOlympus/geocalc/internal/query"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/pflag"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// Process exit codes.
const (
	exitOK         = 0
	exitFailure    = 1
	exitNoSolution = 2
)

// main is the entry point of the application.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment. Stdout is reserved for results.
	logger := setupLogger(cfg.Env, os.Stderr)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, cfg, logger, reg)
	stop()
	os.Exit(code)
}

// run parses args, evaluates one query and prints the result. The query comes
// from --query, from the file named by --file, or from stdin.
func run(
	ctx context.Context,
	args []string,
	stdin io.Reader,
	stdout io.Writer,
	cfg *config.Config,
	log *slog.Logger,
	reg *prometheus.Registry,
) int {
	flags := pflag.NewFlagSet("geocalc", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	inline := flags.StringP("query", "q", "", "JSON query to evaluate")
	file := flags.StringP("file", "f", "", "file holding the JSON query")
	if err := flags.Parse(args); err != nil {
		log.ErrorContext(ctx, "Invalid arguments", "error", err)
		return exitFailure
	}

	appMetrics := metrics.NewMetrics(reg)
	evaluator := query.NewEvaluator(log, appMetrics)

	defer func() {
		if cfg.MetricsTextfile == "" {
			return
		}
		if err := metrics.WriteTextfile(reg, cfg.MetricsTextfile); err != nil {
			log.ErrorContext(ctx, "Failed to export metrics", "path", cfg.MetricsTextfile, "error", err)
		}
	}()

	source, err := querySource(*inline, *file, stdin)
	if err != nil {
		log.ErrorContext(ctx, "Failed to open query", "error", err)
		return exitFailure
	}
	defer source.Close()

	q, err := query.Decode(source)
	if err != nil {
		log.ErrorContext(ctx, "Failed to read query", "error", err)
		return exitFailure
	}

	res, err := evaluator.Evaluate(ctx, q)
	if err != nil {
		return exitFailure
	}

	if err = printResult(stdout, res, cfg); err != nil {
		log.ErrorContext(ctx, "Failed to write result", "error", err)
		return exitFailure
	}

	if res.Status == metrics.StatusNoSolution {
		return exitNoSolution
	}

	return exitOK
}

func querySource(inline, file string, stdin io.Reader) (io.ReadCloser, error) {
	switch {
	case inline != "" && file != "":
		return nil, fmt.Errorf("--query and --file are mutually exclusive")
	case inline != "":
		return io.NopCloser(strings.NewReader(inline)), nil
	case file != "":
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open query file: %w", err)
		}
		return f, nil
	default:
		return io.NopCloser(stdin), nil
	}
}

func printResult(w io.Writer, res *query.Result, cfg *config.Config) error {
	if cfg.Output == config.OutputText {
		_, err := fmt.Fprintln(w, res.Text(cfg.Precision))
		return err
	}

	enc := json.NewEncoder(w)
	return enc.Encode(res)
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string, out io.Writer) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(out, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(out, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(out, &slog.HandlerOptions{
				Level:       slog.LevelWarn,
				AddSource:   false,
				ReplaceAttr: dropTime,
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(out, &slog.HandlerOptions{
				Level:       slog.LevelError,
				AddSource:   false,
				ReplaceAttr: dropTime,
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}

func dropTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{}
	}

	return a
}
