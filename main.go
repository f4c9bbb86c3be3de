package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"rpn/config"
	"rpn/remote"
	"rpn/repl"
	"rpn/rpn"
	"rpn/script"
	"rpn/selector"
)

var (
	prometheusUrl *string
	configFile    *string
	expression    *string
	scriptFile    *string
	debug         *bool
)

func init() {
	prometheusUrl = flag.String("prometheus.url", "", "prometheus http url, enables remote write of the configured time series")
	configFile = flag.String("config.file", config.DefaultConfigFile, "config file location")
	expression = flag.String("expression", "", "evaluate a single expression and exit")
	scriptFile = flag.String("script", "", "run a lua script with the rpn function available")
	debug = flag.Bool("debug", false, "enable debug logging")
}

func newLogger(debug bool) logr.Logger {
	cfg := zap.NewProductionConfig()
	if debug {
		cfg = zap.NewDevelopmentConfig()
	}
	z, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return zapr.NewLogger(z)
}

// loadConfig returns an empty config when the default file is absent.
func loadConfig(file string) (*config.ConfigRoot, error) {
	root, err := config.Load(file)
	if err != nil && file == config.DefaultConfigFile && errors.Is(err, fs.ErrNotExist) {
		return &config.ConfigRoot{}, nil
	}
	return root, err
}

// evaluateOnce prints the result of a single expression and returns the
// process exit code.
func evaluateOnce(expression string, out io.Writer) int {
	result, err := rpn.Evaluate(expression)
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintln(out, repl.FormatResult(result))
	return 0
}

func writeSeries(ctx context.Context, log logr.Logger, root *config.ConfigRoot, client *remote.Client) error {
	if len(root.Series) == 0 {
		return errors.New("no time_series configured")
	}

	written := 0
	for _, ts := range root.Series {
		labels, err := selector.ParseLabels(ts.Series)
		if err != nil {
			log.Error(err, "skipping series", "series", ts.Series)
			continue
		}

		value, err := rpn.Evaluate(ts.Expression)
		if err != nil {
			log.Error(err, "skipping series", "series", ts.Series, "expression", ts.Expression)
			continue
		}

		if err = client.Write(ctx, remote.Gauge(labels, value, time.Now())); err != nil {
			return errors.Wrapf(err, "error writing series %v", ts.Series)
		}
		log.V(1).Info("series written", "series", ts.Series, "value", value)
		written++
	}

	log.Info("done writing series", "written", written, "configured", len(root.Series))
	return nil
}

func main() {
	flag.Parse()

	log := newLogger(*debug)

	if *expression != "" {
		os.Exit(evaluateOnce(*expression, os.Stdout))
	}

	if *scriptFile != "" {
		if err := script.New(log).Run(*scriptFile); err != nil {
			log.Error(err, "script failed")
			os.Exit(1)
		}
		return
	}

	root, err := loadConfig(*configFile)
	if err != nil {
		log.Error(err, "invalid configuration")
		os.Exit(1)
	}

	if *prometheusUrl != "" {
		client, err := remote.NewClient(*prometheusUrl, log)
		if err != nil {
			log.Error(err, "invalid prometheus url")
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
		defer stop()

		if err = writeSeries(ctx, log, root, client); err != nil {
			log.Error(err, "remote write failed", "url", client.URL())
			stop()
			os.Exit(1)
		}
		return
	}

	opts := repl.Options{
		Prompt: root.Prompt,
		Banner: repl.DefaultBanner,
		Quit:   root.Quit,
	}
	if root.Banner != nil {
		opts.Banner = *root.Banner
	}

	r := repl.New(repl.NewLineReader(os.Stdin), os.Stdout, rpn.Evaluate, log, opts)
	if err = r.Run(); err != nil {
		log.Error(err, "repl stopped")
		os.Exit(1)
	}
}
