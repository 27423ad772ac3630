package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/nocturnecity/play-assets/internal"
)

const generateCmd = "generate"
const watchCmd = "watch"
const publishCmd = "publish"
const defaultRoot = "."
const defaultLogLvl = "info"

func main() {
	cmdName := generateCmd
	args := os.Args[1:]
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmdName, args = args[0], args[1:]
	}
	switch cmdName {
	case generateCmd, watchCmd, publishCmd:
	default:
		fmt.Printf("playassets: one of the following command expected: '%v'\n", []string{generateCmd, watchCmd, publishCmd})
		os.Exit(1)
	}

	var (
		logLVL      string
		root        string
		configPath  string
		metricsFile string
		debounce    time.Duration
		bucket      string
		region      string
		prefix      string
	)

	cmd := flag.NewFlagSet(cmdName, flag.ExitOnError)
	cmd.StringVar(&logLVL, "loglvl", defaultLogLvl, "set logging level: 'debug', 'info', 'warn', 'error'")
	cmd.StringVar(&root, "root", defaultRoot, "set project root the asset paths are relative to")
	cmd.StringVar(&configPath, "config", "", "set YAML file overriding the built-in asset plan")
	cmd.StringVar(&metricsFile, "metrics-file", "", "set path to write generation metrics in textfile format")
	if cmdName == watchCmd {
		cmd.DurationVar(&debounce, "debounce", internal.DefaultDebounce, "set delay before regenerating after a change")
	}
	if cmdName == publishCmd {
		cmd.StringVar(&bucket, "bucket", "", "set S3 bucket to publish to")
		cmd.StringVar(&region, "region", "", "set AWS region of the bucket")
		cmd.StringVar(&prefix, "prefix", "", "set key prefix inside the bucket")
	}

	if err := cmd.Parse(args); err != nil {
		fmt.Printf("playassets: error parsing arguments: '%v'\n", err)
		os.Exit(1)
	}

	lvl, lvlErr := internal.ParseLevel(logLVL)
	if lvlErr != nil {
		fmt.Printf("playassets: error parsing log level: '%v'\n", lvlErr)
		os.Exit(1)
	}

	stdLog := internal.NewStdLog(internal.WithLevel(lvl))
	plan, err := internal.LoadPlan(configPath)
	if err != nil {
		stdLog.Fatal("%v", err)
	}
	metrics := internal.NewMetrics()
	generator := internal.NewGenerator(*plan, root, internal.NewFontResolver(plan.Fonts, stdLog), metrics, stdLog)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cmdName {
	case generateCmd:
		err = generate(os.Stdout, generator, metrics, metricsFile, stdLog)
	case watchCmd:
		err = watch(ctx, generator, metrics, metricsFile, debounce, stdLog)
	case publishCmd:
		err = publish(ctx, generator, bucket, region, prefix, stdLog)
	}
	if err != nil {
		stdLog.Fatal("%v", err)
	}
}

// generate runs the plan once and reports the target directory on out.
func generate(out io.Writer, generator *internal.Generator, metrics *internal.Metrics, metricsFile string, stdLog *internal.StdLog) error {
	report, err := generator.Run()
	if metricsFile != "" {
		if mErr := metrics.WriteTextfile(metricsFile); mErr != nil {
			stdLog.Error("write metrics error: %v", mErr)
		}
	}
	if err != nil {
		return err
	}
	for _, asset := range report.Assets {
		stdLog.Debug("%s %dx%d", asset.Path, asset.Width, asset.Height)
	}

	target, err := filepath.Abs(report.TargetDir)
	if err != nil {
		target = report.TargetDir
	}
	_, err = fmt.Fprintf(out, "Generated assets in: %s\n", target)
	return err
}

func watch(ctx context.Context, generator *internal.Generator, metrics *internal.Metrics, metricsFile string, debounce time.Duration, stdLog *internal.StdLog) error {
	regenerate := func() error {
		return generate(os.Stdout, generator, metrics, metricsFile, stdLog)
	}
	if err := regenerate(); err != nil {
		stdLog.Error("initial generation failed: %v", err)
	}

	sw, err := internal.NewSourceWatcher(generator.SourcePaths(), debounce, regenerate, stdLog)
	if err != nil {
		return err
	}
	err = sw.Run(ctx)
	stdLog.Info("Watcher stopped")
	return err
}

func publish(ctx context.Context, generator *internal.Generator, bucket, region, prefix string, stdLog *internal.StdLog) error {
	if bucket == "" || region == "" {
		return fmt.Errorf("publish: -bucket and -region are required")
	}
	publisher, err := internal.NewS3Publisher(bucket, region, prefix, stdLog)
	if err != nil {
		return err
	}
	keys, err := publisher.Publish(ctx, generator.TargetDir())
	if err != nil {
		return err
	}
	stdLog.Info("Published %d files to s3://%s", len(keys), bucket)
	return nil
}
