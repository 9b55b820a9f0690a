package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hupe1980/hvgo"
	"github.com/hupe1980/hvgo/blobstore"
	"github.com/hupe1980/hvgo/blobstore/minio"
	"github.com/hupe1980/hvgo/blobstore/s3"
	"github.com/hupe1980/hvgo/internal/config"
	"github.com/hupe1980/hvgo/metrics/prom"
	"github.com/hupe1980/hvgo/model"
	"github.com/hupe1980/hvgo/resource"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

// app is the state shared by all subcommands of one invocation.
type app struct {
	configPath  string
	ref         []float64
	storeKind   string
	root        string
	bucket      string
	prefix      string
	endpoint    string
	region      string
	out         string
	metricsFile string
	logLevel    string
	logFormat   string
	jsonOut     bool

	cfg      *config.Config
	runID    string
	logger   *hvgo.Logger
	registry *prometheus.Registry
	rc       *resource.Controller
	store    blobstore.BlobStore
	engine   *hvgo.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "hvwfg",
		Short:        "Exact hypervolumes of Pareto fronts",
		Long:         `hvwfg reads fronts in WFG text format (optionally gzip, zstd or lz4 compressed) from a local directory, S3 or MinIO.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.teardown()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	pf.Float64SliceVarP(&a.ref, "ref", "r", nil, "reference point (defaults to the origin)")
	pf.StringVar(&a.storeKind, "store", "", "front source: local, s3 or minio")
	pf.StringVar(&a.root, "root", "", "root directory of the local store")
	pf.StringVar(&a.bucket, "bucket", "", "bucket of the s3 or minio store")
	pf.StringVar(&a.prefix, "prefix", "", "key prefix inside the bucket")
	pf.StringVar(&a.endpoint, "endpoint", "", "custom s3 or minio endpoint")
	pf.StringVar(&a.region, "region", "", "s3 region")
	pf.StringVarP(&a.out, "out", "o", "", "also store the output under this name")
	pf.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "", "text or json")
	pf.BoolVar(&a.jsonOut, "json", false, "print JSON instead of text")

	root.AddCommand(newHVCmd(a), newDecomposeCmd(a), newParetoCmd(a))
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Logging.Level)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewTextHandler(cmd.ErrOrStderr(), handlerOpts)
	if cfg.Logging.Format == "json" {
		handler = slog.NewJSONHandler(cmd.ErrOrStderr(), handlerOpts)
	}
	a.runID = uuid.NewString()
	a.logger = hvgo.NewLogger(handler).WithRunID(a.runID)

	a.rc = resource.NewController(resource.Config{
		MemoryLimitBytes:   cfg.Resources.MemoryLimitBytes,
		MaxLoaders:         int64(cfg.Resources.MaxLoaders),
		IOLimitBytesPerSec: int64(cfg.Resources.IOLimitBytesPerSec),
	})

	a.store, err = openStore(cmd.Context(), cfg.Store)
	if err != nil {
		return err
	}

	a.registry = prometheus.NewRegistry()
	opts := []hvgo.Option{
		hvgo.WithLogger(a.logger),
		hvgo.WithMetricsCollector(prom.NewCollector(a.registry)),
		hvgo.WithResourceController(a.rc),
		hvgo.WithMaxRectangles(cfg.Engine.MaxRectangles),
	}
	if cfg.Engine.InitialRectangles > 0 {
		opts = append(opts, hvgo.WithInitialRectangles(cfg.Engine.InitialRectangles))
	}
	a.engine = hvgo.New(opts...)

	a.logger.Debug("hvwfg started", "store", cfg.Store.Kind, "command", cmd.Name())
	return nil
}

// applyFlags lets explicitly set flags win over file and environment.
func (a *app) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("ref") {
		cfg.Reference = a.ref
	}
	if changed("store") {
		cfg.Store.Kind = a.storeKind
	}
	if changed("root") {
		cfg.Store.Root = a.root
	}
	if changed("bucket") {
		cfg.Store.Bucket = a.bucket
	}
	if changed("prefix") {
		cfg.Store.Prefix = a.prefix
	}
	if changed("endpoint") {
		cfg.Store.Endpoint = a.endpoint
	}
	if changed("region") {
		cfg.Store.Region = a.region
	}
	if changed("metrics-file") {
		cfg.Metrics.File = a.metricsFile
	}
	if changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if changed("log-format") {
		cfg.Logging.Format = a.logFormat
	}
}

func openStore(ctx context.Context, sc config.StoreConfig) (blobstore.BlobStore, error) {
	switch sc.Kind {
	case "s3":
		var opts []s3.Option
		if sc.Prefix != "" {
			opts = append(opts, s3.WithPrefix(sc.Prefix))
		}
		if sc.Region != "" {
			opts = append(opts, s3.WithRegion(sc.Region))
		}
		if sc.Endpoint != "" {
			opts = append(opts, s3.WithEndpoint(sc.Endpoint))
		}
		return s3.New(ctx, sc.Bucket, opts...)
	case "minio":
		return minio.New(minio.Config{
			Endpoint:  sc.Endpoint,
			AccessKey: sc.AccessKey,
			SecretKey: sc.SecretKey,
			Region:    sc.Region,
			Secure:    sc.Secure,
			Bucket:    sc.Bucket,
			Prefix:    sc.Prefix,
		})
	default:
		return blobstore.NewLocalStore(sc.Root), nil
	}
}

func (a *app) reference() model.Reference {
	return model.Reference(a.cfg.Reference)
}

// publish writes data to stdout and, with --out, to the store.
func (a *app) publish(cmd *cobra.Command, data []byte) error {
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		return err
	}
	return a.put(cmd, data)
}

func (a *app) put(cmd *cobra.Command, data []byte) error {
	if a.out == "" {
		return nil
	}
	if err := a.store.Put(cmd.Context(), a.out, data); err != nil {
		return fmt.Errorf("store %s: %w", a.out, err)
	}
	a.logger.Info("output stored", "name", a.out, "bytes", len(data))
	return nil
}

func (a *app) teardown() error {
	if a.cfg == nil || a.cfg.Metrics.File == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.cfg.Metrics.File, a.registry); err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	return nil
}

