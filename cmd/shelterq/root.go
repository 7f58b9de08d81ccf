package main

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"shelter-outcomes/internal/adapters/storage"
	"shelter-outcomes/internal/domain/outcomes"
	"shelter-outcomes/internal/platform/config"
	"shelter-outcomes/internal/platform/logger"

	"github.com/spf13/cobra"
)

// globalOptions: flags persistentes; los defaults salen del entorno (config.Load).
type globalOptions struct {
	source    string
	table     string
	viewsFile string
	logLevel  string
}

func newRootCmd() *cobra.Command {
	cfg, err := config.Load()
	if err != nil {
		// Sin entorno válido se sigue con los defaults; --source puede corregirlo.
		cfg, _ = config.LoadFrom(map[string]string{})
	}

	opts := &globalOptions{}
	root := &cobra.Command{
		Use:           "shelterq",
		Short:         "Query animal shelter outcomes",
		Long:          `Loads the shelter outcomes dataset and prints named views, page bundles and metadata as JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.source, "source", cfg.DatasetSource, "dataset source: CSV path, file://, http(s)://, postgres:// or sqlite://")
	pf.StringVar(&opts.table, "table", cfg.DatasetTable, "table name for postgres/sqlite sources")
	pf.StringVar(&opts.viewsFile, "views-file", cfg.ViewsFile, "YAML file with custom view definitions")
	pf.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newViewsCmd(opts, cfg),
		newMetaCmd(opts, cfg),
		newViewCmd(opts, cfg),
		newPageCmd(opts, cfg),
		newImportCmd(opts, cfg),
	)
	return root
}

// newLogger escribe a stderr para no mezclarse con la salida JSON.
func (o *globalOptions) newLogger(cfg config.Config) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(o.logLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    "shelterq",
		Output: os.Stderr,
	})
}

func (o *globalOptions) open(cfg config.Config) (*storage.Handle, error) {
	return storage.Open(o.source, storage.Options{Table: o.table, FetchTimeout: cfg.FetchTimeout})
}

// loadService carga el dataset desde --source y arma el Service.
func (o *globalOptions) loadService(ctx context.Context, cfg config.Config) (*outcomes.Service, error) {
	log := o.newLogger(cfg)

	h, err := o.open(cfg)
	if err != nil {
		return nil, err
	}
	defer h.Close()

	ds, err := outcomes.Load(ctx, h.Source)
	if err != nil {
		return nil, err
	}
	log.Info("dataset loaded", map[string]any{"source": ds.Source, "records": ds.Len()})

	svcOpts := []outcomes.Option{outcomes.WithLogger(log)}
	if o.viewsFile != "" {
		f, err := os.Open(o.viewsFile)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		views, err := outcomes.ParseCustomViews(f)
		if err != nil {
			return nil, err
		}
		svcOpts = append(svcOpts, outcomes.WithCustomViews(views))
	}
	return outcomes.NewService(ds, svcOpts...), nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
