package main

import (
	"fmt"

	"shelter-outcomes/internal/adapters/storage"
	"shelter-outcomes/internal/domain/outcomes"
	"shelter-outcomes/internal/platform/config"

	"github.com/spf13/cobra"
)

func newImportCmd(opts *globalOptions, cfg config.Config) *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "import --to <uri>",
		Short: "Copy records from --source into a postgres or sqlite table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			log := opts.newLogger(cfg)

			src, err := opts.open(cfg)
			if err != nil {
				return err
			}
			defer src.Close()

			recs, err := src.Source.ReadRecords(ctx)
			if err != nil {
				return err
			}
			// Se valida antes de escribir: un CSV inválido no llega a la tabla.
			ds, err := outcomes.NewDataset(src.Source.Name(), recs)
			if err != nil {
				return err
			}

			dst, err := storage.Open(to, storage.Options{Table: opts.table, FetchTimeout: cfg.FetchTimeout})
			if err != nil {
				return err
			}
			defer dst.Close()

			imp, ok := dst.Importer()
			if !ok {
				return fmt.Errorf("destination %q (%s) does not accept imports", to, dst.Kind)
			}
			if err := imp.Import(ctx, recs); err != nil {
				return fmt.Errorf("import into %s: %w", dst.Source.Name(), err)
			}

			log.Info("import done", map[string]any{"from": ds.Source, "to": dst.Source.Name(), "records": len(recs)})
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "imported %d records into %s\n", len(recs), dst.Source.Name())
			return err
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "destination URI (postgres:// or sqlite://)")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
