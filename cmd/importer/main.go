package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"assistmenow/internal/config"
	"assistmenow/internal/db"
	"assistmenow/internal/importer"
	"assistmenow/internal/logging"
	"assistmenow/internal/repository/recipient"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	filePath  string
	createdBy string
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "importer --file recipients.csv",
		Short: "Import recipients from a CSV file into Postgres",
		Long: `Import recipients from a CSV file into Postgres.

Expected header columns: id, firstName, lastName, email, phone, address.street,
address.city, address.state, address.postalCode, address.country, notes, photoUrl.
Rows with an id are upserted; rows without one get a fresh id.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.filePath, "file", "", "path to recipient CSV export")
	cmd.Flags().StringVar(&opts.createdBy, "created-by", "system", "user id recorded as createdBy")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer pool.Close()

	f, err := os.Open(opts.filePath)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, recipient.NewPostgres(pool, logger), opts.createdBy)

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	logger.Info("import finished", zap.String("file", opts.filePath), zap.Int("recipients", count))
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d recipients in %s\n", count, time.Since(start).Truncate(time.Millisecond))
	return nil
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
