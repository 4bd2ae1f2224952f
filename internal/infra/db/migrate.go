package db

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"booking-scheduler/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
)

// Migrate applies pending versioned migrations from dir with the atlas CLI,
// which must be on PATH. dir carries an atlas.sum integrity file.
func Migrate(ctx context.Context, cfg config.DBConfig, dir string, logger *slog.Logger) error {
	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return fmt.Errorf("failed to load migrations from %s: %w", dir, err)
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), "atlas")
	if err != nil {
		return fmt.Errorf("failed to initialize atlas client: %w", err)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    cfg.BuildDSN(),
		DirURL: "file://migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	logger.Info("migrations applied",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target)
	return nil
}
