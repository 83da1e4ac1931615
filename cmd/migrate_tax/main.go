// migrate_tax convierte las facturas guardadas con el campo heredado taxRate
// (solo porcentaje) al par taxType/taxValue.
//
// Uso: go run ./cmd/migrate_tax [--dry-run] [--storage clarity.db]
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/fk219/Send-My-Invoice/internal/application/billing"
	"github.com/fk219/Send-My-Invoice/internal/infrastructure/kv"
	"github.com/fk219/Send-My-Invoice/internal/infrastructure/sqlite"
	"github.com/fk219/Send-My-Invoice/pkg/config"
	"github.com/fk219/Send-My-Invoice/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "migrate_tax",
		Usage: "migra taxRate heredado a taxType/taxValue",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "dry-run", Usage: "solo lista las facturas afectadas"},
			&cli.StringFlag{Name: "storage", Usage: "ruta del archivo SQLite (por defecto STORAGE_PATH)"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	if p := c.String("storage"); p != "" {
		cfg.Storage.Path = p
	}
	if cfg.Storage.InMemory() {
		return fmt.Errorf("la migración requiere un archivo SQLite (STORAGE_PATH)")
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level})

	db, err := sqlite.Open(c.Context, cfg.Storage)
	if err != nil {
		return fmt.Errorf("abrir SQLite: %w", err)
	}
	defer db.Close()

	invoices := kv.NewInvoiceRepository(sqlite.NewKVStore(db))
	dryRun := c.Bool("dry-run")
	res, err := billing.NewLegacyTaxMigration(invoices, log).Run(c.Context, dryRun)
	if err != nil {
		return err
	}

	log.Info().
		Bool("dry_run", dryRun).
		Int("scanned", res.Scanned).
		Int("migrated", len(res.Migrated)).
		Strs("ids", res.Migrated).
		Msg("migración de impuestos finalizada")
	return nil
}
