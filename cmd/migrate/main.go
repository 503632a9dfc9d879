package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"resort-booking/internal/domain/staff"
	"resort-booking/internal/infra/db"
	"resort-booking/internal/infra/pgquery"
	"resort-booking/internal/infra/uow"
	"resort-booking/internal/pkg/config"
	"resort-booking/internal/pkg/password"
	"resort-booking/internal/usecase/shared"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const migrationsDir = "migrations"

func main() {
	_ = godotenv.Load()

	cmd := flag.String("cmd", "up", "command: up|status|seed-staff")
	dir := flag.String("dir", migrationsDir, "migrations directory")
	atlasBin := flag.String("atlas", "atlas", "atlas binary")
	email := flag.String("email", "", "staff email (seed-staff)")
	name := flag.String("name", "", "staff display name (seed-staff)")
	role := flag.String("role", string(staff.RoleAdmin), "staff role (seed-staff)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		fail(logger, "failed to read database settings", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	switch *cmd {
	case "up":
		if err := migrateUp(ctx, logger, *atlasBin, *dir, dbCfg); err != nil {
			fail(logger, "migration failed", err)
		}
	case "status":
		if err := migrateStatus(ctx, logger, *atlasBin, *dir, dbCfg); err != nil {
			fail(logger, "status failed", err)
		}
	case "seed-staff":
		// The password comes from the environment so it stays out of shell history.
		if err := seedStaff(ctx, dbCfg, *email, *name, *role, os.Getenv("STAFF_PASSWORD")); err != nil {
			fail(logger, "seeding staff failed", err)
		}
		logger.Info("staff account created", "email", *email, "role", *role)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", *cmd)
		os.Exit(2)
	}
}

func fail(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}

func atlasClient(atlasBin, dir string) (*atlasexec.Client, func(), error) {
	wd, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(dir)))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to prepare working directory: %w", err)
	}
	client, err := atlasexec.NewClient(wd.Path(), atlasBin)
	if err != nil {
		_ = wd.Close()
		return nil, nil, fmt.Errorf("failed to start atlas: %w", err)
	}
	return client, func() { _ = wd.Close() }, nil
}

func migrateUp(ctx context.Context, logger *slog.Logger, atlasBin, dir string, cfg config.DBConfig) error {
	client, closeFn, err := atlasClient(atlasBin, dir)
	if err != nil {
		return err
	}
	defer closeFn()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{URL: cfg.BuildDSN()})
	if err != nil {
		return err
	}
	logger.Info("migrations applied", "count", len(res.Applied), "current", res.Current, "target", res.Target)
	return nil
}

func migrateStatus(ctx context.Context, logger *slog.Logger, atlasBin, dir string, cfg config.DBConfig) error {
	client, closeFn, err := atlasClient(atlasBin, dir)
	if err != nil {
		return err
	}
	defer closeFn()

	res, err := client.MigrateStatus(ctx, &atlasexec.MigrateStatusParams{URL: cfg.BuildDSN()})
	if err != nil {
		return err
	}
	logger.Info("migration status", "current", res.Current, "next", res.Next, "pending", len(res.Pending))
	return nil
}

func seedStaff(ctx context.Context, cfg config.DBConfig, emailStr, name, roleStr, plain string) error {
	email, err := staff.NewEmail(emailStr)
	if err != nil {
		return err
	}
	role, err := staff.NewRole(roleStr)
	if err != nil {
		return err
	}
	hash, err := password.HashPassword(plain)
	if err != nil {
		return err
	}
	member, err := staff.NewStaff(email, name, hash, role)
	if err != nil {
		return err
	}

	pool, cleanup, err := db.Connect(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	work := uow.NewPostgresUoW(pool, pgquery.New(), time.UTC)
	return work.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Staff().Create(ctx, tx.DB(), member)
	})
}
