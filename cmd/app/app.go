package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vietanh2810/stockboard-api/internal/api"
	"github.com/vietanh2810/stockboard-api/internal/config"
	"github.com/vietanh2810/stockboard-api/internal/db"
	"github.com/vietanh2810/stockboard-api/internal/logger"
	"github.com/vietanh2810/stockboard-api/internal/repository"
	"github.com/vietanh2810/stockboard-api/internal/repository/dao"
	"github.com/vietanh2810/stockboard-api/internal/service"
)

const (
	defaultConfigPath = "./cmd/app/config.yml"
	shutdownTimeout   = 10 * time.Second
)

var configPath string

// NewRootCommand builds the CLI. Running it without a subcommand starts the server.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "stockboard-api",
		Short:         "HTTP API over stakes and stocks",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Start(cmd.Context())
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to the YAML config file")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return Start(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Create missing tables and seed the configured credentials",
			RunE: func(cmd *cobra.Command, args []string) error {
				return Migrate(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "hash-password [password]",
			Short: "Print a bcrypt hash for use in auth.users",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				hash, err := service.HashPassword(args[0])
				if err != nil {
					return fmt.Errorf("failed to hash password -> %w", err)
				}
				cmd.Println(hash)

				return nil
			},
		},
	)

	return root
}

func Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	conf, postgresDB, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer closeDB(postgresDB)

	s := api.NewServer(conf, postgresDB)

	addr := ":" + s.Config.API.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Router,
	}

	errCh := make(chan error, 1)
	go func() {
		zap.L().Info(fmt.Sprintf("starting server at %v", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err = <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start the server -> %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zap.L().Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down the server -> %w", err)
	}

	return nil
}

func Migrate(ctx context.Context) error {
	_, postgresDB, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer closeDB(postgresDB)

	zap.L().Info("tables and credentials are in place")

	return nil
}

// bootstrap loads config and logger, opens the database, creates missing tables and seeds credentials.
func bootstrap(ctx context.Context) (*config.AppConfig, *gorm.DB, error) {
	conf, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(postgresDB); err != nil {
		closeDB(postgresDB)
		return nil, nil, fmt.Errorf("failed to initialize tables -> %w", err)
	}

	users := service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(postgresDB)))
	if err = users.Seed(ctx, conf.Auth.DomainUsers()); err != nil {
		closeDB(postgresDB)
		return nil, nil, fmt.Errorf("failed to seed credentials -> %w", err)
	}

	return conf, postgresDB, nil
}

func closeDB(postgresDB *gorm.DB) {
	sqlDB, err := postgresDB.DB()
	if err != nil {
		return
	}
	if err = sqlDB.Close(); err != nil {
		zap.L().Warn("failed to close database", zap.Error(err))
	}
}
