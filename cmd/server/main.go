package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/abhishk002/mock-employee-service/internal/adapters/generator/fake"
	"github.com/abhishk002/mock-employee-service/internal/adapters/repository/memory"
	"github.com/abhishk002/mock-employee-service/internal/core/employee"
	"github.com/abhishk002/mock-employee-service/internal/platform/config"
	"github.com/abhishk002/mock-employee-service/internal/platform/logger"
	"github.com/abhishk002/mock-employee-service/internal/platform/server"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "assets/local.yaml"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		configPath string
		listenAddr string
	)

	cmd := &cobra.Command{
		Use:           "mock-employee-server",
		Short:         "In-memory mock employee service over gRPC",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(effectiveConfigPath(configPath))
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "failed to load config: %v\n", err)
				return err
			}
			if listenAddr != "" {
				cfg.Server.ListenAddr = listenAddr
			}

			log, err := logger.New(cfg.Log, cmd.ErrOrStderr())
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "failed to build logger: %v\n", err)
				return err
			}

			if err := run(log.WithContext(cmd.Context()), cfg, log); err != nil {
				log.Error().Err(err).Msg("server stopped with error")
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file (defaults to CONFIG_PATH env or "+defaultConfigPath+")")
	cmd.Flags().StringVar(&listenAddr, "listen", "", "override server.listen_addr")

	return cmd
}

func effectiveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return defaultConfigPath
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	generator := fake.New(cfg.Seed.RandomSeed)
	employeeRepo := memory.NewEmployeeRepository()
	employeeSvc := employee.NewService(
		employeeRepo,
		generator,
		nil,
		memory.NewTransactionManager(employeeRepo),
		employee.WithEmailDomain(cfg.Employee.EmailDomain),
	)

	for _, in := range generator.Inputs(cfg.Seed.Count) {
		if _, err := employeeSvc.CreateEmployee(ctx, in); err != nil {
			return fmt.Errorf("seed employees: %w", err)
		}
	}
	log.Info().Int("count", employeeRepo.Len()).Msg("seeded employees")

	grpcServer := server.New(cfg.Server.ListenAddr, employeeSvc, server.Options{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Logger:          log,
	})

	return grpcServer.Run(ctx)
}
