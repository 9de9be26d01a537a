package main

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/fx"

	cliAdapter "addressbook/internal/adapters/cli"
	contactHandler "addressbook/internal/adapters/cli/contact"
	"addressbook/internal/adapters/cli/response"
	"addressbook/internal/adapters/cli/system"
	contactRepo "addressbook/internal/adapters/repository/memory"
	validatorAdapter "addressbook/internal/adapters/validator"
	"addressbook/internal/config"
	"addressbook/internal/core/ports"
	addressbookUseCase "addressbook/internal/core/usecase/addressbook"
	"addressbook/internal/platform/collation"
	"addressbook/internal/platform/logger"
	"addressbook/internal/platform/metrics"
	"addressbook/internal/platform/validator"
)

func main() {
	fx.New(appModule, fx.NopLogger).Run()
}

var appModule = fx.Options(
	// Platform
	fx.Provide(config.LoadAddressBook),
	fx.Provide(func(cfg *config.AddressBookConfig) logger.Config {
		return cfg.LoggerConfig()
	}),
	fx.Provide(logger.NewZapLogger),
	fx.Provide(validatorAdapter.NewPlaygroundAdapter),
	fx.Provide(metrics.NewProvider),
	fx.Provide(fx.Annotate(
		func(cfg *config.AddressBookConfig) (*collation.Collator, error) {
			return collation.New(cfg.Book.Locale)
		},
		fx.As(new(addressbookUseCase.Collator)),
	)),

	// Shell
	fx.Provide(func(cfg *config.AddressBookConfig) *response.Renderer {
		return response.NewRenderer(cfg.Shell.Table && isatty.IsTerminal(os.Stdout.Fd()))
	}),
	fx.Provide(contactHandler.NewHandler),
	fx.Provide(system.NewHandler),
	fx.Provide(func(log logger.Logger, metrics *metrics.Provider, contacts *contactHandler.Handler, sys *system.Handler) cliAdapter.RouterDependencies {
		return cliAdapter.RouterDependencies{
			Logger:          log,
			MetricsProvider: metrics,
			ContactHandler:  contacts,
			SystemHandler:   sys,
		}
	}),
	fx.Provide(cliAdapter.NewRouter),
	fx.Provide(cliAdapter.NewShell),

	// Domain
	fx.Provide(fx.Annotate(contactRepo.NewRepository, fx.As(new(ports.ContactRepository)))),
	fx.Provide(fx.Annotate(addressbookUseCase.NewUsecase, fx.As(new(contactHandler.Manager)))),

	// Lifecycle Hooks
	fx.Invoke(func(cfg *config.AddressBookConfig, v validator.Validator) error {
		return v.Validate(cfg)
	}),
	fx.Invoke(func(lc fx.Lifecycle, log logger.Logger) {
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return log.Sync()
			},
		})
	}),
	fx.Invoke(func(lc fx.Lifecycle, cfg *config.AddressBookConfig, log logger.Logger, contacts *contactHandler.Handler) {
		if cfg.Book.SeedFile == "" {
			return
		}
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				seedLogger := log.With(logger.String("seed_file", cfg.Book.SeedFile))

				imported, err := contacts.ImportFile(logger.WithLogger(ctx, seedLogger), cfg.Book.SeedFile, os.Stderr)
				if err != nil {
					seedLogger.Warn("Seed file not fully imported", logger.Int("imported", imported), logger.Error(err))
					return nil
				}
				seedLogger.Info("Seed file imported", logger.Int("imported", imported))
				return nil
			},
		})
	}),
	fx.Invoke(func(lc fx.Lifecycle, shell *cliAdapter.Shell, shutdowner fx.Shutdowner) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := shell.Start(ctx); err != nil {
					return err
				}
				go func() {
					<-shell.Done()
					_ = shutdowner.Shutdown()
				}()
				return nil
			},
			OnStop: shell.Stop,
		})
	}),
)
