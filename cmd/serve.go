package main

import (
	"context"
	"customers/internal/api"
	"customers/internal/api/handler/v1handler"
	"customers/internal/config"
	"customers/internal/customers"
	"customers/internal/worker"
	"customers/pkg/emailgateway"
	"customers/pkg/emailgateway/ses"
	"customers/pkg/emailgateway/smtp"
	"customers/pkg/logger"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newEmailGateway builds the gateway selected by cfg.Email.Provider.
func newEmailGateway(ctx context.Context, cfg *config.Config) emailgateway.Gateway {
	switch cfg.Email.Provider {
	case config.EmailProviderSES:
		gateway, err := ses.New(ctx, ses.Options{
			Region:          cfg.Email.SES.Region,
			AccessKeyID:     cfg.Email.SES.AccessKeyID,
			SecretAccessKey: cfg.Email.SES.SecretAccessKey,
			From:            cfg.Email.From,
		})
		if err != nil {
			logger.Fatal(ctx, "could not create ses email gateway", zap.Error(err))
		}

		return gateway
	default:
		return smtp.New(smtp.Options{
			Host:     cfg.Email.SMTP.Host,
			Port:     cfg.Email.SMTP.Port,
			Username: cfg.Email.SMTP.Username,
			Password: cfg.Email.SMTP.Password,
			From:     cfg.Email.From,
		})
	}
}

func setupServer(ctx context.Context, cfg *config.Config, service customers.Service) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{
		Deps: v1handler.Deps{Customers: service},
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if err := strg.Ping(ctx); err != nil {
				logger.Fatal(ctx, "could not reach postgres", zap.Error(err))
			}

			riverClient, err := worker.Start(ctx, strg.Pool, worker.Deps{
				Gateway: newEmailGateway(ctx, cfg),
			}, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, customers.New(strg, customers.Options{}))

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
