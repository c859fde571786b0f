package appmode

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/transport"
)

const shutdownTimeout = 5 * time.Second

// RunServer serves search requests on param.Address until ctx is cancelled.
func RunServer(ctx context.Context, stop context.CancelFunc, param *model.ServerParam, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	srv := transport.NewServer(param.Address, processor.Processor{}, logger)

	// запуск сервера
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", "address", srv.Addr)
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			errCh <- err
			stop()
			return
		}
		logger.Info("server gracefully stopping...")
	}()

	<-ctx.Done()

	// Закрытие всех соединений сервера
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server correctly", "address", param.Address, "error", err)
		return err
	}
	logger.Info("server is closed", "address", param.Address)

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}
