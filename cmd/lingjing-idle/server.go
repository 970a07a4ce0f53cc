package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ericogr/lingjing-idle/internal/constants"
	"github.com/ericogr/lingjing-idle/internal/logging"
)

const shutdownTimeout = 10 * time.Second

// serve runs the HTTP server until ctx is canceled, then drains in-flight
// requests.
func serve(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		displayAddr := addr
		if len(addr) > 0 && addr[0] == ':' {
			displayAddr = "http://localhost" + addr
		}
		logging.Info("Server started", logging.Fields{constants.LogFieldAddr: displayAddr})
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
