package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Run serves handler until the context is canceled or the listener fails,
// then drains in-flight requests for up to five seconds.
func Run(ctx context.Context, address string, handler http.Handler) error {
	server := &http.Server{
		Addr:    address,
		Handler: handler,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- server.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}
