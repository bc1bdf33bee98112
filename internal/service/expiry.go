package service

import (
	"context"
	"log/slog"
	"time"
)

// RunExpiryLoop purges expired sessions every interval until ctx is done.
func RunExpiryLoop(ctx context.Context, svc *SessionService, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed, err := svc.PurgeExpired(ctx)
			if err != nil {
				slog.Error("session purge failed", "error", err)
				continue
			}
			if removed > 0 {
				slog.Info("expired sessions purged", "count", removed)
			}
		case <-ctx.Done():
			return
		}
	}
}
