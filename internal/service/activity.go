package service

import (
	"context"
	"log/slog"
	"time"

	"imagevault/internal/model"
	"imagevault/internal/repository"
)

type clientIPKey struct{}

// WithClientIP stores the caller's address so activity entries can record it.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, clientIPKey{}, ip)
}

func clientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}

// recordActivity appends to the audit log. A failed write is logged and
// never fails the operation being audited.
func recordActivity(ctx context.Context, repo repository.Repository, userID int64, action, details string) {
	entry := &model.ActivityLog{
		UserID:    &userID,
		Action:    action,
		Details:   details,
		IPAddress: clientIP(ctx),
		Timestamp: time.Now().UTC(),
	}
	if err := repo.AddActivity(ctx, entry); err != nil {
		slog.Warn("Failed to record activity", "action", action, "user_id", userID, "error", err)
	}
}
