package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/timerod/timerod-backend-go/internal/domain/auth"
)

// RefreshTokenPruner deletes refresh tokens that can no longer be used.
type RefreshTokenPruner struct {
	tokens auth.RefreshTokenRepository
	now    func() time.Time
}

func NewRefreshTokenPruner(tokens auth.RefreshTokenRepository) *RefreshTokenPruner {
	return &RefreshTokenPruner{tokens: tokens, now: time.Now}
}

// Prune is a Job function.
func (p *RefreshTokenPruner) Prune(ctx context.Context) error {
	deleted, err := p.tokens.DeleteStale(ctx, p.now())
	if err != nil {
		return fmt.Errorf("prune refresh tokens: %w", err)
	}
	if deleted > 0 {
		slog.Info("Pruned refresh tokens", "count", deleted)
	}
	return nil
}
