// internal/briefing/briefing.go
package briefing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"neon-defense/internal/config"
)

// Briefing — заголовок и текст перед началом уровня.
type Briefing struct {
	Title string
	Text  string
}

// Provider generates a briefing for a level. Implementations may be slow or fail;
// callers go through Resolve.
type Provider interface {
	Briefing(ctx context.Context, level int) (Briefing, error)
}

// Fallback is the deterministic briefing used whenever no provider answers.
func Fallback(level int) Briefing {
	b := Briefing{
		Title: fmt.Sprintf("Sector %d", level),
		Text:  fmt.Sprintf("Wave %d approaches. Hold the core.", level),
	}
	if level > 0 && level%config.BossInterval == 0 {
		b.Text = fmt.Sprintf("Boss wave %d approaches. Hold the core.", level)
	}
	return b
}

type result struct {
	briefing Briefing
	err      error
}

// Resolve asks p for a briefing within timeout. Errors, panics, empty titles
// and timeouts all resolve to Fallback(level); nothing propagates to the caller.
func Resolve(ctx context.Context, p Provider, level int, timeout time.Duration) Briefing {
	if p == nil {
		return Fallback(level)
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	done := make(chan result, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- result{err: fmt.Errorf("briefing provider panic: %v", r)}
			}
		}()
		b, err := p.Briefing(ctx, level)
		done <- result{briefing: b, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			slog.Warn("briefing provider failed, using fallback", "level", level, "error", res.err)
			return Fallback(level)
		}
		if res.briefing.Title == "" {
			slog.Warn("briefing provider returned empty title, using fallback", "level", level)
			return Fallback(level)
		}
		return res.briefing
	case <-ctx.Done():
		slog.Warn("briefing provider timed out, using fallback", "level", level, "error", ctx.Err())
		return Fallback(level)
	}
}
