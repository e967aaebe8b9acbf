// internal/state/env.go
package state

import (
	"log/slog"
	"time"

	"neon-defense/internal/app"
	"neon-defense/internal/briefing"
	"neon-defense/internal/defs"
	"neon-defense/internal/store"
	"neon-defense/internal/ui"
)

const topRunsShown = 5

// RunHistory is the part of the run store the screens need.
type RunHistory interface {
	SaveRun(run *store.Run) error
	TopRuns(limit int) ([]store.Run, error)
}

// Env — общие зависимости экранов. History и Briefing могут быть nil.
type Env struct {
	Towers          *defs.TowerLibrary
	Settings        app.Settings
	History         RunHistory
	Briefing        briefing.Provider
	BriefingTimeout time.Duration
	Fonts           *ui.Fonts
}

func (e *Env) topRuns() []store.Run {
	if e.History == nil {
		return nil
	}
	runs, err := e.History.TopRuns(topRunsShown)
	if err != nil {
		slog.Warn("loading run history failed", "error", err)
		return nil
	}
	return runs
}

func (e *Env) saveRun(run *store.Run) {
	if e.History == nil {
		return
	}
	if err := e.History.SaveRun(run); err != nil {
		slog.Warn("saving run failed", "error", err)
		return
	}
	slog.Info("run recorded", "id", run.ID, "outcome", run.Outcome, "level", run.Level, "score", run.Score)
}
