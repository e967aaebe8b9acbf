// cmd/game/main.go
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"

	"neon-defense/internal/app"
	"neon-defense/internal/briefing"
	"neon-defense/internal/config"
	"neon-defense/internal/defs"
	"neon-defense/internal/state"
	"neon-defense/internal/store"
	"neon-defense/internal/ui"
)

// ConfigPath — путь к конфигу по умолчанию; NEON_DEFENSE_CONFIG переопределяет.
const ConfigPath = "config.yaml"

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := ConfigPath
	if p := os.Getenv("NEON_DEFENSE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))
	slog.Info("config loaded", "path", cfgPath, "towers_file", cfg.TowersFile, "history_db", cfg.HistoryDB, "briefing_script", cfg.BriefingScript)

	if cfg.PprofAddr != "" {
		go func() {
			slog.Info("pprof listening", "addr", cfg.PprofAddr)
			if err := http.ListenAndServe(cfg.PprofAddr, nil); err != nil {
				slog.Warn("pprof server stopped", "error", err)
			}
		}()
	}

	env, closeEnv, err := loadEnv(cfg)
	if err != nil {
		return err
	}
	defer closeEnv()

	sm := state.NewStateMachine()
	if cfg.StartFromGame {
		sm.SetState(state.NewGameState(sm, env))
	} else {
		sm.SetState(state.NewMenuState(sm, env))
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(cfg.WindowTitle)
	if err := ebiten.RunGame(&AppGame{stateMachine: sm, lastUpdateTime: time.Now()}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// loadEnv параллельно грузит определения башен, историю забегов, скрипт брифинга и шрифты.
func loadEnv(cfg config.App) (*state.Env, func(), error) {
	settings := app.DefaultSettings()
	settings.StartingGold = cfg.StartingGold
	settings.StartingLives = cfg.StartingLives

	env := &state.Env{
		Settings:        settings,
		BriefingTimeout: time.Duration(cfg.BriefingTimeoutMs) * time.Millisecond,
	}

	var (
		g        errgroup.Group
		db       *store.SQLiteDB
		provider *briefing.ScriptProvider
	)
	g.Go(func() error {
		lib, err := defs.LoadTowerDefinitions(cfg.TowersFile)
		if err != nil {
			return fmt.Errorf("loading tower definitions: %w", err)
		}
		env.Towers = lib
		return nil
	})
	g.Go(func() error {
		if cfg.HistoryDB == "" {
			return nil
		}
		var err error
		db, err = store.Open(cfg.HistoryDB)
		if err != nil {
			return fmt.Errorf("opening run history: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if cfg.BriefingScript == "" {
			return nil
		}
		p, err := briefing.LoadScriptProvider(cfg.BriefingScript)
		if err != nil {
			// Брифинг необязателен: без скрипта работает Fallback.
			slog.Warn("briefing script disabled", "path", cfg.BriefingScript, "error", err)
			return nil
		}
		provider = p
		return nil
	})
	g.Go(func() error {
		env.Fonts = ui.LoadFonts()
		return nil
	})

	if err := g.Wait(); err != nil {
		if db != nil {
			db.Close()
		}
		return nil, nil, err
	}

	if db != nil {
		env.History = db
	}
	if provider != nil {
		env.Briefing = provider
	}
	slog.Info("environment ready", "towers", env.Towers.Len(), "history", db != nil, "briefing_script", provider != nil)

	closeEnv := func() {
		if db == nil {
			return
		}
		if err := db.Close(); err != nil {
			slog.Warn("closing run history", "error", err)
		}
	}
	return env, closeEnv, nil
}
