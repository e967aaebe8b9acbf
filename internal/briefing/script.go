// internal/briefing/script.go
package briefing

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/dop251/goja"

	"neon-defense/internal/config"
)

// ErrNoFunction is returned when the script does not define briefing(level).
var ErrNoFunction = errors.New("briefing(level) function is not defined")

const scriptFunction = "briefing"

// ScriptProvider runs a user JS script in a goja runtime. The script must
// define briefing(level) returning {title, briefing}.
type ScriptProvider struct {
	runtime *goja.Runtime
	fn      goja.Callable
	mu      sync.Mutex
}

// LoadScriptProvider reads the script from path.
func LoadScriptProvider(path string) (*ScriptProvider, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading briefing script %s: %w", path, err)
	}
	p, err := NewScriptProvider(string(src))
	if err != nil {
		return nil, fmt.Errorf("briefing script %s: %w", path, err)
	}
	return p, nil
}

// NewScriptProvider compiles and runs src once, then looks up briefing().
func NewScriptProvider(src string) (*ScriptProvider, error) {
	rt := goja.New()
	rt.Set("BOSS_INTERVAL", config.BossInterval)
	rt.Set("MAX_LEVEL", config.MaxLevel)
	// Скрипту не нужны загрузка модулей и eval
	rt.Set("require", goja.Undefined())
	rt.Set("eval", goja.Undefined())
	rt.Set("Function", goja.Undefined())

	if _, err := rt.RunString(src); err != nil {
		return nil, fmt.Errorf("script execution error: %w", err)
	}

	v := rt.Get(scriptFunction)
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil, ErrNoFunction
	}
	fn, ok := goja.AssertFunction(v)
	if !ok {
		return nil, fmt.Errorf("%s is not a function", scriptFunction)
	}
	return &ScriptProvider{runtime: rt, fn: fn}, nil
}

// Briefing calls briefing(level). Cancelling ctx interrupts a running script.
func (p *ScriptProvider) Briefing(ctx context.Context, level int) (Briefing, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.runtime.ClearInterrupt()
	stop := context.AfterFunc(ctx, func() {
		p.runtime.Interrupt("briefing cancelled")
	})
	defer stop()

	out, err := p.fn(goja.Undefined(), p.runtime.ToValue(level))
	if err != nil {
		return Briefing{}, fmt.Errorf("briefing(%d) error: %w", level, err)
	}
	if out == nil || goja.IsUndefined(out) || goja.IsNull(out) {
		return Briefing{}, fmt.Errorf("briefing(%d) returned nothing", level)
	}

	obj := out.ToObject(p.runtime)
	return Briefing{
		Title: stringField(obj, "title"),
		Text:  stringField(obj, "briefing"),
	}, nil
}

func stringField(obj *goja.Object, name string) string {
	v := obj.Get(name)
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return ""
	}
	return v.String()
}
