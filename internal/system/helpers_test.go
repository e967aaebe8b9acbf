package system

import (
	"testing"

	"neon-defense/internal/component"
	"neon-defense/internal/defs"
	"neon-defense/internal/entity"
	"neon-defense/internal/event"
	"neon-defense/internal/types"
	"neon-defense/pkg/route"
)

// sequenceRoller returns the given rolls in order, then repeats the last one.
type sequenceRoller struct {
	rolls []float64
	i     int
}

func (r *sequenceRoller) Float64() float64 {
	if len(r.rolls) == 0 {
		return 0.99
	}
	v := r.rolls[min(r.i, len(r.rolls)-1)]
	r.i++
	return v
}

type testContext struct {
	path        *route.Path
	regenerated []int
}

func (c *testContext) CurrentPath() *route.Path { return c.path }

func (c *testContext) RegeneratePath(level int) {
	c.regenerated = append(c.regenerated, level)
	c.path = route.Generate(level, route.Field{Width: 1200, Height: 800, Margin: 100}, &sequenceRoller{rolls: []float64{0.5}})
}

type recorder struct {
	events []event.Event
}

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) ofType(t event.EventType) []event.Event {
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

type testWorld struct {
	ecs         *entity.ECS
	dispatcher  *event.Dispatcher
	ctx         *testContext
	progression *ProgressionSystem
	resolver    *DamageResolver
	events      *recorder
}

// newTestWorld — прямой маршрут по y=400 от x=0 до x=1200.
func newTestWorld(t *testing.T) *testWorld {
	t.Helper()
	ecs := entity.NewECS()
	ecs.Stats.Gold = 1000
	ecs.Stats.Lives = 20
	dispatcher := event.NewDispatcher()
	events := &recorder{}
	dispatcher.SubscribeAll(events)
	ctx := &testContext{path: route.New(route.Point{X: 0, Y: 400}, route.Point{X: 600, Y: 400}, route.Point{X: 1200, Y: 400})}
	progression := NewProgressionSystem(ecs, ctx, dispatcher)
	return &testWorld{
		ecs:         ecs,
		dispatcher:  dispatcher,
		ctx:         ctx,
		progression: progression,
		resolver:    NewDamageResolver(ecs, progression, dispatcher),
		events:      events,
	}
}

func (w *testWorld) addEnemy(archetype defs.Archetype, hp, progress float64) types.EntityID {
	id := w.ecs.NewEntity()
	p := w.ctx.path.PointAt(progress)
	w.ecs.Positions[id] = &component.Position{X: p.X, Y: p.Y}
	w.ecs.Velocities[id] = &component.Velocity{Speed: 5}
	w.ecs.Healths[id] = &component.Health{Value: hp, Max: hp}
	w.ecs.Enemies[id] = &component.Enemy{Archetype: archetype, Progress: progress, Level: w.ecs.Stats.Level}
	return id
}

func (w *testWorld) addTower(def defs.TowerDefinition, x, y float64, priority defs.TargetingPriority) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Towers[id] = &component.Tower{Config: def, Level: 1, Priority: priority}
	return id
}

func (w *testWorld) addProjectile(target types.EntityID, damage float64, towerType string, x, y float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Velocities[id] = &component.Velocity{}
	w.ecs.Projectiles[id] = &component.Projectile{
		TargetID:     target,
		SourceTypeID: towerType,
		Damage:       damage,
		Speed:        850,
	}
	return id
}

func towerDef(id string) defs.TowerDefinition {
	def, _ := defs.MustDefaultLibrary().Get(id)
	return def
}
