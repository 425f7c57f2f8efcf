package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/fauna"
	"github.com/milk9111/fauna/component"
	"github.com/milk9111/fauna/defs"
	"github.com/milk9111/fauna/ecs"
)

func main() {
	scenario := flag.String("scenario", "scenarios/hunt.tengo", "encounter script to run")
	seed := flag.Int64("seed", 0, "seed for wound rolls (0 = nondeterministic)")
	watch := flag.Bool("watch", false, "rerun the scenario when defs or the script change")
	flag.Parse()

	if err := run(*scenario, *seed, *watch); err != nil {
		log.Fatalf("sim: %v", err)
	}
}

func run(scenario string, seed int64, watch bool) error {
	registry, err := defs.LoadRegistry()
	if err != nil {
		return err
	}
	if err := runScenario(registry, scenario, seed); err != nil {
		return err
	}
	if !watch {
		return nil
	}

	watcher, err := defs.NewWatcher("defs", filepath.Dir(scenario))
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	for {
		select {
		case reload, ok := <-watcher.Reloads:
			if !ok {
				return nil
			}
			if reload.Registry != nil {
				registry = reload.Registry
			}
			log.Printf("sim: %s changed, rerunning", reload.Path)
			if err := runScenario(registry, scenario, seed); err != nil {
				log.Printf("sim: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("sim: watcher: %v", err)
		}
	}
}

func runScenario(registry *defs.Registry, scenario string, seed int64) error {
	sim := fauna.NewSim(registry)
	if seed != 0 {
		sim.Seed(seed)
	}

	src, err := os.ReadFile(scenario)
	if err != nil {
		return fmt.Errorf("read scenario: %w", err)
	}

	rt := &scenarioRuntime{sim: sim, entities: map[int]ecs.Entity{}}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))
	for name, fn := range rt.functions() {
		if err := script.Add(name, &tengo.UserFunction{Name: name, Value: fn}); err != nil {
			return fmt.Errorf("bind %s: %w", name, err)
		}
	}

	if _, err := script.Run(); err != nil {
		return fmt.Errorf("scenario %s: %w", scenario, err)
	}
	rt.flushEvents()
	return nil
}

// scenarioRuntime binds a Sim to the functions an encounter script calls.
type scenarioRuntime struct {
	sim      *fauna.Sim
	entities map[int]ecs.Entity
}

func (rt *scenarioRuntime) functions() map[string]tengo.CallableFunc {
	return map[string]tengo.CallableFunc{
		"spawn":    rt.spawn,
		"hit":      rt.hit,
		"advance":  rt.advance,
		"health":   rt.health,
		"blood":    rt.blood,
		"alive":    rt.alive,
		"bleeding": rt.bleeding,
	}
}

func (rt *scenarioRuntime) spawn(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	species, ok := tengo.ToString(args[0])
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "species", Expected: "string"}
	}
	e, err := rt.sim.Spawn(species)
	if err != nil {
		return nil, err
	}
	rt.entities[e.ID] = e
	log.Printf("spawned %s as #%d", species, e.ID)
	return &tengo.Int{Value: int64(e.ID)}, nil
}

func (rt *scenarioRuntime) hit(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 3 {
		return nil, tengo.ErrWrongNumArguments
	}
	e, err := rt.entity(args[0])
	if err != nil {
		return nil, err
	}
	zone, _ := tengo.ToString(args[1])
	ammo, ok := tengo.ToString(args[2])
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "ammo", Expected: "string"}
	}
	if err := rt.sim.Hit(e, zone, ammo); err != nil {
		return nil, err
	}
	rt.flushEvents()
	return tengo.UndefinedValue, nil
}

func (rt *scenarioRuntime) advance(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	n, ok := tengo.ToInt(args[0])
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "ticks", Expected: "int"}
	}
	for i := 0; i < n; i++ {
		rt.sim.Advance(1)
		rt.flushEvents()
	}
	return tengo.UndefinedValue, nil
}

func (rt *scenarioRuntime) health(args ...tengo.Object) (tengo.Object, error) {
	if len(args) < 1 || len(args) > 2 {
		return nil, tengo.ErrWrongNumArguments
	}
	e, err := rt.entity(args[0])
	if err != nil {
		return nil, err
	}
	zone := component.GlobalZone
	if len(args) == 2 {
		zone, _ = tengo.ToString(args[1])
	}
	v := rt.sim.Vitals(e)
	if v == nil {
		return &tengo.Float{Value: 0}, nil
	}
	return &tengo.Float{Value: v.GetHealth(zone, component.ResourceHealth)}, nil
}

func (rt *scenarioRuntime) blood(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	e, err := rt.entity(args[0])
	if err != nil {
		return nil, err
	}
	v := rt.sim.Vitals(e)
	if v == nil {
		return &tengo.Float{Value: 0}, nil
	}
	return &tengo.Float{Value: v.GetHealth(component.GlobalZone, component.ResourceBlood)}, nil
}

func (rt *scenarioRuntime) alive(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	e, err := rt.entity(args[0])
	if err != nil {
		return nil, err
	}
	v := rt.sim.Vitals(e)
	if v != nil && v.IsAlive() {
		return tengo.TrueValue, nil
	}
	return tengo.FalseValue, nil
}

func (rt *scenarioRuntime) bleeding(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	e, err := rt.entity(args[0])
	if err != nil {
		return nil, err
	}
	if rt.sim.IsBleeding(e) {
		return tengo.TrueValue, nil
	}
	return tengo.FalseValue, nil
}

func (rt *scenarioRuntime) entity(arg tengo.Object) (ecs.Entity, error) {
	id, ok := tengo.ToInt(arg)
	if !ok {
		return ecs.Entity{}, tengo.ErrInvalidArgumentType{Name: "id", Expected: "int"}
	}
	e, ok := rt.entities[id]
	if !ok {
		return ecs.Entity{}, fmt.Errorf("unknown creature #%d", id)
	}
	return e, nil
}

func (rt *scenarioRuntime) flushEvents() {
	for _, evt := range rt.sim.DrainEvents() {
		ce, ok := evt.Data.(component.CombatEvent)
		if !ok {
			continue
		}
		switch ce.Type {
		case component.EventWoundInflicted:
			log.Printf("tick %d: #%d hit on %s by %s for %.0f", rt.sim.World().Ticks(), ce.TargetID, ce.Zone, ce.Ammo, ce.Amount)
		case component.EventBleedStarted:
			log.Printf("tick %d: #%d started bleeding (intensity %.2f)", rt.sim.World().Ticks(), ce.TargetID, ce.Intensity)
		case component.EventBleedTick:
			log.Printf("tick %d: #%d bled %.0f blood (drain %d)", rt.sim.World().Ticks(), ce.TargetID, ce.Amount, ce.Ticks)
		case component.EventBleedStopped:
			log.Printf("tick %d: #%d stopped bleeding (%s)", rt.sim.World().Ticks(), ce.TargetID, ce.Reason)
		case component.EventDeath:
			log.Printf("tick %d: #%d died", rt.sim.World().Ticks(), ce.TargetID)
		}
	}
}
