package component

import "testing"

func newTestVitals() *Vitals {
	v := NewVitals(100, 600, 50)
	v.AddZone("Torso", 80)
	v.AddZone("Head", 30)
	return v
}

func TestVitalsGetSetDecrease(t *testing.T) {
	cases := []struct {
		name  string
		apply func(v *Vitals)
		zone  string
		res   string
		want  float64
	}{
		{
			name:  "decrease_global_health",
			apply: func(v *Vitals) { v.DecreaseHealth(GlobalZone, ResourceHealth, 40) },
			zone:  GlobalZone, res: ResourceHealth, want: 60,
		},
		{
			name:  "decrease_zone_health",
			apply: func(v *Vitals) { v.DecreaseHealth("Torso", ResourceHealth, 25) },
			zone:  "Torso", res: ResourceHealth, want: 55,
		},
		{
			name:  "decrease_clamps_at_zero",
			apply: func(v *Vitals) { v.DecreaseHealth("Head", ResourceHealth, 1000) },
			zone:  "Head", res: ResourceHealth, want: 0,
		},
		{
			name:  "negative_decrease_ignored",
			apply: func(v *Vitals) { v.DecreaseHealth(GlobalZone, ResourceBlood, -5) },
			zone:  GlobalZone, res: ResourceBlood, want: 600,
		},
		{
			name:  "set_clamps_to_max",
			apply: func(v *Vitals) { v.SetHealth(GlobalZone, ResourceBlood, 9999) },
			zone:  GlobalZone, res: ResourceBlood, want: 600,
		},
		{
			name:  "empty_resource_means_health",
			apply: func(v *Vitals) { v.SetHealth(GlobalZone, "", 0) },
			zone:  GlobalZone, res: ResourceHealth, want: 0,
		},
		{
			name:  "unknown_zone_reads_zero",
			apply: func(v *Vitals) {},
			zone:  "Tail", res: ResourceHealth, want: 0,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := newTestVitals()
			c.apply(v)
			if got := v.GetHealth(c.zone, c.res); got != c.want {
				t.Fatalf("GetHealth(%q, %q) = %v, want %v", c.zone, c.res, got, c.want)
			}
		})
	}
}

func TestVitalsDeath(t *testing.T) {
	t.Run("alive_until_global_health_zero", func(t *testing.T) {
		v := newTestVitals()
		v.DecreaseHealth("Torso", ResourceHealth, 80)
		if !v.IsAlive() {
			t.Fatalf("zone damage alone must not kill")
		}
		v.DecreaseHealth(GlobalZone, ResourceBlood, 600)
		if !v.IsAlive() {
			t.Fatalf("blood loss alone must not kill")
		}
		v.SetHealth(GlobalZone, "", 0)
		if v.IsAlive() {
			t.Fatalf("zero global health must kill")
		}
	})

	t.Run("on_death_fires_once", func(t *testing.T) {
		v := newTestVitals()
		deaths := 0
		v.OnDeath = func() { deaths++ }
		v.DecreaseHealth(GlobalZone, ResourceHealth, 100)
		v.DecreaseHealth(GlobalZone, ResourceHealth, 10)
		v.SetHealth(GlobalZone, "", 0)
		if deaths != 1 {
			t.Fatalf("OnDeath fired %d times, want 1", deaths)
		}
	})

	t.Run("no_heal_after_death", func(t *testing.T) {
		v := newTestVitals()
		v.SetHealth(GlobalZone, "", 0)
		v.IncreaseHealth(GlobalZone, ResourceHealth, 50)
		if v.GetHealth(GlobalZone, ResourceHealth) != 0 {
			t.Fatalf("dead creature must not regain health")
		}
	})
}

func TestVitalsZones(t *testing.T) {
	v := newTestVitals()
	if !v.HasZone("Torso") || v.HasZone("Tail") {
		t.Fatalf("unexpected zone registration")
	}
	if len(v.Zones()) != 2 {
		t.Fatalf("expected 2 zones, got %d", len(v.Zones()))
	}

	var nilVitals *Vitals
	if nilVitals.IsAlive() {
		t.Fatalf("nil vitals must read as dead")
	}
	if nilVitals.GetHealth(GlobalZone, ResourceHealth) != 0 {
		t.Fatalf("nil vitals must read zero")
	}
}
