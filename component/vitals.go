package component

// Resource names shared by damage reports and vitals.
const (
	ResourceHealth = "Health"
	ResourceBlood  = "Blood"
	ResourceShock  = "Shock"
)

// GlobalZone is the empty zone name denoting creature-wide scope.
const GlobalZone = ""

// Pool is a single depletable resource value.
type Pool struct {
	Max     float64
	Current float64
}

// Vitals models a creature's named resources: a set of global pools plus a
// health pool per body zone. The empty zone name addresses the global pools.
type Vitals struct {
	global map[string]*Pool
	zones  map[string]map[string]*Pool
	dead   bool

	// ShockRecovery is the shock restored per tick while alive.
	ShockRecovery float64

	OnDeath func()
}

// NewVitals creates vitals with the given global pool maxima. Pools start
// full. Zones are added with AddZone.
func NewVitals(health, blood, shock float64) *Vitals {
	if health <= 0 {
		health = 1
	}
	v := &Vitals{
		global: map[string]*Pool{},
		zones:  map[string]map[string]*Pool{},
	}
	v.global[ResourceHealth] = &Pool{Max: health, Current: health}
	if blood > 0 {
		v.global[ResourceBlood] = &Pool{Max: blood, Current: blood}
	}
	if shock > 0 {
		v.global[ResourceShock] = &Pool{Max: shock, Current: shock}
	}
	return v
}

// AddZone registers a body zone with its own full health pool.
func (v *Vitals) AddZone(zone string, health float64) {
	if v == nil || zone == "" || health <= 0 {
		return
	}
	v.zones[zone] = map[string]*Pool{
		ResourceHealth: {Max: health, Current: health},
	}
}

// Zones returns the registered zone names.
func (v *Vitals) Zones() []string {
	if v == nil {
		return nil
	}
	out := make([]string, 0, len(v.zones))
	for zone := range v.zones {
		out = append(out, zone)
	}
	return out
}

// HasZone reports whether the zone is registered.
func (v *Vitals) HasZone(zone string) bool {
	if v == nil {
		return false
	}
	_, ok := v.zones[zone]
	return ok
}

func (v *Vitals) pool(zone, resource string) *Pool {
	if v == nil {
		return nil
	}
	if resource == "" {
		resource = ResourceHealth
	}
	if zone == GlobalZone {
		return v.global[resource]
	}
	return v.zones[zone][resource]
}

// GetHealth returns the current level of a resource. Unknown zones and
// resources read as zero.
func (v *Vitals) GetHealth(zone, resource string) float64 {
	p := v.pool(zone, resource)
	if p == nil {
		return 0
	}
	return p.Current
}

// GetMax returns the maximum level of a resource.
func (v *Vitals) GetMax(zone, resource string) float64 {
	p := v.pool(zone, resource)
	if p == nil {
		return 0
	}
	return p.Max
}

// SetHealth sets a resource to an absolute value, clamped to [0, Max].
// An empty resource name means global Health.
func (v *Vitals) SetHealth(zone, resource string, value float64) {
	p := v.pool(zone, resource)
	if p == nil {
		return
	}
	p.Current = value
	if p.Current < 0 {
		p.Current = 0
	}
	if p.Current > p.Max {
		p.Current = p.Max
	}
	v.checkDeath(zone, resource)
}

// DecreaseHealth drains a resource by amount, clamped at zero. Negative
// amounts are ignored.
func (v *Vitals) DecreaseHealth(zone, resource string, amount float64) {
	if amount <= 0 {
		return
	}
	p := v.pool(zone, resource)
	if p == nil {
		return
	}
	p.Current -= amount
	if p.Current < 0 {
		p.Current = 0
	}
	v.checkDeath(zone, resource)
}

// IncreaseHealth restores a resource by amount, clamped to Max.
func (v *Vitals) IncreaseHealth(zone, resource string, amount float64) {
	if v == nil || v.dead || amount <= 0 {
		return
	}
	p := v.pool(zone, resource)
	if p == nil {
		return
	}
	p.Current += amount
	if p.Current > p.Max {
		p.Current = p.Max
	}
}

// IsAlive reports whether the creature's global health is above zero.
func (v *Vitals) IsAlive() bool {
	if v == nil || v.dead {
		return false
	}
	return v.GetHealth(GlobalZone, ResourceHealth) > 0
}

func (v *Vitals) checkDeath(zone, resource string) {
	if v == nil || v.dead {
		return
	}
	if resource == "" {
		resource = ResourceHealth
	}
	if zone != GlobalZone || resource != ResourceHealth {
		return
	}
	if v.global[ResourceHealth].Current > 0 {
		return
	}
	v.dead = true
	if v.OnDeath != nil {
		v.OnDeath()
	}
}
