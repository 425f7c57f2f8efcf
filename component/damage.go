package component

type damageKey struct {
	Zone     string
	Resource string
}

// DamageResult is the per-zone, per-resource damage report produced by combat
// resolution for a single hit. Wound handling treats it as read-only input.
type DamageResult struct {
	amounts map[damageKey]float64
}

// NewDamageResult creates an empty damage report.
func NewDamageResult() *DamageResult {
	return &DamageResult{amounts: map[damageKey]float64{}}
}

// Add records a damage magnitude for a zone/resource pair. Non-positive
// amounts are dropped.
func (r *DamageResult) Add(zone, resource string, amount float64) *DamageResult {
	if r == nil || amount <= 0 {
		return r
	}
	if r.amounts == nil {
		r.amounts = map[damageKey]float64{}
	}
	r.amounts[damageKey{Zone: zone, Resource: resource}] += amount
	return r
}

// GetDamage returns the reported magnitude for a zone/resource pair, or zero.
func (r *DamageResult) GetDamage(zone, resource string) float64 {
	if r == nil {
		return 0
	}
	return r.amounts[damageKey{Zone: zone, Resource: resource}]
}
