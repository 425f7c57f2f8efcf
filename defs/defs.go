package defs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ZoneDef describes one damage zone of a species.
type ZoneDef struct {
	Health   float64 `yaml:"health"`
	CanBleed bool    `yaml:"can_bleed"`
}

// SpeciesDef describes a creature type.
type SpeciesDef struct {
	Health        float64            `yaml:"health"`
	Blood         float64            `yaml:"blood"`
	Shock         float64            `yaml:"shock"`
	ShockRecovery float64            `yaml:"shock_recovery"`
	DamageZones   map[string]ZoneDef `yaml:"damage_zones"`
}

// AmmoDamageDef is the damage an ammo type applies to the zone it hits.
type AmmoDamageDef struct {
	Health         float64 `yaml:"health"`
	Blood          float64 `yaml:"blood"`
	BleedThreshold float64 `yaml:"bleed_threshold"`
}

// AmmoDef describes an ammo (weapon damage class) type.
type AmmoDef struct {
	InstantKill   bool          `yaml:"instant_kill"`
	DamageApplied AmmoDamageDef `yaml:"damage_applied"`
}

// Registry holds all loaded species and ammo defs and serves the typed
// lookups wound resolution performs.
type Registry struct {
	Species map[string]SpeciesDef `yaml:"species"`
	Ammo    map[string]AmmoDef    `yaml:"ammo"`
}

// LoadRegistry loads the species and ammo def files.
func LoadRegistry() (*Registry, error) {
	r := &Registry{}
	for _, name := range []string{"species.yaml", "ammo.yaml"} {
		data, err := Load(name)
		if err != nil {
			return nil, fmt.Errorf("defs: load %s: %w", name, err)
		}
		if err := yaml.Unmarshal(data, r); err != nil {
			return nil, fmt.Errorf("defs: unmarshal %s: %w", name, err)
		}
	}
	return r, nil
}

// SpeciesByName returns the def for a species name.
func (r *Registry) SpeciesByName(name string) (SpeciesDef, bool) {
	if r == nil {
		return SpeciesDef{}, false
	}
	def, ok := r.Species[name]
	return def, ok
}

// AmmoByName returns the def for an ammo name.
func (r *Registry) AmmoByName(name string) (AmmoDef, bool) {
	if r == nil {
		return AmmoDef{}, false
	}
	def, ok := r.Ammo[name]
	return def, ok
}

// CanBleed reports whether a zone of a species can start bleeding. Unknown
// species or zones cannot bleed.
func (r *Registry) CanBleed(species, zone string) bool {
	if r == nil {
		return false
	}
	return r.Species[species].DamageZones[zone].CanBleed
}

// BleedThreshold returns the bleed probability ceiling for an ammo type.
// Unknown ammo reads as zero, which never starts a bleed.
func (r *Registry) BleedThreshold(ammo string) float64 {
	if r == nil {
		return 0
	}
	return r.Ammo[ammo].DamageApplied.BleedThreshold
}

// InstantKill reports whether an ammo type kills outright on hit.
func (r *Registry) InstantKill(ammo string) bool {
	if r == nil {
		return false
	}
	return r.Ammo[ammo].InstantKill
}
