package component

// VitalsComponent exposes the health operations wound resolution needs.
type VitalsComponent interface {
	IsAlive() bool
	GetHealth(zone, resource string) float64
	SetHealth(zone, resource string, value float64)
	DecreaseHealth(zone, resource string, amount float64)
}

// DamageReport is the read-only hit report consumed by wound resolution.
type DamageReport interface {
	GetDamage(zone, resource string) float64
}

// ZoneConfig answers whether a body zone of a species can bleed.
type ZoneConfig interface {
	CanBleed(species, zone string) bool
}

// AmmoConfig exposes the per-ammo tunables wound resolution reads.
type AmmoConfig interface {
	BleedThreshold(ammo string) float64
	InstantKill(ammo string) bool
}
