package component

// CombatEventType defines the kind of combat event.
type CombatEventType string

const (
	EventWoundInflicted CombatEventType = "wound_inflicted"
	EventBleedStarted   CombatEventType = "bleed_started"
	EventBleedTick      CombatEventType = "bleed_tick"
	EventBleedStopped   CombatEventType = "bleed_stopped"
	EventDeath          CombatEventType = "death"
)

// BleedStopReason explains why a bleed ended.
type BleedStopReason string

const (
	StopReasonDeath    BleedStopReason = "death"
	StopReasonReplaced BleedStopReason = "replaced"
)

// CombatEvent is emitted during wound infliction and bleed ticks. Ticks is
// set on bleed-tick events and counts the drains this bleed has applied.
type CombatEvent struct {
	Type      CombatEventType
	TargetID  int
	Zone      string
	Ammo      string
	Amount    float64
	Intensity float64
	Ticks     int
	Reason    BleedStopReason
}

// CombatEventHandler handles combat events.
type CombatEventHandler func(evt CombatEvent)

// CombatEventEmitter fans combat events out to registered handlers.
type CombatEventEmitter struct {
	Handlers []CombatEventHandler
}

// Emit sends a combat event to all handlers.
func (e *CombatEventEmitter) Emit(evt CombatEvent) {
	if e == nil || len(e.Handlers) == 0 {
		return
	}
	for _, h := range e.Handlers {
		if h != nil {
			h(evt)
		}
	}
}
