package combat

// EventKind classifies a battle narration event
type EventKind string

const (
	EventEncounterStarted EventKind = "encounter_started"
	EventDamageDealt      EventKind = "damage_dealt"
	EventCriticalHit      EventKind = "critical_hit"
	EventWeaponBroken     EventKind = "weapon_broken"
	EventHealed           EventKind = "healed"
	EventNothingToUse     EventKind = "nothing_to_use"
	EventFleeFailed       EventKind = "flee_failed"
	EventEscaped          EventKind = "escaped"
	EventEnemyAttack      EventKind = "enemy_attack"
	EventVictory          EventKind = "victory"
	EventDefeat           EventKind = "defeat"
	EventExpGained        EventKind = "exp_gained"
	EventLevelUp          EventKind = "level_up"
	EventBonusAllocated   EventKind = "bonus_allocated"
	EventLootFound        EventKind = "loot_found"
	EventNoLoot           EventKind = "no_loot"
)

// Event is one line of battle narration for the shell to render
type Event struct {
	Round   int
	Kind    EventKind
	Amount  int
	Item    string
	Message string
}

func (e Event) String() string {
	return e.Message
}
