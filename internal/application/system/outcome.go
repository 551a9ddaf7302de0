package system

// Outcome is a level transition requested by the player update.
// A non-nil outcome ends the tick; the world applies it.
type Outcome interface {
	isOutcome()
}

// Respawn reloads the current level.
type Respawn struct{}

func (Respawn) isOutcome() {}

// AdvanceLevel moves to the next non-secret level.
type AdvanceLevel struct{}

func (AdvanceLevel) isOutcome() {}

// Warp jumps to the level at Target.
type Warp struct {
	Target int
}

func (Warp) isOutcome() {}

// Event is presentation feedback raised by the simulation.
type Event int

const (
	EventJump Event = iota
	EventShoot
	EventEnemyHit
	EventEnemyKilled
	EventPlayerHurt
	EventPickup
	EventPowerup
	EventDoor
	EventWarp
	EventLevelLoaded
)

func (e Event) String() string {
	switch e {
	case EventJump:
		return "Jump"
	case EventShoot:
		return "Shoot"
	case EventEnemyHit:
		return "EnemyHit"
	case EventEnemyKilled:
		return "EnemyKilled"
	case EventPlayerHurt:
		return "PlayerHurt"
	case EventPickup:
		return "Pickup"
	case EventPowerup:
		return "Powerup"
	case EventDoor:
		return "Door"
	case EventWarp:
		return "Warp"
	case EventLevelLoaded:
		return "LevelLoaded"
	default:
		return "Unknown"
	}
}
