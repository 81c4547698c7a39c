// Package tile defines the terrain and entity markers stored in a chunk's grids.
package tile

// Tile is the terrain type of one cell.
type Tile uint8

const (
	Rock Tile = iota // unexcavated, impassable
	Empty
	Wall
	WallDamaged
	Debris
	Rail
	DoorOpen
	DoorClosed
	OneWayTop    // passable only when moving north
	OneWayBottom // passable only when moving south
	OneWayLeft   // passable only when moving west
	OneWayRight  // passable only when moving east
	Chest
	Altar
	Shrine
	HiddenGrove
	Shrub
	Sentinel
	Turret
	Totem
	Trap
)

// Count is the number of terrain types.
const Count = int(Trap) + 1

var tileNames = [Count]string{
	"rock", "empty", "wall", "wall_damaged", "debris", "rail",
	"door_open", "door_closed",
	"one_way_top", "one_way_bottom", "one_way_left", "one_way_right",
	"chest", "altar", "shrine", "hidden_grove", "shrub",
	"sentinel", "turret", "totem", "trap",
}

func (t Tile) String() string {
	if int(t) < Count {
		return tileNames[t]
	}
	return "unknown"
}

// IsFloor reports open ground: empty floor and its cosmetic variants.
func (t Tile) IsFloor() bool {
	return t == Empty || t == Debris || t == Rail
}

// IsWall reports wall tiles, damaged or not.
func (t Tile) IsWall() bool {
	return t == Wall || t == WallDamaged
}

// IsDoor reports every door kind, including one-way doors.
func (t Tile) IsDoor() bool {
	return t == DoorOpen || t == DoorClosed || t.IsOneWay()
}

// IsOneWay reports directional doors.
func (t Tile) IsOneWay() bool {
	return t >= OneWayTop && t <= OneWayRight
}

// IsFeature reports decorative or interactive objects standing on floor.
func (t Tile) IsFeature() bool {
	return t >= Chest && t <= Trap
}

// IsHazard reports the hazard subset of features.
func (t Tile) IsHazard() bool {
	return t >= Sentinel && t <= Trap
}

// Walkable reports tiles a player can stand on or open: floor and doors.
// Features connect space for Passable but block movement.
func (t Tile) Walkable() bool {
	return t.IsFloor() || t.IsDoor()
}

// Passable reports tiles that connect space: floor, doors and features.
func (t Tile) Passable() bool {
	return t.IsFloor() || t.IsDoor() || t.IsFeature()
}

// Entity is a placement marker for a creature, stored alongside the terrain.
type Entity uint8

const (
	None Entity = iota
	Boss
	Leader
	Support
	Tank
	Damage
	Specialist
	Wild
)

var entityNames = [...]string{"none", "boss", "leader", "support", "tank", "damage", "specialist", "wild"}

func (e Entity) String() string {
	if int(e) < len(entityNames) {
		return entityNames[e]
	}
	return "unknown"
}

// Escorts lists the entities that accompany a boss, in placement order.
var Escorts = []Entity{Leader, Support, Tank, Damage, Specialist}
