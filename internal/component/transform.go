package component

// Position is an entity's location in world space.
// Pure data, zero methods — all mutations happen in System functions.
type Position struct {
	X, Y float64
}

// Velocity is units per second.
type Velocity struct {
	DX, DY float64
}
