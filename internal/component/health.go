package component

// Health tracks an entity's hit points.
type Health struct {
	Cur int
	Max int
}
