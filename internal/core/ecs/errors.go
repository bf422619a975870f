package ecs

import "errors"

var (
	// ErrNilSystem is returned when registering a nil system.
	ErrNilSystem = errors.New("ecs: nil system")
	// ErrDuplicateSystem is returned when a system name is already taken.
	// Names address systems in RemoveSystem and SetEnabled, so reusing one
	// would leave the later registration unreachable.
	ErrDuplicateSystem = errors.New("ecs: duplicate system name")
)
