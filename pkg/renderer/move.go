package renderer

import (
	"fmt"
	"strings"

	"github.com/df07/go-live-raytracer/pkg/core"
)

// MoveCommand is a one unit camera step along a camera-local axis
type MoveCommand int

const (
	MoveRight MoveCommand = iota
	MoveLeft
	MoveUp
	MoveDown
	MoveForward
	MoveBack
)

var moveNames = map[MoveCommand]string{
	MoveRight:   "right",
	MoveLeft:    "left",
	MoveUp:      "up",
	MoveDown:    "down",
	MoveForward: "forward",
	MoveBack:    "back",
}

// Direction returns the camera-space delta: X is right, Y is up and Z points backwards
func (m MoveCommand) Direction() core.Vec3 {
	switch m {
	case MoveRight:
		return core.NewVec3(1, 0, 0)
	case MoveLeft:
		return core.NewVec3(-1, 0, 0)
	case MoveUp:
		return core.NewVec3(0, 1, 0)
	case MoveDown:
		return core.NewVec3(0, -1, 0)
	case MoveForward:
		return core.NewVec3(0, 0, -1)
	case MoveBack:
		return core.NewVec3(0, 0, 1)
	}
	return core.Vec3{}
}

func (m MoveCommand) String() string {
	if name, ok := moveNames[m]; ok {
		return name
	}
	return fmt.Sprintf("MoveCommand(%d)", int(m))
}

// ParseMoveCommand maps a direction name such as "left" to its command
func ParseMoveCommand(name string) (MoveCommand, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for cmd, cmdName := range moveNames {
		if cmdName == name {
			return cmd, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMove, name)
}
