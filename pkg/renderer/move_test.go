package renderer

import (
	"errors"
	"testing"

	"github.com/df07/go-live-raytracer/pkg/core"
)

func TestMoveCommand_Direction(t *testing.T) {
	tests := []struct {
		cmd      MoveCommand
		name     string
		expected core.Vec3
	}{
		{MoveRight, "right", core.NewVec3(1, 0, 0)},
		{MoveLeft, "left", core.NewVec3(-1, 0, 0)},
		{MoveUp, "up", core.NewVec3(0, 1, 0)},
		{MoveDown, "down", core.NewVec3(0, -1, 0)},
		{MoveForward, "forward", core.NewVec3(0, 0, -1)},
		{MoveBack, "back", core.NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cmd.Direction(); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
			if tt.cmd.String() != tt.name {
				t.Errorf("Expected name %q, got %q", tt.name, tt.cmd.String())
			}
			parsed, err := ParseMoveCommand(" " + tt.name + " ")
			if err != nil || parsed != tt.cmd {
				t.Errorf("ParseMoveCommand(%q) = %v, %v", tt.name, parsed, err)
			}
		})
	}
}

func TestParseMoveCommand_Unknown(t *testing.T) {
	if _, err := ParseMoveCommand("sideways"); !errors.Is(err, ErrUnknownMove) {
		t.Errorf("Expected ErrUnknownMove, got %v", err)
	}
}
