// Package modes implements the editor's Spawn/Edit/Play state machine and pointer handling.
package modes

import "fmt"

// Mode is the editor's exclusive interaction state
type Mode uint8

const (
	ModeSpawn Mode = iota
	ModeEdit
	ModePlay
)

func (m Mode) String() string {
	switch m {
	case ModeSpawn:
		return "SPAWN"
	case ModeEdit:
		return "EDIT"
	case ModePlay:
		return "PLAY"
	}
	return fmt.Sprintf("MODE(%d)", m)
}
