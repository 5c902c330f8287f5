package sapling

import (
	"errors"
	"fmt"
)

var (
	// ErrAppRunning is returned by App.Run while another App is running.
	ErrAppRunning = errors.New("sapling: application already running")
	// ErrNodeNotFound is returned when removing a listening node that was
	// never registered.
	ErrNodeNotFound = errors.New("sapling: node not registered")
	// ErrNoScene is returned by operations that need a current scene.
	ErrNoScene = errors.New("sapling: no current scene")
)

func errNodeNotFound(n *Node) error {
	return fmt.Errorf("%w: %q (id %d)", ErrNodeNotFound, n.Name, n.ID)
}
