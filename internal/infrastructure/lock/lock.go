// Package lock serialises booking writes per space. Two implementations
// exist: an in-process keyed mutex for single-instance deployments and a
// Redis lock for several API instances sharing one database.
package lock

import (
	"errors"
	"fmt"
)

// ErrLockTimeout is returned when the lock could not be obtained before the
// wait budget or the context ran out.
var ErrLockTimeout = errors.New("timed out waiting for space lock")

// Release gives the lock back. Calling it more than once is a no-op.
type Release = func()

func spaceKey(spaceID uint) string {
	return fmt.Sprintf("spacebook:lock:space:%d", spaceID)
}
