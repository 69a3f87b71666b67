package fetchqueue

import (
	"errors"
	"fmt"
)

// ErrExecutorClosed is returned by Submit after Stop has been called.
var ErrExecutorClosed = errors.New("fetchqueue: executor closed")

// ErrQueueFull signals that a shard queue stayed full past the enqueue
// timeout. Compare with errors.Is; the concrete value is *QueueFullError.
var ErrQueueFull = errors.New("fetchqueue: queue full")

// QueueFullError carries the state of the shard that rejected a submission.
type QueueFullError struct {
	Shard    int
	Length   int
	Capacity int
}

func (e *QueueFullError) Error() string {
	return fmt.Sprintf("fetchqueue: shard %d full (%d/%d)", e.Shard, e.Length, e.Capacity)
}

// Is lets errors.Is(err, ErrQueueFull) match.
func (e *QueueFullError) Is(target error) bool { return target == ErrQueueFull }
