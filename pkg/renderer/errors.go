package renderer

import "errors"

var (
	ErrPoolStopped = errors.New("renderer: job submitted to a stopped worker pool")
	ErrUnknownMove = errors.New("renderer: unknown move direction")
	ErrNoScene     = errors.New("renderer: no scene defined")
)
