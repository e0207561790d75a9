package profile

import "github.com/google/uuid"

// Handle is a stable point identity, independent from the display order
type Handle string

func newHandle() Handle {
	return Handle(uuid.NewString())
}
