package notes

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("note not found")

// NotFoundError reports which operation referenced a missing identifier.
type NotFoundError struct {
	Op string
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s note: id %d: %v", e.Op, e.ID, ErrNotFound)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
