package result

import (
	"time"

	"github.com/google/uuid"
)

// Stamp identifies a result's construction.
type Stamp interface {
	// Id returns the unique id assigned at construction
	Id() uuid.UUID
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// Variant reports which side of a result is populated. Exactly one of the
// predicates is true for any value.
type Variant interface {
	Stamp
	// IsSuccess returns true if the result holds a success value
	IsSuccess() bool
	// IsFailure returns true if the result holds a failure error
	IsFailure() bool
}
