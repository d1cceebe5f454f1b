package generate

import "github.com/wippyai/visit/generate/internal/model"

// Sum is a closed set of alternatives in declaration order.
type Sum = model.Sum

// Alternative is one member of a Sum.
type Alternative = model.Alternative

// Form selects how a sum stores its active alternative.
type Form = model.Form

const (
	FormInterface     = model.FormInterface
	FormPointerStruct = model.FormPointerStruct
)
