package variant

import (
	"go.uber.org/zap"

	"github.com/wippyai/visit/errors"
)

//go:generate go run ../cmd/visitgen -arities 2:10 -pkg variant -o of_gen.go

// ErrUnmatched matches, via errors.Is, the panic value raised when a union
// holding none of its declared alternatives is dispatched.
var ErrUnmatched = &errors.Error{Phase: errors.PhaseDispatch, Kind: errors.KindInvalidVariant}

// Unmatched reports dispatch of a sum value that holds none of its
// alternatives. index is the offending discriminant, or -1 when there is
// none. It always panics. Generated dispatchers call it from their fallback.
func Unmatched(sum string, index, alternatives int) {
	err := unmatchedError(sum, index, alternatives)
	Logger().Error("dispatch without active alternative",
		zap.String("sum", sum),
		zap.Int("index", index),
		zap.Int("alternatives", alternatives))
	panic(err)
}

func unmatchedError(sum string, index, alternatives int) *errors.Error {
	return errors.InvalidDiscriminant(errors.PhaseDispatch, []string{sum}, index, alternatives)
}
