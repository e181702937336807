package grid

import "fmt"

// PreconditionError is the panic value raised when a checked operation is
// called with arguments that violate its contract, such as At with an
// out-of-bounds position. Use the OrNil/OrEmpty variants to avoid it.
type PreconditionError struct {
	Op   string // operation name, e.g. "At"
	Size Size   // size of the grid the operation was called on
	Msg  string // description of the offending argument
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("grid: %s on %dx%d grid: %s", e.Op, e.Size.X, e.Size.Y, e.Msg)
}

func (e *PreconditionError) Unwrap() error {
	return ErrPrecondition
}

// violated panics with a *PreconditionError. Call sites guard it with
// checksEnabled so the check compiles out under the gridunchecked tag:
//
//	if checksEnabled && !g.InBounds(p) {
//		violated("At", g.Size(), "position %v out of bounds", p)
//	}
func violated(op string, size Size, format string, args ...any) {
	err := &PreconditionError{Op: op, Size: size, Msg: fmt.Sprintf(format, args...)}
	Logger().Error("grid: precondition violated", "op", op, "err", err)
	panic(err)
}
