package contagiongo

import "github.com/pkg/errors"

const (
	// IntKeyNotFoundError is the message for "Integer key not found" errors
	IntKeyNotFoundError = "key %d not found"

	// IntKeyExists is the message printed when a given key already exists
	IntKeyExists = "key %d already exists"

	InvalidFloatParameterError  = "invalid %s %f, %s"
	InvalidIntParameterError    = "invalid %s %d, %s"
	InvalidStringParameterError = "invalid %s %s, %s"
)

const (
	UnequalFloatParameterError  = "expected %s %f, instead got %f"
	UnequalIntParameterError    = "expected %s %d, instead got %d"
	UnequalStringParameterError = "expected %s %s, instead got %s"
	UnexpectedErrorWhileError   = "encountered error while %s: %s"
	ExpectedErrorWhileError     = "expected an error while %s, instead got none"
)

// ErrConflictingInitialCondition is raised when a caller supplies both
// initialInfecteds and rho (when neither is supplied, one node is chosen at
// random instead). This is the configuration-error kind described
// in spec.md section 7 (the EoNError equivalent): it is returned to the
// caller before any simulation state is mutated.
var ErrConflictingInitialCondition = errors.New("contagiongo: specify exactly one of initialInfecteds or rho, not both")

// ErrSelfLoop is raised by components that require a self-loop-free graph
// (unweighted Gillespie SIS). Self-loops corrupt the infected-neighbor-count
// stratification invariant (spec.md section 4.7) and must be stripped by
// the caller before the graph is passed in.
var ErrSelfLoop = errors.New("contagiongo: graph contains a self-loop, which Gillespie SIS cannot accept")

// ErrWeightedGillespie is raised when a transmission or recovery weight
// attribute name is set in the options passed to one of the Gillespie entry
// points, which only run unweighted dynamics per spec.md section 1's
// Non-goals. Weight attributes present on the graph itself are not checked.
var ErrWeightedGillespie = errors.New("contagiongo: Gillespie engines do not accept transmission_weight or recovery_weight; use the event-driven engine")

// ErrEmptyQueue is the precondition-violation panic message for popping
// from a drained EventQueue.
const ErrEmptyQueue = "contagiongo: pop_and_run called on an empty EventQueue"

// wrapf mirrors the teacher's evoepi_config.go convention of wrapping
// lower-level errors with github.com/pkg/errors before returning them to a
// caller, attaching a short description of the failing operation.
func wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, format, args...)
}