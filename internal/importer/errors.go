package importer

import (
	"errors"
	"fmt"
)

var (
	// ErrParse marks a structurally unusable file. It aborts the import
	// before any upsert.
	ErrParse = errors.New("parse error")

	// ErrTimeout marks a pipeline deadline hit. Upserts already committed
	// stand; the rest of the batch is abandoned.
	ErrTimeout = errors.New("import timed out")

	ErrUnknownConflictPolicy = errors.New("unknown conflict policy")
)

// FieldError records one field that failed coercion. The row still proceeds
// with the field left null.
type FieldError struct {
	Line   int
	Field  string
	Value  string
	Reason string
}

func (fieldError FieldError) Error() string {
	return fmt.Sprintf("line %d: field %s: %s (value %q)", fieldError.Line, fieldError.Field, fieldError.Reason, fieldError.Value)
}
