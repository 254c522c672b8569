package rules

import "errors"

// Local precondition failures raised before any request is issued.
// Callers wrap them with context via fmt.Errorf and classify with
// errors.Is.
var (
	ErrValidation       = errors.New("validation failed")
	ErrPermissionDenied = errors.New("permission denied")
	ErrDeadlinePassed   = errors.New("deadline passed")
	ErrDuplicate        = errors.New("duplicate record")
)
