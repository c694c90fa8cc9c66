package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data or application state failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrPrerequisiteMissing indicates that a pipeline step was invoked before the
// artifact it depends on was produced (e.g. offers before underwriting).
// Callers must run the preceding step and retry.
var ErrPrerequisiteMissing = errors.New("prerequisite artifact missing")
