package kitchen

import "fmt"

// ValidationError reports input that fails a range or enum rule
type ValidationError struct {
	Message string // Literal message surfaced to the caller
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError reports a meal name already held by an active row
type ConflictError struct {
	Message string // Literal message surfaced to the caller
}

func (e *ConflictError) Error() string { return e.Message }

// NotFoundError reports an id or name with no matching row
type NotFoundError struct {
	Message string // Literal message surfaced to the caller
}

func (e *NotFoundError) Error() string { return e.Message }

// AlreadyDeletedError reports an operation against a soft-deleted row.
// Read paths treat it like a not-found signal; delete and update paths
// surface it as the explicit "has been deleted" failure.
type AlreadyDeletedError struct {
	Message string // Literal message surfaced to the caller
}

func (e *AlreadyDeletedError) Error() string { return e.Message }

// errInvalidPrice rejects a non-positive price
func errInvalidPrice(price float64) error {
	return &ValidationError{Message: fmt.Sprintf("Invalid price: %v. Price must be a positive number.", price)}
}

// errInvalidDifficulty rejects a difficulty outside LOW, MED and HIGH
func errInvalidDifficulty(difficulty string) error {
	return &ValidationError{Message: fmt.Sprintf("Invalid difficulty level: %v. Must be 'LOW', 'MED', or 'HIGH'.", difficulty)}
}

// errInvalidResult rejects a battle outcome other than win or loss
func errInvalidResult(result string) error {
	return &ValidationError{Message: fmt.Sprintf("Invalid result: %v. Expected 'win' or 'loss'.", result)}
}

// errInvalidSortBy rejects an unknown leaderboard sort key
func errInvalidSortBy(sortBy string) error {
	return &ValidationError{Message: fmt.Sprintf("Invalid sort_by parameter: %v", sortBy)}
}

// errDuplicateName rejects a name already held by an active meal
func errDuplicateName(name string) error {
	return &ConflictError{Message: fmt.Sprintf("Meal with name '%s' already exists", name)}
}

// errIDNotFound reports an id with no row
func errIDNotFound(id uint) error {
	return &NotFoundError{Message: fmt.Sprintf("Meal with ID %d not found", id)}
}

// errNameNotFound reports a name with no row
func errNameNotFound(name string) error {
	return &NotFoundError{Message: fmt.Sprintf("Meal with name %s not found", name)}
}

// errIDDeleted reports an id whose row is soft deleted
func errIDDeleted(id uint) error {
	return &AlreadyDeletedError{Message: fmt.Sprintf("Meal with ID %d has been deleted", id)}
}

// errNameDeleted reports a name whose row is soft deleted
func errNameDeleted(name string) error {
	return &AlreadyDeletedError{Message: fmt.Sprintf("Meal with name %s has been deleted", name)}
}
