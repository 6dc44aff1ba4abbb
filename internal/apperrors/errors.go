package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrInvalidParameter indicates that input data failed validation checks,
// such as a non-positive amount or a negative principal.
var ErrInvalidParameter = errors.New("invalid parameter")

// ErrDuplicateIdentifier indicates that an entity with the same identifier is already present.
var ErrDuplicateIdentifier = errors.New("duplicate identifier")

// ErrInsufficientFunds indicates that a withdrawal exceeds the available balance.
var ErrInsufficientFunds = errors.New("insufficient funds")
