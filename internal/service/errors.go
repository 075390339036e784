package service

import "errors"

// Business-rule conditions surfaced to the HTTP layer. Handlers match these
// with errors.Is and map them to status codes (404, 400), so the repository
// must never swallow the underlying storage signals they are derived from.
var (
	// ErrVendorNotFound is returned when no vendor exists at the requested id.
	ErrVendorNotFound = errors.New("vendor not found")

	// ErrDuplicateTaxID is returned when a create, update, or import would
	// leave two vendors sharing a tax_id. Both the service-level pre-check
	// and the storage unique-constraint rejection normalize to this error.
	ErrDuplicateTaxID = errors.New("vendor with this tax ID already exists")

	// ErrInvalidCSV is returned when an import payload cannot be parsed as
	// CSV or is missing required columns. The whole import is aborted.
	ErrInvalidCSV = errors.New("invalid CSV file")

	// ErrValidation wraps bad-input failures on individual fields.
	ErrValidation = errors.New("validation failed")
)
