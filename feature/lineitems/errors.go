package lineitems

import "errors"

var (
	// ErrStorage wraps every failed read or write against the item tables.
	ErrStorage = errors.New("storage error")
	// ErrInvalidField is returned when a patch names a field outside the allow-list.
	ErrInvalidField = errors.New("invalid field")
	// ErrInvalidValue is returned for unparsable or negative numeric input.
	ErrInvalidValue = errors.New("invalid value")
	// ErrNotFound is returned when an id does not exist under the claimed document.
	ErrNotFound = errors.New("item not found")
	// ErrUnknownKind is returned for a collection name other than invoice or cost.
	ErrUnknownKind = errors.New("unknown item kind")
)

// ErrExportDisabled is returned by Export when no object storage is configured.
var ErrExportDisabled = errors.New("snapshot export is disabled")
