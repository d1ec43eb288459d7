package convert

import "fmt"

// UnsupportedConversionError is returned when an input kind has no converter
// for the requested target format, or when the schemas handed to a converter
// do not apply to it.
type UnsupportedConversionError struct {
	Source Kind
	Target Format
	Reason string
}

func (e *UnsupportedConversionError) Error() string {
	msg := fmt.Sprintf("convert: %s data cannot be converted to %s data", e.Source, e.Target)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// MissingAuxiliaryDataError is returned when an array conversion lacks the
// out-of-band side data it needs (species labels, lattice, or array columns
// for a declared property).
type MissingAuxiliaryDataError struct {
	Field  string
	Reason string
}

func (e *MissingAuxiliaryDataError) Error() string {
	return fmt.Sprintf("convert: array input is missing %s: %s", e.Field, e.Reason)
}
