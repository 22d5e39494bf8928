package wordreference

import "fmt"

// FetchError is returned when the definition page could not be downloaded.
// StatusCode is zero for transport failures.
type FetchError struct {
	Word       string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %q: status code %d", e.Word, e.StatusCode)
	}
	return fmt.Sprintf("fetch %q: %v", e.Word, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a downloaded page could not be processed.
type ParseError struct {
	Word string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Word, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
