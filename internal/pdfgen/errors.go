package pdfgen

import "fmt"

// EncodeError wraps a failure reported by the encoder
type EncodeError struct {
	Message string
	Cause   error
}

func (e *EncodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("encode error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("encode error: %s", e.Message)
}

func (e *EncodeError) Unwrap() error {
	return e.Cause
}

// PageCountError is returned in strict mode when the PDF does not have exactly the expected page count
type PageCountError struct {
	Expected int
	Actual   int
}

func (e *PageCountError) Error() string {
	return fmt.Sprintf("page count error: expected %d page(s), got %d", e.Expected, e.Actual)
}
