package screen

import "fmt"

// TemplateError represents an error parsing or executing the page template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a failure serialising the visual tree
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// OutlineError represents a failure parsing rendered HTML
type OutlineError struct {
	Message string
	Cause   error
}

func (e *OutlineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("outline error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("outline error: %s", e.Message)
}

func (e *OutlineError) Unwrap() error {
	return e.Cause
}
