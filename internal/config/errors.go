package config

import (
	"fmt"
	"strings"
)

// TemplateError represents a structured error that occurs while loading or
// validating a custom node template.
type TemplateError struct {
	FilePath  string `json:"filePath"`  // Full path to the file that caused the error
	FileName  string `json:"fileName"`  // Base name of the file
	ErrorType string `json:"errorType"` // Type of error (parse, validation, io)
	Message   string `json:"message"`   // Human-readable error message
}

// Error implements the error interface.
func (te TemplateError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", te.ErrorType, te.FileName, te.Message)
}

// TemplateErrorCollection holds multiple template errors.
type TemplateErrorCollection struct {
	Errors []TemplateError `json:"errors"`
}

// Error implements the error interface for the collection.
func (tec TemplateErrorCollection) Error() string {
	if len(tec.Errors) == 0 {
		return "no template errors"
	}
	if len(tec.Errors) == 1 {
		return tec.Errors[0].Error()
	}
	return fmt.Sprintf("%d template errors: %s (and %d more)",
		len(tec.Errors), tec.Errors[0].Error(), len(tec.Errors)-1)
}

// HasErrors returns true if there are any errors in the collection.
func (tec *TemplateErrorCollection) HasErrors() bool {
	return len(tec.Errors) > 0
}

// Add appends an error to the collection.
func (tec *TemplateErrorCollection) Add(err TemplateError) {
	tec.Errors = append(tec.Errors, err)
}

// Summary returns a multi-line report of all collected errors.
func (tec *TemplateErrorCollection) Summary() string {
	var parts []string
	for _, e := range tec.Errors {
		parts = append(parts, "  - "+e.Error())
	}
	return strings.Join(parts, "\n")
}
