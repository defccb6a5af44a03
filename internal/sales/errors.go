package sales

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a sale with the given ID is not found.
var ErrNotFound = errors.New("sale not found")

// ErrEmptyID is returned when trying to store a sale with an empty ID.
var ErrEmptyID = errors.New("empty sale ID")

// Violation describes a single invalid field of a sale candidate.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every violation found in a sale candidate.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+" "+v.Message)
	}
	return "invalid sale: " + strings.Join(parts, "; ")
}

// DomainRuleError reports a business rule broken by a line item.
type DomainRuleError struct {
	Item   string
	Reason string
}

func (e *DomainRuleError) Error() string {
	return fmt.Sprintf("business rule violated for %q: %s", e.Item, e.Reason)
}
