package services

import (
	"fmt"
	"strings"
)

// ValidationError reports required fields that were missing or malformed.
// No side effect has been performed when it is returned.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	reason := e.Reason
	if reason == "" {
		reason = "missing required fields"
	}
	return reason + ": " + strings.Join(e.Fields, ", ")
}

// NotFoundError reports a record that vanished between load and action.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ConflictError reports a status transition the lifecycle does not allow.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// StoreError wraps a storage failure. State is left unchanged and the
// triggering action is retryable.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return "store: " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
