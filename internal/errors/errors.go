package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrAlreadyExists   = errors.New("configuration already exists")
	ErrProfileNotFound = errors.New("profile not found")
	ErrUnknownSource   = errors.New("unknown hook source")
	ErrEmptyPayload    = errors.New("empty hook payload")
)

// MapperError wraps errors with the hook source that produced them
type MapperError struct {
	Source string
	Op     string
	Err    error
}

func (e *MapperError) Error() string {
	return fmt.Sprintf("mapper %s: %s: %v", e.Source, e.Op, e.Err)
}

func (e *MapperError) Unwrap() error {
	return e.Err
}

// NewMapperError creates a new mapper error
func NewMapperError(source, op string, err error) *MapperError {
	return &MapperError{Source: source, Op: op, Err: err}
}

// RuleError wraps errors with rule context
type RuleError struct {
	Rule string
	Op   string
	Err  error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %s: %s: %v", e.Rule, e.Op, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

// NewRuleError creates a new rule error
func NewRuleError(rule, op string, err error) *RuleError {
	return &RuleError{Rule: rule, Op: op, Err: err}
}

// PathError wraps errors with path context
type PathError struct {
	Path string
	Op   string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// NewPathError creates a new path error
func NewPathError(path, op string, err error) *PathError {
	return &PathError{Path: path, Op: op, Err: err}
}
