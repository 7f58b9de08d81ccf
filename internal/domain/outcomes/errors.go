package outcomes

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrLoad         = errors.New("dataset load failed")
	ErrUnknownView  = errors.New("unknown view")
)

// LoadError describe una falla al cargar/normalizar el dataset.
// Row es 1-based sobre las filas de datos (0 = no aplica).
type LoadError struct {
	Source string
	Row    int
	Err    error
}

func (e *LoadError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("load %s: row %d: %v", e.Source, e.Row, e.Err)
	}
	return fmt.Sprintf("load %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

func (e *LoadError) Is(target error) bool { return target == ErrLoad }

// ValidationError indica parámetros de filtro/consulta contradictorios o mal formados.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// WarnEmptyResult no es un error: se reporta en Result.Warnings.
const WarnEmptyResult = "no records match the filters"
