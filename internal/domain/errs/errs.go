// Package errs define la taxonomía de errores compartida por todos los módulos de dominio.
// Cada error expone un Kind estable que los handlers traducen a status HTTP.
package errs

import (
	"errors"
	"fmt"
	"strings"
)

type Kind string

const (
	KindNotFound          Kind = "NotFound"
	KindValidation        Kind = "ValidationError"
	KindInvalidDateRange  Kind = "InvalidDateRange"
	KindNoVisitFound      Kind = "NoVisitFound"
	KindTransactionFailed Kind = "TransactionFailed"
	KindStoreTimeout      Kind = "StoreTimeout"
	KindInternal          Kind = "Internal"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation failed")
	ErrInvalidDateRange  = errors.New("start date is after end date")
	ErrNoVisitFound      = errors.New("no medical visit found for animal")
	ErrTransactionFailed = errors.New("transaction failed")
	ErrStoreTimeout      = errors.New("store timeout")
)

// ValidationError lista todos los campos faltantes o inválidos (no solo el primero).
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	return fmt.Sprintf("%s: missing or invalid fields: %s", ErrValidation, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Has indica si field está entre los campos reportados.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f == field {
			return true
		}
	}
	return false
}

// TxError envuelve la falla de un paso dentro de una unidad de trabajo.
// Siempre se considera reintentable: la transacción no dejó cambios aplicados.
type TxError struct {
	Op   string
	Step string
	Err  error
}

func (e *TxError) Error() string {
	if e.Step == "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, ErrTransactionFailed, e.Err)
	}
	return fmt.Sprintf("%s: %s at step %q: %v", e.Op, ErrTransactionFailed, e.Step, e.Err)
}

func (e *TxError) Is(target error) bool { return target == ErrTransactionFailed }

func (e *TxError) Unwrap() error { return e.Err }

// NotFound arma un error NotFound con contexto de entidad.
func NotFound(entity, id string) error {
	return fmt.Errorf("%s %q: %w", entity, id, ErrNotFound)
}

// KindOf devuelve el Kind estable de err. nil devuelve "".
// TransactionFailed tiene prioridad sobre la causa envuelta.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTransactionFailed):
		return KindTransactionFailed
	case errors.Is(err, ErrStoreTimeout):
		return KindStoreTimeout
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrInvalidDateRange):
		return KindInvalidDateRange
	case errors.Is(err, ErrNoVisitFound):
		return KindNoVisitFound
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	default:
		return KindInternal
	}
}

// Retryable indica si el llamador puede reintentar la operación tal cual.
func Retryable(err error) bool {
	switch KindOf(err) {
	case KindTransactionFailed, KindStoreTimeout:
		return true
	default:
		return false
	}
}

// Fields devuelve los campos de un ValidationError envuelto en err, o nil.
func Fields(err error) []string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}
