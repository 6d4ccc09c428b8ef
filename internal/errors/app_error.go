package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is the outcome class of an operation. A nil error is KindOK.
type Kind int

const (
	KindOK Kind = iota
	KindNotFound
	KindPersistenceFailed
	KindConflict
	KindValidation
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindNotFound:
		return "not_found"
	case KindPersistenceFailed:
		return "persistence_failed"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	default:
		return "internal"
	}
}

// KindOf returns the outcome class for a registered error code
func KindOf(code ErrorCode) Kind {
	switch code {
	case CustomerNotFound, AccountNotFound, TransactionNotFound, LoanNotFound, StoreRecordNotFound:
		return KindNotFound
	case StorePersistenceFailed, StoreMalformedPayload, SystemDatabaseError:
		return KindPersistenceFailed
	case StoreVersionConflict, AccountAlreadyClosed, TransactionNotCancellable,
		LoanNotPending, LoanNotActive, AccountNumberExhausted:
		return KindConflict
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange, ValidationInvalidEmail, ValidationInvalidDate,
		CustomerInvalid, AccountInvalidType, AccountOperationNotPermitted,
		TransactionInvalidAmount, TransactionInvalidType, TransactionInvalidStatus,
		LoanInvalidPayment, LoanPaymentExceedsDebt, StoreUnknownCollection,
		SystemInvalidCommand:
		return KindValidation
	default:
		return KindInternal
	}
}

// AppError carries a registered code together with the underlying cause
type AppError struct {
	Code    ErrorCode
	Details []string
	Err     error
}

func New(code ErrorCode, err error) *AppError {
	return &AppError{Code: code, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Code, GetErrorMessage(e.Code))
	}
	return fmt.Sprintf("%s: %v", e.Code, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Kind returns the outcome class of the error code
func (e *AppError) Kind() Kind {
	return KindOf(e.Code)
}

// Rule maps a sentinel error onto a code. Rules are evaluated in order.
type Rule struct {
	Target error
	Code   ErrorCode
}

type detailer interface {
	Details() []string
}

// Classify converts any error into an AppError using the first matching rule.
// Errors that already are AppErrors are returned unchanged and nil stays nil.
func Classify(err error, rules []Rule) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	code := SystemInternalError
	for _, rule := range rules {
		if stderrors.Is(err, rule.Target) {
			code = rule.Code
			break
		}
	}

	classified := New(code, err)
	var d detailer
	if stderrors.As(err, &d) {
		classified.Details = d.Details()
	}
	return classified
}

// KindOfError returns the outcome class of err under the given rules
func KindOfError(err error, rules []Rule) Kind {
	if err == nil {
		return KindOK
	}
	return Classify(err, rules).Kind()
}
