package services

import (
	apperrors "backoffice/internal/errors"
	"backoffice/internal/models"
	"backoffice/internal/repositories"
	"backoffice/internal/store"
	"backoffice/internal/validation"
)

// ErrorRules maps the sentinels raised below the CLI onto error codes.
// Specific sentinels come before the generic store ones.
var ErrorRules = []apperrors.Rule{
	{Target: repositories.ErrCustomerNotFound, Code: apperrors.CustomerNotFound},
	{Target: repositories.ErrAccountNotFound, Code: apperrors.AccountNotFound},
	{Target: repositories.ErrTransactionNotFound, Code: apperrors.TransactionNotFound},
	{Target: repositories.ErrLoanNotFound, Code: apperrors.LoanNotFound},
	{Target: repositories.ErrMissingID, Code: apperrors.ValidationRequiredField},
	{Target: ErrIDMismatch, Code: apperrors.ValidationGeneral},
	{Target: ErrAccountNumberExhausted, Code: apperrors.AccountNumberExhausted},
	{Target: models.ErrInvalidAccountType, Code: apperrors.AccountInvalidType},
	{Target: models.ErrAccountAlreadyClosed, Code: apperrors.AccountAlreadyClosed},
	{Target: models.ErrInvalidAmount, Code: apperrors.TransactionInvalidAmount},
	{Target: models.ErrInvalidTransactionType, Code: apperrors.TransactionInvalidType},
	{Target: models.ErrInvalidTransactionStatus, Code: apperrors.TransactionInvalidStatus},
	{Target: models.ErrTransactionNotCancellable, Code: apperrors.TransactionNotCancellable},
	{Target: models.ErrDestinationRequired, Code: apperrors.ValidationRequiredField},
	{Target: models.ErrLoanNotPending, Code: apperrors.LoanNotPending},
	{Target: models.ErrLoanNotActive, Code: apperrors.LoanNotActive},
	{Target: models.ErrInvalidPayment, Code: apperrors.LoanInvalidPayment},
	{Target: models.ErrPaymentExceedsBalance, Code: apperrors.LoanPaymentExceedsDebt},
	{Target: models.ErrInvalidLoanTerm, Code: apperrors.ValidationOutOfRange},
	{Target: models.ErrInvalidPrincipal, Code: apperrors.ValidationOutOfRange},
	{Target: validation.ErrInvalid, Code: apperrors.ValidationGeneral},
	{Target: store.ErrNotFound, Code: apperrors.StoreRecordNotFound},
	{Target: store.ErrVersionConflict, Code: apperrors.StoreVersionConflict},
	{Target: store.ErrUnknownCollection, Code: apperrors.StoreUnknownCollection},
	{Target: store.ErrPersistence, Code: apperrors.StorePersistenceFailed},
}

// Classify converts err into an AppError using ErrorRules
func Classify(err error) *apperrors.AppError {
	return apperrors.Classify(err, ErrorRules)
}
