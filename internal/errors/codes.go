package errors

// ErrorCode represents a standardized error code used throughout the back office
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_006"
)

// Customer error codes (CUSTOMER_*)
const (
	CustomerNotFound ErrorCode = "CUSTOMER_001"
	CustomerInvalid  ErrorCode = "CUSTOMER_002"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound              ErrorCode = "ACCOUNT_001"
	AccountAlreadyClosed         ErrorCode = "ACCOUNT_002"
	AccountInvalidType           ErrorCode = "ACCOUNT_003"
	AccountNumberExhausted       ErrorCode = "ACCOUNT_004"
	AccountOperationNotPermitted ErrorCode = "ACCOUNT_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound       ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount  ErrorCode = "TRANSACTION_002"
	TransactionInvalidType    ErrorCode = "TRANSACTION_003"
	TransactionNotCancellable ErrorCode = "TRANSACTION_004"
	TransactionInvalidStatus  ErrorCode = "TRANSACTION_005"
)

// Loan error codes (LOAN_*)
const (
	LoanNotFound           ErrorCode = "LOAN_001"
	LoanNotPending         ErrorCode = "LOAN_002"
	LoanNotActive          ErrorCode = "LOAN_003"
	LoanInvalidPayment     ErrorCode = "LOAN_004"
	LoanPaymentExceedsDebt ErrorCode = "LOAN_005"
)

// Store error codes (STORE_*)
const (
	StoreRecordNotFound    ErrorCode = "STORE_001"
	StorePersistenceFailed ErrorCode = "STORE_002"
	StoreVersionConflict   ErrorCode = "STORE_003"
	StoreUnknownCollection ErrorCode = "STORE_004"
	StoreMalformedPayload  ErrorCode = "STORE_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemConfigurationError ErrorCode = "SYSTEM_003"
	SystemInvalidCommand     ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidEmail:  "Invalid email address format",
	ValidationInvalidDate:   "Invalid date format",

	// Customer errors
	CustomerNotFound: "Customer not found",
	CustomerInvalid:  "Customer record is invalid",

	// Account errors
	AccountNotFound:              "Account not found",
	AccountAlreadyClosed:         "Account is already closed",
	AccountInvalidType:           "Invalid account type",
	AccountNumberExhausted:       "Could not allocate a unique account number",
	AccountOperationNotPermitted: "Account operation not permitted",

	// Transaction errors
	TransactionNotFound:       "Transaction not found",
	TransactionInvalidAmount:  "Invalid transaction amount",
	TransactionInvalidType:    "Invalid transaction type",
	TransactionNotCancellable: "Transaction cannot be cancelled in its current status",
	TransactionInvalidStatus:  "Invalid transaction status",

	// Loan errors
	LoanNotFound:           "Loan not found",
	LoanNotPending:         "Only pending loans can be approved",
	LoanNotActive:          "Payments can only be applied to active loans",
	LoanInvalidPayment:     "Loan payment amount must be positive",
	LoanPaymentExceedsDebt: "Loan payment exceeds the outstanding balance",

	// Store errors
	StoreRecordNotFound:    "Record not found",
	StorePersistenceFailed: "The collection could not be read or written",
	StoreVersionConflict:   "The collection was modified concurrently, retry the operation",
	StoreUnknownCollection: "Unknown collection",
	StoreMalformedPayload:  "Stored collection could not be decoded",

	// System errors
	SystemInternalError:      "An unexpected error occurred",
	SystemDatabaseError:      "Database connection error",
	SystemConfigurationError: "System configuration error",
	SystemInvalidCommand:     "Invalid command or arguments",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
