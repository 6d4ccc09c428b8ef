package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// ErrInvalid is wrapped by every *Error returned from Struct.
var ErrInvalid = errors.New("validation failed")

var (
	accountNumberPattern = regexp.MustCompile(`^ACT\d{7}$`)
	clockTimePattern     = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d:[0-5]\d$`)
)

// Enumerations accepted by the custom tags. Kept here so the rules and the
// record constants cannot drift apart; models re-export them.
var (
	AccountTypes        = []string{"checking", "savings", "money_market", "cd", "ira"}
	AccountStatuses     = []string{"active", "inactive", "suspended", "closed"}
	CustomerStatuses    = []string{"active", "inactive", "pending"}
	TransactionTypes    = []string{"deposit", "withdrawal", "transfer", "payment", "refund"}
	TransactionStatuses = []string{"completed", "pending", "cancelled", "failed"}
	LoanStatuses        = []string{"pending", "active", "completed"}
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("account_number", validateAccountNumber)
	_ = v.RegisterValidation("account_type", oneOf(AccountTypes))
	_ = v.RegisterValidation("account_status", oneOf(AccountStatuses))
	_ = v.RegisterValidation("customer_status", oneOf(CustomerStatuses))
	_ = v.RegisterValidation("transaction_type", oneOf(TransactionTypes))
	_ = v.RegisterValidation("transaction_status", oneOf(TransactionStatuses))
	_ = v.RegisterValidation("loan_status", oneOf(LoanStatuses))
	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("clock_time", validateClockTime)

	// Money fields are decimals; numeric tags (gte, gt) see them as float64.
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and returns nil or an *Error describing each failing field.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = describe(fe)
	}
	return &Error{Fields: fields}
}

// Error lists failing fields by their JSON name.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalid, strings.Join(e.Details(), "; "))
}

func (e *Error) Unwrap() error {
	return ErrInvalid
}

// Details returns "field: message" lines sorted by field name.
func (e *Error) Details() []string {
	details := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		details = append(details, fmt.Sprintf("%s: %s", field, msg))
	}
	sort.Strings(details)
	return details
}

// FieldError builds a single-field *Error for rules the struct tags cannot express.
func FieldError(field, message string) *Error {
	return &Error{Fields: map[string]string{field: message}}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "gte":
		return "must be >= " + fe.Param()
	case "gt":
		return "must be > " + fe.Param()
	case "iso_date":
		return "must be a YYYY-MM-DD date"
	case "clock_time":
		return "must be a HH:MM:SS time"
	case "account_number":
		return "must be ACT followed by 7 digits"
	case "account_type":
		return "must be one of " + strings.Join(AccountTypes, ", ")
	case "account_status":
		return "must be one of " + strings.Join(AccountStatuses, ", ")
	case "customer_status":
		return "must be one of " + strings.Join(CustomerStatuses, ", ")
	case "transaction_type":
		return "must be one of " + strings.Join(TransactionTypes, ", ")
	case "transaction_status":
		return "must be one of " + strings.Join(TransactionStatuses, ", ")
	case "loan_status":
		return "must be one of " + strings.Join(LoanStatuses, ", ")
	default:
		return "failed " + fe.Tag()
	}
}

// Custom validation functions

func oneOf(allowed []string) validator.Func {
	set := make(map[string]bool, len(allowed))
	for _, a := range allowed {
		set[a] = true
	}
	return func(fl validator.FieldLevel) bool {
		return set[fl.Field().String()]
	}
}

// validateAccountNumber checks the ACT + 7 digit format
func validateAccountNumber(fl validator.FieldLevel) bool {
	return accountNumberPattern.MatchString(fl.Field().String())
}

func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(time.DateOnly, fl.Field().String())
	return err == nil
}

func validateClockTime(fl validator.FieldLevel) bool {
	return clockTimePattern.MatchString(fl.Field().String())
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}
