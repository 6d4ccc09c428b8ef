package errors

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test in the suite
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "test-trace-id-123"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(AccountNotFound, s.traceID)

	s.Equal(string(AccountNotFound), response.Error.Code)
	s.Equal("not_found", response.Error.Kind)
	s.Equal("Account not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithMultipleOptions() {
	response := NewErrorResponse(
		StorePersistenceFailed,
		s.traceID,
		WithMessage("accounts snapshot write failed"),
		WithDetails("disk full", "retry later"),
	)

	s.Equal("accounts snapshot write failed", response.Error.Message)
	s.Equal([]string{"disk full", "retry later"}, response.Error.Details)
	s.Equal("persistence_failed", response.Error.Kind)
}

func (s *ResponseTestSuite) TestNewValidationError_WithFieldErrors() {
	response := NewValidationError(map[string]string{
		"email": "must be a valid email",
	}, s.traceID)

	s.Equal(string(ValidationGeneral), response.Error.Code)
	s.Equal([]string{"email: must be a valid email"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestFromAppError_UsesCauseAsDetail() {
	appErr := New(LoanNotActive, errString("loan L-1 is pending"))

	response := FromAppError(appErr, s.traceID)

	s.Equal(string(LoanNotActive), response.Error.Code)
	s.Equal([]string{"loan L-1 is pending"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestFromAppError_PrefersExplicitDetails() {
	appErr := &AppError{Code: ValidationGeneral, Details: []string{"amount: must be >= 0"}, Err: errString("bad")}

	response := FromAppError(appErr, s.traceID)

	s.Equal([]string{"amount: must be >= 0"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestToJSON_ValidSerialization() {
	response := NewErrorResponse(CustomerNotFound, s.traceID, WithDetails("id C-1"))

	data, err := response.ToJSON()
	s.NoError(err)

	var decoded map[string]map[string]interface{}
	s.NoError(json.Unmarshal(data, &decoded))
	s.Equal("CUSTOMER_001", decoded["error"]["code"])
	s.Equal("not_found", decoded["error"]["kind"])
	s.Equal(s.traceID, decoded["error"]["trace_id"])
}

func (s *ResponseTestSuite) TestGetExitCode() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, 2},
		{LoanPaymentExceedsDebt, 2},
		{AccountNotFound, 3},
		{StoreRecordNotFound, 3},
		{StoreVersionConflict, 4},
		{LoanNotPending, 4},
		{StorePersistenceFailed, 5},
		{SystemInternalError, 1},
		{"UNKNOWN", 1},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetExitCode(tc.code))
			s.Equal(tc.expected, NewErrorResponse(tc.code, s.traceID).GetExitCode())
		})
	}
}

func (s *ResponseTestSuite) TestIsClientError() {
	s.True(NewErrorResponse(ValidationGeneral, s.traceID).IsClientError())
	s.True(NewErrorResponse(LoanNotFound, s.traceID).IsClientError())
	s.True(NewErrorResponse(StoreVersionConflict, s.traceID).IsClientError())
	s.False(NewErrorResponse(StorePersistenceFailed, s.traceID).IsClientError())
	s.False(NewErrorResponse(SystemInternalError, s.traceID).IsClientError())
}

func (s *ResponseTestSuite) TestString_FormatsCorrectly() {
	response := NewErrorResponse(AccountNotFound, s.traceID)
	s.Equal("[ACCOUNT_001] Account not found (trace: test-trace-id-123)", response.String())
}

type errString string

func (e errString) Error() string { return string(e) }
