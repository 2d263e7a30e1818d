package types

import "fmt"

// ExecError represents a hard failure in the execution engine. Soft
// failures (business rejections) travel inside OrderResponse instead.
type ExecError struct {
	Kind       ExecErrorKind
	Message    string
	HTTPStatus int // upstream status code when the failure came off the wire, else 0
	Wrapped    error
}

// ExecErrorKind defines the specific category of execution error.
type ExecErrorKind int

const (
	AuthRequiredError ExecErrorKind = iota
	ContractNotFoundError
	TransportError
	InvalidResponseError
	ConfigLoadingError
)

// Error implements the error interface for ExecError.
func (e *ExecError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind.String(), e.Message, e.Wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Kind.String(), e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *ExecError) Unwrap() error {
	return e.Wrapped
}

// String returns a string representation of the ExecErrorKind.
func (k ExecErrorKind) String() string {
	switch k {
	case AuthRequiredError:
		return "Authentication required"
	case ContractNotFoundError:
		return "Contract not found"
	case TransportError:
		return "Transport error"
	case InvalidResponseError:
		return "Invalid response"
	case ConfigLoadingError:
		return "Config loading failed"
	default:
		return "Unknown execution error"
	}
}

// NewAuthRequiredError creates a new AuthRequiredError.
func NewAuthRequiredError(message string) *ExecError {
	return &ExecError{Kind: AuthRequiredError, Message: message}
}

// NewContractNotFoundError creates a new ContractNotFoundError.
func NewContractNotFoundError(message string) *ExecError {
	return &ExecError{Kind: ContractNotFoundError, Message: message}
}

// NewTransportError creates a new TransportError wrapping the cause.
func NewTransportError(message string, wrapped error) *ExecError {
	return &ExecError{Kind: TransportError, Message: message, Wrapped: wrapped}
}

// NewInvalidResponseError creates a new InvalidResponseError.
func NewInvalidResponseError(message string) *ExecError {
	return &ExecError{Kind: InvalidResponseError, Message: message}
}

// NewConfigLoadingError creates a new ConfigLoadingError wrapping the cause.
func NewConfigLoadingError(message string, wrapped error) *ExecError {
	return &ExecError{Kind: ConfigLoadingError, Message: message, Wrapped: wrapped}
}
