package headerdecoder

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorKind classifies a decode failure
type ErrorKind int

const (
	// KindType indicates the input was not object-shaped, or a value was not a string
	KindType ErrorKind = iota
	// KindInvalidName indicates a key failed header-name grammar validation
	KindInvalidName
	// KindInvalidValue indicates a value failed header-value grammar validation
	KindInvalidValue
)

func (k ErrorKind) String() string {
	switch k {
	case KindType:
		return "type error"
	case KindInvalidName:
		return "invalid header name"
	case KindInvalidValue:
		return "invalid header value"
	default:
		return "unknown error"
	}
}

// DecodeError describes why a header map could not be decoded.
// Key names the offending entry when the failure is tied to one.
type DecodeError struct {
	Kind    ErrorKind
	Key     string
	Message string
}

func (e *DecodeError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: header %q: %s", e.Kind, e.Key, e.Message)
}

// GRPCStatus classifies every decode failure as an invalid argument, so the
// error crosses a gRPC boundary with the right code. Recognized by
// status.FromError.
func (e *DecodeError) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}

// AsDecodeError unwraps err into a *DecodeError if it is one.
func AsDecodeError(err error) (*DecodeError, bool) {
	var de *DecodeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

func typeError(key, message string) *DecodeError {
	return &DecodeError{Kind: KindType, Key: key, Message: message}
}

func invalidName(key, message string) *DecodeError {
	return &DecodeError{Kind: KindInvalidName, Key: key, Message: message}
}

func invalidValue(key, message string) *DecodeError {
	return &DecodeError{Kind: KindInvalidValue, Key: key, Message: message}
}
