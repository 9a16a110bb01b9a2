package envelope

import (
	"errors"
	"slices"

	"github.com/danmuck/ocppcodec/internal/protocol"
)

// ErrorCode is the errorCode element of a CallError frame.
type ErrorCode string

const (
	NotImplemented                ErrorCode = "NotImplemented"
	NotSupported                  ErrorCode = "NotSupported"
	InternalError                 ErrorCode = "InternalError"
	ProtocolError                 ErrorCode = "ProtocolError"
	SecurityError                 ErrorCode = "SecurityError"
	FormationViolation            ErrorCode = "FormationViolation"
	PropertyConstraintViolation   ErrorCode = "PropertyConstraintViolation"
	OccurenceConstraintViolation  ErrorCode = "OccurenceConstraintViolation"
	TypeConstraintViolation       ErrorCode = "TypeConstraintViolation"
	GenericError                  ErrorCode = "GenericError"
	FormatViolation               ErrorCode = "FormatViolation"
	MessageTypeNotSupported       ErrorCode = "MessageTypeNotSupported"
	RpcFrameworkError             ErrorCode = "RpcFrameworkError"
	OccurrenceConstraintViolation ErrorCode = "OccurrenceConstraintViolation"
)

// OCPP 1.6 spells "Occurence" with one r; 2.0 keeps that literal and adds
// the corrected spelling.
var (
	codesV16 = []ErrorCode{
		NotImplemented, NotSupported, InternalError, ProtocolError, SecurityError,
		FormationViolation, PropertyConstraintViolation, OccurenceConstraintViolation,
		TypeConstraintViolation, GenericError,
	}
	codesV20 = append(slices.Clone(codesV16),
		FormatViolation, MessageTypeNotSupported, RpcFrameworkError, OccurrenceConstraintViolation,
	)
)

// ErrorCodes lists the error codes a peer of version may send.
func ErrorCodes(version protocol.Version) []ErrorCode {
	switch version {
	case protocol.V16:
		return slices.Clone(codesV16)
	case protocol.V20:
		return slices.Clone(codesV20)
	default:
		return nil
	}
}

func (c ErrorCode) ValidFor(version protocol.Version) bool {
	switch version {
	case protocol.V16:
		return slices.Contains(codesV16, c)
	case protocol.V20:
		return slices.Contains(codesV20, c)
	default:
		return false
	}
}

// UnknownUniqueID is the id of a CallError answering a frame whose own id
// could not be read.
const UnknownUniqueID = "-1"

// ErrorReply builds the CallError a receiver sends back for a failure from
// Parse or Decode. errorDetails carries the failure class and, where known,
// the field path.
func ErrorReply(err error, version protocol.Version) *CallError {
	reply := &CallError{
		UniqueID:         UnknownUniqueID,
		ErrorCode:        InternalError,
		ErrorDescription: err.Error(),
		ErrorDetails:     map[string]any{},
	}
	var fe *FrameError
	if errors.As(err, &fe) {
		reply.UniqueID = fe.UniqueID
		reply.ErrorDescription = fe.Err.Error()
	}

	class := protocol.ErrorClass(err)
	if class != "" {
		reply.ErrorDetails["class"] = class
	}
	if path, ok := protocol.ErrorPath(err); ok && path != "" {
		reply.ErrorDetails["path"] = path
	}

	switch class {
	case "UnknownAction":
		reply.ErrorCode = NotImplemented
	case "MissingField":
		reply.ErrorCode = ProtocolError
	case "TypeMismatch":
		reply.ErrorCode = TypeConstraintViolation
	case "InvalidEnumValue":
		reply.ErrorCode = PropertyConstraintViolation
		var enum *protocol.InvalidEnumValueError
		if errors.As(err, &enum) {
			allowed := make([]any, len(enum.Allowed))
			for i, a := range enum.Allowed {
				allowed[i] = a
			}
			reply.ErrorDetails["allowed"] = allowed
		}
	case "MalformedTimestamp", "ConstraintViolation":
		reply.ErrorCode = PropertyConstraintViolation
	case "MalformedEnvelope":
		reply.ErrorCode = GenericError
		if version == protocol.V20 {
			reply.ErrorCode = RpcFrameworkError
			var me *protocol.MalformedEnvelopeError
			if errors.As(err, &me) && me.UnsupportedType {
				reply.ErrorCode = MessageTypeNotSupported
			}
		}
	}
	return reply
}
