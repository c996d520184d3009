// Package httperr carries request failures from the controllers to the
// JSON error body {"error": "<message>"}.
package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Kind int

const (
	StoreFailure Kind = iota
	InvalidID
	MissingFields
	InvalidEnum
	InvalidBody
	NotFound
	HasDependents
)

func (k Kind) String() string {
	switch k {
	case InvalidID:
		return "InvalidId"
	case MissingFields:
		return "MissingFields"
	case InvalidEnum:
		return "InvalidEnum"
	case InvalidBody:
		return "InvalidBody"
	case NotFound:
		return "NotFound"
	case HasDependents:
		return "HasDependents"
	default:
		return "StoreFailure"
	}
}

func (k Kind) Status() int {
	switch k {
	case InvalidID, MissingFields, InvalidEnum, InvalidBody, HasDependents:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Store wraps a persistence error behind a generic client-facing message.
func Store(err error, message string) *Error {
	return &Error{Kind: StoreFailure, Message: message, Err: err}
}

func BadID(message string) *Error { return New(InvalidID, message) }
func Missing(message string) *Error { return New(MissingFields, message) }
func Enum(message string) *Error { return New(InvalidEnum, message) }
func Invalid(message string) *Error { return New(InvalidBody, message) }
func Absent(message string) *Error { return New(NotFound, message) }

// Write renders err. Anything that is not an *Error is an internal failure.
func Write(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = Store(err, "Internal server error")
	}

	entry := logrus.WithFields(logrus.Fields{
		"kind":   e.Kind.String(),
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	})
	if e.Kind == StoreFailure {
		entry.WithError(e.Err).Error(e.Message)
	} else {
		entry.Warn(e.Message)
	}

	c.AbortWithStatusJSON(e.Kind.Status(), gin.H{"error": e.Message})
}
