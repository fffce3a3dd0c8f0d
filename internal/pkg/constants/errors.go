package constants

import (
	"errors"
	"net/http"
)

type CodedError struct {
	code int
	msg  string
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound    = NewCodedError("not found", http.StatusNotFound)
	ErrUnauthorized  = NewCodedError("unauthorized", http.StatusUnauthorized)
	ErrBadRequest    = NewCodedError("bad request", http.StatusBadRequest)
	ErrUnknownSource = NewCodedError("unknown source table", http.StatusBadRequest)
	ErrRunNotFound   = NewCodedError("run not found", http.StatusNotFound)
	ErrRunInProgress = NewCodedError("another run is in progress", http.StatusConflict)

	// ErrMapping marks a single record that could not be mapped. It never aborts a batch.
	ErrMapping = errors.New("mapping failed")
	// ErrBatchFailed is returned after the upsert of a batch exhausted its retries.
	ErrBatchFailed = errors.New("batch failed")
)
