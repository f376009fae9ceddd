package client

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a failed API call for the person at the terminal
type ErrorKind int

const (
	// KindRequest is any failure that fits no other kind
	KindRequest ErrorKind = iota
	// KindConnection means the backend could not be reached
	KindConnection
	// KindTimeout means the request did not finish within the client timeout
	KindTimeout
	// KindHTTP means the backend answered with an error status
	KindHTTP
)

// Error is returned by every Client method
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Code       string
	Details    []string
	TraceID    string
	Err        error
}

func (e *Error) Error() string {
	if e.Kind != KindHTTP || len(e.Details) == 0 {
		return e.Message
	}
	return e.Message + " (" + strings.Join(e.Details, "; ") + ")"
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newConnectionError(baseURL string, err error) *Error {
	return &Error{
		Kind:    KindConnection,
		Message: fmt.Sprintf("接続エラー: バックエンドに接続できません (%s)", baseURL),
		Err:     err,
	}
}

func newTimeoutError(seconds float64, err error) *Error {
	return &Error{
		Kind:    KindTimeout,
		Message: fmt.Sprintf("タイムアウト: リクエストが%g秒以内に完了しませんでした", seconds),
		Err:     err,
	}
}

func newRequestError(err error) *Error {
	return &Error{
		Kind:    KindRequest,
		Message: fmt.Sprintf("リクエストエラー: %v", err),
		Err:     err,
	}
}
