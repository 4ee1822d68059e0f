package services

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	// KindConfig means a required credential is missing. No upstream call was made.
	KindConfig ErrorKind = iota + 1
	// KindUpstream covers transport failures, timeouts, non-2xx statuses and unexpected shapes.
	KindUpstream
	// KindNotFound means discovery returned nothing after the keyword fallback.
	KindNotFound
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindUpstream:
		return "upstream"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error carries a caller-safe Message and the real cause in Err.
// Only Message is ever written to a response.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func configError(message string, err error) *Error {
	return &Error{Kind: KindConfig, Message: message, Err: err}
}

func upstreamError(message string, err error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: err}
}

func notFoundError(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// KindOf reports the kind of a services error, or 0 if err is not one.
func KindOf(err error) ErrorKind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return 0
}

// Caller-facing messages.
const (
	msgGeminiNotConfigured = "Gemini API key is not configured."
	msgGeminiFailed        = "Failed to call Gemini API"
	msgExaNotConfigured    = "Exa API key is not configured."
	msgExaFailed           = "Failed to call Exa API"
	msgKeysNotConfigured   = "API keys are not configured."
	msgDiscoverFailed      = "Failed to search for explanations."
	msgNoSearchResults     = "No search results found."
	msgFetchFailed         = "Failed to get content for explanations."
	msgSynthesizeFailed    = "Failed to synthesize explanation."
)
