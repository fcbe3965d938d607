// Package errs holds the error kinds a daily thread run can fail with.
// Callers classify them with errors.As.
package errs

import (
	"fmt"
	"strings"
)

// AuthError reports that the provider session could not be authorized.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	return withCause("auth: "+e.Reason, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }

// ProtocolError reports a response whose shape or content was not what the
// provider's API is expected to return.
type ProtocolError struct {
	Op     string
	Reason string
	Err    error
}

func (e *ProtocolError) Error() string {
	return withCause(fmt.Sprintf("protocol: %s: %s", e.Op, e.Reason), e.Err)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// NetworkError reports a transport failure.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return withCause("network: "+e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// UnknownTagError reports a difficulty with no matching tag on the forum channel.
type UnknownTagError struct {
	Tag       string
	Available []string
}

func (e *UnknownTagError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("unknown tag %q: channel has no tags", e.Tag)
	}
	return fmt.Sprintf("unknown tag %q: available tags are %s", e.Tag, strings.Join(e.Available, ", "))
}

// ChannelNotFoundError reports a channel id that does not resolve to a forum channel.
type ChannelNotFoundError struct {
	ChannelID string
	Err       error
}

func (e *ChannelNotFoundError) Error() string {
	return withCause(fmt.Sprintf("channel %s not found", e.ChannelID), e.Err)
}

func (e *ChannelNotFoundError) Unwrap() error { return e.Err }

func withCause(msg string, err error) string {
	if err == nil {
		return msg
	}
	return msg + ": " + err.Error()
}
