package github

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v57/github"
)

// ErrorKind classifies API failures at the client boundary.
type ErrorKind int

const (
	KindNetwork ErrorKind = iota
	KindNotFound
	KindAuth
	KindRateLimited
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindAuth:
		return "auth_failure"
	case KindRateLimited:
		return "rate_limited"
	default:
		return "network_error"
	}
}

// APIError wraps a GitHub API failure with the operation that produced
// it and its classified kind.
type APIError struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// wrapErr classifies an error returned by a go-github call.
func wrapErr(op string, err error) *APIError {
	kind := KindNetwork

	var rateErr *github.RateLimitError
	var abuseErr *github.AbuseRateLimitError
	var respErr *github.ErrorResponse
	switch {
	case errors.As(err, &rateErr), errors.As(err, &abuseErr):
		kind = KindRateLimited
	case errors.As(err, &respErr):
		switch respErr.Response.StatusCode {
		case http.StatusNotFound:
			kind = KindNotFound
		case http.StatusUnauthorized, http.StatusForbidden:
			kind = KindAuth
		}
	}

	return &APIError{Kind: kind, Op: op, Err: err}
}
