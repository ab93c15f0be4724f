package service

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsValidation(t *testing.T) {
	err := &ValidationError{Field: "name", Reason: "must not be empty"}
	if !IsValidation(err) {
		t.Error("expected validation match")
	}
	if !IsValidation(fmt.Errorf("add user: %w", err)) {
		t.Error("expected match through wrapping")
	}
	if IsValidation(errors.New("boom")) {
		t.Error("unexpected match")
	}
}

func TestIsNotFound(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"not found error", &NotFoundError{Resource: "task", ID: "t1"}, true},
		{"remote 404", &RemoteError{Op: "delete task", Status: 404}, true},
		{"remote 500", &RemoteError{Op: "delete task", Status: 500}, false},
		{"wrapped", fmt.Errorf("x: %w", &NotFoundError{Resource: "user", ID: "u1"}), true},
		{"plain", errors.New("boom"), false},
		{"nil", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsNotFound(tc.err); got != tc.want {
				t.Errorf("IsNotFound(%v) = %v, want %v", tc.err, got, tc.want)
			}
		})
	}
}

func TestRemoteError_Message(t *testing.T) {
	withStatus := &RemoteError{Op: "list users", Status: 503}
	if got := withStatus.Error(); got != "list users: backend returned 503" {
		t.Errorf("got %q", got)
	}

	cause := errors.New("connection refused")
	transport := &RemoteError{Op: "list users", Err: cause}
	if got := transport.Error(); got != "list users: connection refused" {
		t.Errorf("got %q", got)
	}
	if !errors.Is(transport, cause) {
		t.Error("cause must unwrap")
	}
}
