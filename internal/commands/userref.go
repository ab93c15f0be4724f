package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"utask/internal/exitcode"
	"utask/internal/service"
	"utask/internal/store"
)

// ErrAmbiguousUser is returned when a name matches more than one user.
var ErrAmbiguousUser = errors.New("ambiguous user name")

// ResolveUser finds a user by ID, or by case-insensitive trimmed name when
// no ID matches. The store's Users collection must already be loaded.
func ResolveUser(st *store.Store, ref string) (service.User, error) {
	ref = strings.TrimSpace(ref)
	users := st.Users()

	for _, u := range users {
		if u.ID == ref {
			return u, nil
		}
	}

	refLower := strings.ToLower(ref)
	var matches []service.User
	for _, u := range users {
		if strings.ToLower(strings.TrimSpace(u.Name)) == refLower {
			matches = append(matches, u)
		}
	}

	switch len(matches) {
	case 0:
		return service.User{}, &service.NotFoundError{Resource: "user", ID: ref}
	case 1:
		return matches[0], nil
	default:
		return service.User{}, fmt.Errorf("%w: %s", ErrAmbiguousUser, ref)
	}
}

// selectUserByRef loads users, resolves ref, and makes that user the
// store's active selection. The shared preamble of every task command.
func selectUserByRef(ctx context.Context, st *store.Store, ref string) (service.User, error) {
	if err := st.LoadUsers(ctx); err != nil {
		return service.User{}, err
	}
	user, err := ResolveUser(st, ref)
	if err != nil {
		return service.User{}, err
	}
	if err := st.SelectUser(ctx, user); err != nil {
		return service.User{}, err
	}
	return user, nil
}

// fail prints err in the CLI's error format and maps it to an exit code:
// validation problems, unknown ids and ambiguous names are user errors,
// everything else is a backend error.
func fail(errOut io.Writer, err error) int {
	fmt.Fprintf(errOut, "error: %v\n", err)

	var nf *service.NotFoundError
	if service.IsValidation(err) || errors.As(err, &nf) || errors.Is(err, ErrAmbiguousUser) {
		return exitcode.UserError
	}
	return exitcode.BackendError
}
