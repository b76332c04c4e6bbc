package domain

import "errors"

var ErrRootRoleImmutable = errors.New("root account role cannot be changed")
var ErrRootEmailImmutable = errors.New("root account email cannot be changed")
var ErrRootCannotBeDeactivated = errors.New("root account cannot be deactivated")

// RootGuard protects the designated root administrator account. Whether a
// target is root is decided by comparing its stored email to the fixed root
// email before any proposed change is applied.
type RootGuard struct {
	rootEmail string
}

func NewRootGuard(rootEmail string) RootGuard {
	return RootGuard{rootEmail: rootEmail}
}

// IsRoot reports whether the given stored email designates the root account.
func (g RootGuard) IsRoot(email string) bool {
	return email == g.rootEmail
}

// Check rejects any update that would strip the root account of its
// administrator role, change its email, or deactivate it. The checks run in
// a fixed order and each one fails the entire mutation; nothing is ever
// partially applied. Non-root targets pass unconditionally.
func (g RootGuard) Check(target *User, upd UserUpdate) error {
	if !g.IsRoot(target.Email) {
		return nil
	}
	if upd.RoleSet && upd.Role != RoleAdmin {
		return ErrRootRoleImmutable
	}
	if upd.EmailSet && upd.Email != g.rootEmail {
		return ErrRootEmailImmutable
	}
	if upd.ActiveSet && !upd.Active {
		return ErrRootCannotBeDeactivated
	}
	return nil
}
