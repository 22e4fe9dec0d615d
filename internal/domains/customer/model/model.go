package model

import (
	"fleetrental/shared/constant"
	"fleetrental/shared/failure"
)

const (
	EntityName = "customer"
)

// Account carries login credentials and the system role. The password
// field holds a bcrypt hash, never plaintext.
type Account struct {
	Username string
	Password string
	Role     string
}

// Customer is one entry of the registry. Identity fields are immutable
// after creation; customers are never deleted.
type Customer struct {
	ID      int
	Name    string
	Email   string
	Account Account
}

// RoleCode returns the single-character role code used in persisted
// customer records.
func RoleCode(role string) string {
	if role == constant.RoleAdmin {
		return constant.RoleCodeAdmin
	}
	return constant.RoleCodeCustomer
}

// RoleFromCode maps a persisted role code back to a role name.
func RoleFromCode(code string) (string, error) {
	switch code {
	case constant.RoleCodeAdmin:
		return constant.RoleAdmin, nil
	case constant.RoleCodeCustomer:
		return constant.RoleCustomer, nil
	default:
		return "", failure.CorruptRecord("unknown role code " + code)
	}
}
