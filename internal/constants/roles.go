package constants

import (
	"database/sql/driver"
	"fmt"
)

// Role mirrors the `role` column of the users table
type Role string

const (
	RoleTeamMember   Role = "team_member"
	RoleProductOwner Role = "product_owner"
)

// Stringer ­– convenient for fmt / logs
func (r Role) String() string { return string(r) }

// Valid reports whether the role is one of the registerable roles.
func (r Role) Valid() bool {
	return r == RoleTeamMember || r == RoleProductOwner
}

// DisplayName returns the human-readable role label used in digests.
func (r Role) DisplayName() string {
	switch r {
	case RoleTeamMember:
		return "Team Member"
	case RoleProductOwner:
		return "Product Owner"
	default:
		return string(r)
	}
}

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *Role) Scan(src interface{}) error {
	if src == nil {
		*r = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = Role(v)
	case []byte:
		*r = Role(v)
	default:
		return fmt.Errorf("Role: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r Role) Value() (driver.Value, error) { return string(r), nil }
