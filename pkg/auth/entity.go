package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleHRManager   Role = "HR_MANAGER"
	RoleTeamManager Role = "TEAM_MANAGER"
	RoleEmployee    Role = "EMPLOYEE"
	RoleRecruiter   Role = "RECRUITER"
)

func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	switch r {
	case RoleAdmin, RoleHRManager, RoleTeamManager, RoleEmployee, RoleRecruiter:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

type UserStatus string

const (
	UserActive  UserStatus = "ACTIVE"
	UserPending UserStatus = "PENDING"
	UserLocked  UserStatus = "LOCKED"
)

// User is a domain entity representing a system user.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	Status       UserStatus
	CreatedAt    time.Time
}

// Actor is the authenticated user behind a request.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }
