package entity

import (
	"strings"
	"time"
)

// User is a ProjectForge account.
type User struct {
	Base
	Username           string     // Login name, unique.
	Firstname          *string    // Given name.
	Lastname           *string    // Family name.
	Email              *string    // Primary contact address.
	Locale             *string    // Preferred locale such as de_DE.
	TimeZone           *string    // IANA time zone such as Europe/Berlin.
	Description        *string    // Free text shown to administrators.
	Deactivated        bool       // Deactivated users may not log in.
	PasswordHash       string     // bcrypt hash, never written to history.
	LastLogin          *time.Time // Updated on login, never written to history.
	LastPasswordChange *time.Time // Set whenever the password hash changes.
	Restricted         bool       // Restricted users may not read any list.
	Demo               bool       // Demo users may not write and their preferences are not persisted.
}

// DisplayName renders "Firstname Lastname" and falls back to the username.
func (u *User) DisplayName() string {
	parts := make([]string, 0, 2)
	if u.Firstname != nil && *u.Firstname != "" {
		parts = append(parts, *u.Firstname)
	}
	if u.Lastname != nil && *u.Lastname != "" {
		parts = append(parts, *u.Lastname)
	}
	if len(parts) == 0 {
		return u.Username
	}

	return strings.Join(parts, " ")
}

// Group is a named set of users. Access rights are granted per group.
type Group struct {
	Base
	Name            string
	Description     *string
	AssignedUserIDs []int64
}

// HasUser reports whether the user is assigned to the group.
func (g *Group) HasUser(userID int64) bool {
	for _, id := range g.AssignedUserIDs {
		if id == userID {
			return true
		}
	}

	return false
}
