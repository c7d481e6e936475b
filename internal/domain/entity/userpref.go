package entity

import "time"

// UserPref is one persisted preference value. (UserID, Area, Name) is unique.
type UserPref struct {
	ID         int64
	UserID     int64
	Area       string
	Name       string
	Value      string // JSON text
	LastUpdate time.Time
}
