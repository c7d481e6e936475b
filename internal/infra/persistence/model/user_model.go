package model

import (
	"time"
)

// UserModel mirrors the 't_pf_user' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement"`
	Deleted            bool      `gorm:"not null;default:false;index"`
	Created            time.Time `gorm:"not null"`
	LastUpdate         time.Time `gorm:"not null"`
	Username           string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Firstname          *string   `gorm:"type:varchar(255)"`
	Lastname           *string   `gorm:"type:varchar(255)"`
	Email              *string   `gorm:"type:varchar(255)"`
	Locale             *string   `gorm:"type:varchar(255)"`
	TimeZone           *string   `gorm:"column:time_zone;type:varchar(255)"`
	Description        *string   `gorm:"type:varchar(255)"`
	Deactivated        bool      `gorm:"not null;default:false"`
	PasswordHash       string    `gorm:"column:password;type:varchar(255)"`
	LastLogin          *time.Time
	LastPasswordChange *time.Time
	Restricted         bool   `gorm:"column:restricted_user;not null;default:false"`
	Demo               bool   `gorm:"not null;default:false"`
	SearchText         string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "t_pf_user"
}

// GroupModel mirrors the 't_group' table.
type GroupModel struct {
	ID            int64            `gorm:"primaryKey;autoIncrement"`
	Deleted       bool             `gorm:"not null;default:false;index"`
	Created       time.Time        `gorm:"not null"`
	LastUpdate    time.Time        `gorm:"not null"`
	Name          string           `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description   *string          `gorm:"type:varchar(1000)"`
	SearchText    string           `gorm:"type:text"`
	AssignedUsers []GroupUserModel `gorm:"foreignKey:GroupID"`
}

// TableName explicitly sets the table name for GORM.
func (GroupModel) TableName() string {
	return "t_group"
}

// GroupUserModel mirrors the 't_group_user' join table.
type GroupUserModel struct {
	GroupID int64 `gorm:"primaryKey;column:group_id"`
	UserID  int64 `gorm:"primaryKey;column:user_id;index"`
}

// TableName explicitly sets the table name for GORM.
func (GroupUserModel) TableName() string {
	return "t_group_user"
}

// UserPrefModel mirrors the 't_user_pref' table. (user_id, area, name) is unique.
type UserPrefModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	UserID     int64     `gorm:"not null;uniqueIndex:uq_user_pref_key"`
	Area       string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_user_pref_key"`
	Name       string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_user_pref_key"`
	Value      string    `gorm:"type:text"`
	LastUpdate time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (UserPrefModel) TableName() string {
	return "t_user_pref"
}
