package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email          string `gorm:"not null;unique"`
	FullName       string `gorm:"not null"`
	HashedPassword string `gorm:"not null"`
	IsActive       bool   `gorm:"not null;default:true"`
}
