package models

import "gorm.io/gorm"

type Product struct {
	gorm.Model
	Name       string  `gorm:"not null"`
	Price      float64 `gorm:"not null"`
	Image      string  `gorm:"not null"`
	Unit       string  `gorm:"not null"`
	CategoryID uint    `gorm:"not null;index"`
}
