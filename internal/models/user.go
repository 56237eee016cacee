package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name     string `json:"name" example:"Abebe Bikila"`
	Email    string `gorm:"unique" json:"email" example:"abebe@example.com"`
	Password string `json:"-"`
}
