package model

// Currency is a lookup entity referenced by vendors and customers
type Currency struct {
	Base
	Code   string `gorm:"column:code;size:8;not null;uniqueIndex"`
	Name   string `gorm:"column:name;size:64;not null"`
	Symbol string `gorm:"column:symbol;size:8"`
}

func (Currency) TableName() string { return "currencies" }

// Gender is a lookup entity referenced by contacts
type Gender struct {
	Base
	Code string `gorm:"column:code;size:8;not null;uniqueIndex"`
	Name string `gorm:"column:name;size:32;not null"`
}

func (Gender) TableName() string { return "genders" }
