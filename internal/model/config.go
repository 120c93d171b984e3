package model

import "gorm.io/datatypes"

// Config is a named application configuration record with a free-form
// JSON value.
type Config struct {
	Base
	Name        string         `gorm:"column:name;size:64;not null;uniqueIndex"`
	Value       datatypes.JSON `gorm:"column:value"`
	Description string         `gorm:"column:description;size:256"`
}

func (Config) TableName() string { return "configs" }

// NumberSequence backs document-number generation (vendor/customer numbers).
// LastValue is advanced under a row lock.
type NumberSequence struct {
	Base
	Name      string `gorm:"column:name;size:64;not null;uniqueIndex"`
	Prefix    string `gorm:"column:prefix;size:16"`
	Padding   int    `gorm:"column:padding;not null;default:6"`
	LastValue int64  `gorm:"column:last_value;not null;default:0"`
}

func (NumberSequence) TableName() string { return "number_sequences" }
