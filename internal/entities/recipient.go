package entities

import "time"

type Recipient struct {
	ID         int64
	Name       string
	Street     string
	Number     string
	Complement string
	State      string
	City       string
	ZipCode    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
