package entities

import "time"

type Principal struct {
	UserID    int64
	IsAdmin   bool
	ExpiresAt time.Time
}
