package entities

import "time"

type File struct {
	ID        int64
	Name      string
	Path      string
	CreatedAt time.Time
}
