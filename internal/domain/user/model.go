package user

import "time"

type User struct {
	ID        int64
	Name      string
	Login     string
	Email     string
	Password  string // bcrypt hash, never the plaintext
	CreatedAt time.Time
}
