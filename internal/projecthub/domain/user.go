package domain

import "time"

type User struct {
	ID           string
	Name         string
	Email        string // lower-cased, trimmed
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserRef is the public profile embedded in other views.
type UserRef struct {
	ID    string
	Name  string
	Email string
}

func (u User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
}
