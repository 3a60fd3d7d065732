package domain

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleArtist  Role = "artist"
	RoleUser    Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleArtist, RoleUser:
		return true
	}
	return false
}

// User is a registered account as stored in the user list.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	Role         Role   `json:"role"`
}

func (u User) RecordID() string { return u.ID }

// Session is the password-stripped identity of the logged-in user.
type Session struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (u User) Session() Session {
	return Session{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
