package models

// User is the persisted account record. PasswordHash is a bcrypt digest and
// must never appear in an outward-facing representation; see dto.UserResponse.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	IsActive     bool
	FirstName    *string
	LastName     *string
}

// FullName resolves the display name: first+last when both are set, first
// name alone when only it is set, the email otherwise.
func (u *User) FullName() string {
	switch {
	case u.FirstName != nil && u.LastName != nil:
		return *u.FirstName + " " + *u.LastName
	case u.FirstName != nil:
		return *u.FirstName
	default:
		return u.Email
	}
}
