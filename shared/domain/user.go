package domain

// User is the identity supplied by the session collaborator.
// Anonymous requests carry no user at all.
type User struct {
	Id       UserId
	Username Username
}
