package user

// User is the owner identity every expense and budget record belongs to.
type User struct {
	Id          string
	DisplayName string
}
