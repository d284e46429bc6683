package user

// Principal is the already-authenticated caller identity produced by the
// account service. The draft core never authenticates users itself.
type Principal struct {
	UserID   string
	Username string
}
