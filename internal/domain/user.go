package domain

// User is a backend account as listed for filter options.
type User struct {
	Username string
}
