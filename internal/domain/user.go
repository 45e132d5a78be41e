package domain

// UserRecord is an opaque reference to a portal user. The engine never
// mutates users; it only denormalizes them into recommendation results.
type UserRecord struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
}
