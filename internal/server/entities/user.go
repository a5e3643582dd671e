package entities

// CreateUserSchema carries what a caller supplies for a new user; the store assigns the id.
type CreateUserSchema struct {
	Login string
}

type User struct {
	ID    int    `db:"id" json:"id"`
	Login string `db:"login" json:"login"`
}
