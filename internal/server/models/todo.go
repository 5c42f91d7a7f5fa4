package models

// Todo is a task row. OwnerID scopes it to the account that created it.
type Todo struct {
	ID          int64
	Title       string
	Description string
	Priority    int
	Complete    bool
	OwnerID     int64
}
