package models

// Owned is implemented by every record that belongs to exactly one user.
// The ownership guard compares Owner() against the authenticated caller.
type Owned interface {
	Owner() int64
}
