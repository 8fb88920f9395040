// Package models defines the client-side records of the forum: users, posts
// and the inputs accepted when creating them.
package models

// User is a directory account. The whole record, password included, is what
// gets persisted as the active session.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
}
