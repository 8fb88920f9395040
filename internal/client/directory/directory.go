// Package directory is the in-memory user directory the client
// authenticates against. It starts from a fixed seed and grows through
// signups for the lifetime of the process; it is never persisted.
package directory

import (
	"sync"

	"github.com/dmitrijs2005/foorum/internal/client/models"
)

// DefaultAvatar is assigned to accounts created by signup.
const DefaultAvatar = "/dummy/default-avtar.jpg"

type Directory struct {
	mu    sync.RWMutex
	users []models.User
}

func New(seed ...models.User) *Directory {
	users := make([]models.User, len(seed))
	copy(users, seed)
	return &Directory{users: users}
}

// Default returns a directory holding the two demo accounts.
func Default() *Directory {
	return New(
		models.User{
			ID:       "1",
			Name:     "Demo User",
			Email:    "demo@example.com",
			Password: "password123",
			Avatar:   "/dummy/avtar1.jpeg",
		},
		models.User{
			ID:       "2",
			Name:     "Test User",
			Email:    "test@user.com",
			Password: "testpass",
			Avatar:   "/dummy/avtar2.jpeg",
		},
	)
}

func (d *Directory) FindByID(id string) (models.User, bool) {
	return d.find(func(u models.User) bool { return u.ID == id })
}

func (d *Directory) FindByEmail(email string) (models.User, bool) {
	return d.find(func(u models.User) bool { return u.Email == email })
}

// ValidateLogin looks up the first account with email and compares the
// password exactly. Unknown email and wrong password are indistinguishable.
func (d *Directory) ValidateLogin(email, password string) (models.User, bool) {
	u, ok := d.FindByEmail(email)
	if !ok || u.Password != password {
		return models.User{}, false
	}
	return u, true
}

func (d *Directory) EmailExists(email string) bool {
	_, ok := d.FindByEmail(email)
	return ok
}

// Append adds u as given. Uniqueness and id assignment are up to the caller.
func (d *Directory) Append(u models.User) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.users = append(d.users, u)
}

func (d *Directory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.users)
}

// AppendIfAbsent appends build(count) unless an account with email already
// exists. The check and the append happen under one lock.
func (d *Directory) AppendIfAbsent(email string, build func(count int) models.User) (models.User, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, u := range d.users {
		if u.Email == email {
			return models.User{}, false
		}
	}
	u := build(len(d.users))
	d.users = append(d.users, u)
	return u, true
}

func (d *Directory) find(match func(models.User) bool) (models.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, u := range d.users {
		if match(u) {
			return u, true
		}
	}
	return models.User{}, false
}
