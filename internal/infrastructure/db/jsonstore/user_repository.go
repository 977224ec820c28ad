package jsonstore

import (
	"context"
	"strings"

	"github.com/questlog/questlog/internal/core/domain"
)

// UserRepository implements ports.UserRepository over the document store.
type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	created := *user
	err := r.store.Update(func(doc *Document) error {
		for _, u := range doc.Users {
			if strings.EqualFold(u.Username, user.Username) {
				return domain.ErrUserExists
			}
		}
		created.UserID = doc.NextIDs.User
		doc.NextIDs.User++
		doc.Users = append(doc.Users, created)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var found *domain.User
	err := r.store.View(func(doc *Document) error {
		for i := range doc.Users {
			if strings.EqualFold(doc.Users[i].Username, username) {
				u := doc.Users[i]
				found = &u
				return nil
			}
		}
		return domain.ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	var found *domain.User
	err := r.store.View(func(doc *Document) error {
		for i := range doc.Users {
			if doc.Users[i].UserID == id {
				u := doc.Users[i]
				found = &u
				return nil
			}
		}
		return domain.ErrUserNotFound
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Update replaces the stored record. The uniqueness re-check excludes the
// user's own row, so saving an unchanged username is not a conflict.
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	return r.store.Update(func(doc *Document) error {
		idx := -1
		for i := range doc.Users {
			if doc.Users[i].UserID == user.UserID {
				idx = i
				continue
			}
			if strings.EqualFold(doc.Users[i].Username, user.Username) {
				return domain.ErrUserExists
			}
		}
		if idx < 0 {
			return domain.ErrUserNotFound
		}
		doc.Users[idx] = *user
		return nil
	})
}

func (r *UserRepository) AppendRefreshToken(ctx context.Context, userID int, token string) error {
	return r.store.Update(func(doc *Document) error {
		for i := range doc.Users {
			if doc.Users[i].UserID == userID {
				doc.Users[i].RefreshTokens = append(doc.Users[i].RefreshTokens, token)
				return nil
			}
		}
		return domain.ErrUserNotFound
	})
}
