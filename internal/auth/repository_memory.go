package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryUserRepository struct {
	mu    sync.Mutex
	users map[string]*User // keyed by email
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users: make(map[string]*User),
	}
}

func (r *InMemoryUserRepository) Save(ctx context.Context, user *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	r.users[user.Email] = user
	return nil
}

func (r *InMemoryUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.users[email]
	return exists, nil
}

func (r *InMemoryUserRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *InMemoryUserRepository) FindByID(ctx context.Context, id string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *InMemoryUserRepository) UpdateProfile(
	ctx context.Context,
	id string,
	profile *Profile,
) (*User, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID != id {
			continue
		}
		if profile.FullName != nil {
			u.FullName = *profile.FullName
		}
		if profile.CurrentWeightKg != nil {
			u.CurrentWeightKg = profile.CurrentWeightKg
		}
		if profile.TargetWeightKg != nil {
			u.TargetWeightKg = profile.TargetWeightKg
		}
		if profile.HeightCm != nil {
			u.HeightCm = profile.HeightCm
		}
		if profile.Age != nil {
			u.Age = profile.Age
		}
		if profile.ActivityLevel != nil {
			u.ActivityLevel = *profile.ActivityLevel
		}
		copied := *u
		return &copied, nil
	}
	return nil, ErrUserNotFound
}
