package store

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pragyan-chakra/hazard-watch/internal/model"
)

// NewUserParams enumerates every field a registration supplies. Optional
// fields default to nil/false/0; an empty Role becomes RoleUser.
type NewUserParams struct {
	Username        string
	Password        string
	ProfilePic      *string
	Verified        bool
	CommunityPoints float64
	Role            model.Role
	OrganizationID  *string
	Jurisdiction    *string
}

// CreateUser registers a new account. The credential is bcrypt-hashed
// before it is stored. Returns ErrUsernameTaken when the username is
// already registered.
func (s *Store) CreateUser(p NewUserParams) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := strings.TrimSpace(p.Username)
	for _, u := range s.users {
		if u.Username == name {
			return model.User{}, ErrUsernameTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), s.bcryptCost)
	if err != nil {
		return model.User{}, err
	}

	role := p.Role
	if role == "" {
		role = model.RoleUser
	}

	u := model.User{
		ID:              uuid.NewString(),
		Username:        name,
		PasswordHash:    string(hash),
		ProfilePic:      p.ProfilePic,
		Verified:        p.Verified,
		CommunityPoints: p.CommunityPoints,
		Role:            role,
		OrganizationID:  p.OrganizationID,
		Jurisdiction:    p.Jurisdiction,
	}
	s.users[u.ID] = u
	return u, nil
}

// GetUser fetches a user by id.
func (s *Store) GetUser(id string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return model.User{}, ErrNotFound
	}
	return u, nil
}

// GetUserByUsername fetches a user by exact username.
func (s *Store) GetUserByUsername(username string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, ErrNotFound
}

// GetUsersByRole lists all users holding the given role. Order is not
// significant for this listing.
func (s *Store) GetUsersByRole(role model.Role) []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.User, 0)
	for _, u := range s.users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

// verifyPassword checks a plaintext credential against the stored hash.
// There is no login flow yet; this pins the hashing format until one lands.
func verifyPassword(u model.User, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}
