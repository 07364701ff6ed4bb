package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"sync"
)

type Role string

const (
	RoleFounder Role = "founder"
	RoleMember  Role = "member"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnknownToken       = errors.New("unknown token")
)

type User struct {
	Username string
	Role     Role
}

type credential struct {
	password string
	role     Role
}

// Service validates statically configured credentials and hands out
// opaque session tokens. Sessions live in memory and die with the
// process.
type Service struct {
	mu       sync.RWMutex
	users    map[string]credential
	sessions map[string]User
}

type Credential struct {
	Username string
	Password string
	Role     string
}

func NewService(creds []Credential) *Service {
	users := make(map[string]credential, len(creds))
	for _, c := range creds {
		role := RoleMember
		if Role(c.Role) == RoleFounder {
			role = RoleFounder
		}
		users[c.Username] = credential{password: c.Password, role: role}
	}
	return &Service{
		users:    users,
		sessions: make(map[string]User),
	}
}

// Login checks the credentials and returns a fresh session token.
func (s *Service) Login(username, password string) (string, User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cred, ok := s.users[username]
	if !ok || subtle.ConstantTimeCompare([]byte(cred.password), []byte(password)) != 1 {
		return "", User{}, ErrInvalidCredentials
	}

	token, err := newToken()
	if err != nil {
		return "", User{}, err
	}
	user := User{Username: username, Role: cred.role}
	s.sessions[token] = user
	return token, user, nil
}

// Resolve maps a session token back to its user.
func (s *Service) Resolve(token string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.sessions[token]
	if !ok {
		return User{}, ErrUnknownToken
	}
	return user, nil
}

// Logout invalidates the token. Unknown tokens are a no-op.
func (s *Service) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
