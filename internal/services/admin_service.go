package services

import (
	"crypto/subtle"
	"errors"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminService checks admin logins. Sessions are a single random token held
// in memory, so every login is invalidated by a restart.
type AdminService struct {
	username string
	password string
	token    string
}

func NewAdminService(username, password string) *AdminService {
	return &AdminService{username: username, password: password, token: RandomToken()}
}

// Login returns the session token for valid credentials.
func (s *AdminService) Login(username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}
	return s.token, nil
}

func (s *AdminService) ValidToken(token string) bool {
	return token != "" && subtle.ConstantTimeCompare([]byte(token), []byte(s.token)) == 1
}
