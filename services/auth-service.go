package services

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"viukon-cms/logging"
	"viukon-cms/utils"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type AuthService struct {
	username     string
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
}

type LoginResult struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func NewAuthService(username string, passwordHash, secret []byte, ttl time.Duration) *AuthService {
	return &AuthService{
		username:     username,
		passwordHash: passwordHash,
		secret:       secret,
		ttl:          ttl,
	}
}

// Login checks the admin credentials and issues a signed token.
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	// Both checks always run.
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passErr := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password))
	if !userOK || passErr != nil {
		logging.Logger.Warnf("Event ID: LOGIN_FAILED, Description: Invalid credentials for username %q", username)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := utils.GenerateToken(s.secret, s.username, utils.RoleAdmin, s.ttl)
	if err != nil {
		logging.Logger.Errorf("Event ID: TOKEN_GENERATION_FAILED, Description: %v", err)
		return nil, fmt.Errorf("issuing token: %w", err)
	}

	logging.Logger.Infof("Event ID: LOGIN_SUCCESS, Description: Admin %s logged in", s.username)
	return &LoginResult{Token: token, Username: s.username, ExpiresAt: expiresAt}, nil
}

// Authenticate validates a bearer token issued by Login.
func (s *AuthService) Authenticate(token string) (*utils.Claims, error) {
	claims, err := utils.ValidateToken(s.secret, token)
	if err != nil {
		return nil, err
	}
	if claims.Role != utils.RoleAdmin {
		return nil, fmt.Errorf("token role %q is not allowed", claims.Role)
	}
	return claims, nil
}
