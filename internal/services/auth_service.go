package services

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sitetive/forms-backend/internal/config"
	"github.com/sitetive/forms-backend/internal/models"
	"github.com/sitetive/forms-backend/internal/repository"
	"golang.org/x/crypto/scrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// scrypt parameters. Changing them invalidates stored hashes, so treat them
// as part of the storage format.
const (
	scryptN      = 32768
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
	saltLen      = 16
)

type AuthService struct {
	users repository.Users
	cfg   *config.Config
}

func NewAuthService(users repository.Users, cfg *config.Config) *AuthService {
	return &AuthService{users: users, cfg: cfg}
}

// Login verifies the password and returns a signed bearer token together
// with the account. The session cookie is the handler's business.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.users.ByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	ok, err := VerifyPassword(password, user.Password)
	if err != nil || !ok {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) User(ctx context.Context, id uint) (*models.User, error) {
	return s.users.ByID(ctx, id)
}

// GenerateToken issues an HS256 token carrying the account identity.
func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(s.cfg.JWTExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// EnsureDefaultAdmin creates the bootstrap admin account if it does not
// exist yet. Idempotent; runs once at startup.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context) error {
	_, err := s.users.ByUsername(ctx, s.cfg.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hash, err := HashPassword(s.cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	user := &models.User{
		Username: s.cfg.AdminUsername,
		Password: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	slog.Info("default admin account created", "username", user.Username)
	return nil
}

// HashPassword derives a scrypt hash with a fresh random salt and returns
// it as "hexhash.hexsalt".
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(hash) + "." + hex.EncodeToString(salt), nil
}

// VerifyPassword recomputes the derivation with the stored salt and compares
// in constant time.
func VerifyPassword(password, stored string) (bool, error) {
	parts := strings.SplitN(stored, ".", 2)
	if len(parts) != 2 {
		return false, errors.New("malformed password hash")
	}

	hash, err := hex.DecodeString(parts[0])
	if err != nil {
		return false, err
	}
	salt, err := hex.DecodeString(parts[1])
	if err != nil {
		return false, err
	}

	computed, err := scrypt.Key([]byte(password), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare(hash, computed) == 1, nil
}
