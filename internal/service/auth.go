package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"bookhub/internal/auth"
	"bookhub/internal/models"
	"bookhub/internal/repository"
)

var (
	ErrNameInUse          = errors.New("username already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// dummy bcrypt hash compared against when the username doesn't exist, so login
// takes roughly the same time either way
const dummyHash = "$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e"

type AuthService interface {
	Signup(username, password string) (*models.User, error)
	Login(username, password string) (accessToken, refreshToken string, user *models.User, err error)
	RefreshAccessToken(refreshToken string) (newAccessToken string, err error)
	GetUser(id string) (*models.User, error)
	UpdateProfile(user *models.User, newUsername, newPassword string) error
	DeleteProfile(user *models.User) error
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenService
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenService) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Signup registers a new user with a bcrypt-hashed password.
func (s *authService) Signup(username, password string) (*models.User, error) {
	// Check if username is taken
	if _, err := s.userRepo.FindByUsername(username); err == nil {
		return nil, ErrNameInUse
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: username,
		Password: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		// Two concurrent signups can both pass the lookup above; the unique
		// index on username settles the race, so map its violation too.
		if isDuplicateKey(err) {
			return nil, ErrNameInUse
		}
		return nil, err
	}

	return user, nil
}

// Login authenticates a user and returns access and refresh tokens.
func (s *authService) Login(username, password string) (string, string, *models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		// Same error and same bcrypt cost for unknown-user and wrong-password
		auth.VerifyPassword(dummyHash, password)
		return "", "", nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return "", "", nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokens.IssueAccess(user)
	if err != nil {
		return "", "", nil, err
	}

	refreshToken, err := s.tokens.IssueRefresh(user)
	if err != nil {
		return "", "", nil, err
	}

	return accessToken, refreshToken, user, nil
}

// RefreshAccessToken trades a valid refresh token for a new access token. The
// user row is re-checked so a deleted account cannot keep minting tokens.
func (s *authService) RefreshAccessToken(refreshToken string) (string, error) {
	claims, err := s.tokens.Verify(refreshToken, TokenTypeRefresh)
	if err != nil {
		return "", err
	}

	user, err := s.userRepo.FindByID(claims.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", err
	}

	return s.tokens.IssueAccess(user)
}

func (s *authService) GetUser(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile replaces both username and password, rehashing the password.
func (s *authService) UpdateProfile(user *models.User, newUsername, newPassword string) error {
	if newUsername != user.Username {
		if _, err := s.userRepo.FindByUsername(newUsername); err == nil {
			return ErrNameInUse
		}
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	// Write a copy first; the caller's user must not carry unsaved values if
	// the update fails.
	updated := *user
	updated.Username = newUsername
	updated.Password = hashedPassword

	if err := s.userRepo.Update(&updated); err != nil {
		if isDuplicateKey(err) {
			return ErrNameInUse
		}
		return err
	}

	user.Username = updated.Username
	user.Password = updated.Password
	return nil
}

func (s *authService) DeleteProfile(user *models.User) error {
	return s.userRepo.Delete(user.ID)
}

// isDuplicateKey reports whether err is a unique-constraint violation. GORM
// exposes ErrDuplicatedKey for drivers that translate errors; the string check
// covers drivers that don't.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}
