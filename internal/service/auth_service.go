package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-shopstock-api/internal/model"
	"go-shopstock-api/internal/repository"
	"go-shopstock-api/internal/ws"
	"go-shopstock-api/pkg/jwt"
	"go-shopstock-api/pkg/validator"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthService interface {
	SignUp(email, password, fullName string) (*SessionResponse, error)
	SignIn(email, password string) (*SessionResponse, error)
	SignOut(userID uuid.UUID) error
	Session(userID uuid.UUID) (*model.UserResponse, error)
}

// SessionResponse is returned by sign-up and sign-in: a bearer token plus
// the user payload the client mirrors into its session state.
type SessionResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
	wsHub    *ws.Hub
}

func NewAuthService(userRepo repository.UserRepository, hub *ws.Hub) AuthService {
	return &authService{
		userRepo: userRepo,
		wsHub:    hub,
	}
}

func (s *authService) SignUp(email, password, fullName string) (*SessionResponse, error) {
	user := &model.User{
		Email:    strings.TrimSpace(strings.ToLower(email)),
		FullName: strings.TrimSpace(fullName),
	}
	if errs := validator.ValidateStruct(user); len(errs) > 0 {
		return nil, errors.New(errs[0].Message())
	}

	// Uniqueness check before insert for a readable error
	if existing, _ := s.userRepo.FindByEmail(user.Email); existing != nil {
		return nil, ErrEmailTaken
	}

	if err := user.SetPassword(password); err != nil {
		return nil, errors.New("failed to hash password")
	}
	user.TokenVersion = uuid.New().String()

	if err := s.userRepo.Create(user); err != nil {
		zap.L().Error("failed to create user", zap.Error(err))
		return nil, errors.New("failed to create account")
	}

	return s.establishSession(user)
}

func (s *authService) SignIn(email, password string) (*SessionResponse, error) {
	user, err := s.userRepo.FindByEmail(strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return s.establishSession(user)
}

// establishSession issues a token against the user's current token version
// and notifies subscribers so other tabs can re-derive their state.
func (s *authService) establishSession(user *model.User) (*SessionResponse, error) {
	token, err := jwt.GenerateToken(user.ID, user.Email, user.DisplayName(), user.TokenVersion)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	go s.wsHub.Publish(ws.EventSessionSignedIn, user.ToResponse())

	return &SessionResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}

// SignOut rotates the token version so every outstanding token for the
// user becomes invalid immediately.
func (s *authService) SignOut(userID uuid.UUID) error {
	if err := s.userRepo.UpdateTokenVersion(userID, uuid.New().String()); err != nil {
		return err
	}

	go s.wsHub.Publish(ws.EventSessionSignedOut, map[string]interface{}{
		"user_id": userID,
	})

	return nil
}

// Session is the bootstrap read: the current user with display-name and
// avatar fallbacks applied.
func (s *authService) Session(userID uuid.UUID) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	resp := user.ToResponse()
	return &resp, nil
}
