package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"

	"github.com/google/uuid"
)

// UserStore is the persistence surface the auth flow needs.
type UserStore interface {
	AddUser(ctx context.Context, user *model.User) error
	FindUserByEmail(ctx context.Context, email string) (*model.User, error)
}

type UserService struct {
	Users UserStore
}

// Register creates an account and returns the stored profile. The email
// uniqueness check runs up front for a clean error, but the unique index
// is what actually guarantees it under concurrent registration.
func (svc *UserService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))

	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrInvalidInput)
	}

	existing, err := svc.Users.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		utils.TrackAuthAttempt("failure", "register")
		return nil, ErrEmailTaken
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserID:   uuid.NewString(),
		Username: username,
		Email:    email,
		Password: hash,
	}

	if err := svc.Users.AddUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			utils.TrackAuthAttempt("failure", "register")
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	utils.TrackAuthAttempt("success", "register")
	return user, nil
}

// Login validates the credentials and returns the matching user. Unknown
// email and wrong password produce the identical error.
func (svc *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := svc.Users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.TrackAuthAttempt("failure", "login")
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !services.VerifyPassword(user.Password, password) {
		utils.TrackAuthAttempt("failure", "login")
		return nil, ErrInvalidCredentials
	}

	utils.TrackAuthAttempt("success", "login")
	return user, nil
}
