package usecase

import (
	"context"
	"errors"

	"career-guide/internal/domain/user"

	"github.com/google/uuid"
)

type UserUsecase interface {
	Me(ctx context.Context, userID uuid.UUID) (user.User, error)
}

type Users struct {
	users user.Repository
}

func NewUserUsecase(users user.Repository) *Users {
	return &Users{users: users}
}

func (u *Users) Me(ctx context.Context, userID uuid.UUID) (user.User, error) {
	if userID == uuid.Nil {
		return user.User{}, ErrUnauthorized
	}
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, ErrInternal
	}
	usr.PasswordHash = ""
	return usr, nil
}
