package usecase

import (
	"context"
	"errors"

	"career-guide/internal/domain/user"
	"career-guide/internal/pkg/jwt"
	"career-guide/internal/pkg/logger"
	ucauth "career-guide/internal/usecase/auth"

	"go.uber.org/zap"
)

type Mailer interface {
	SendVerification(ctx context.Context, to, username, token string) error
}

type AuthUsecase interface {
	Register(ctx context.Context, in ucauth.RegisterInput) (user.User, string, string, error)
	Login(ctx context.Context, in ucauth.LoginInput) (user.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	Verify(ctx context.Context, token string) (user.User, error)
}

type Auth struct {
	authSvc *ucauth.Service
	users   user.Repository
	jwt     jwt.Service
	mailer  Mailer
	log     *zap.Logger
}

// NewAuthUsecase wires authentication. mailer may be nil, in which case no
// verification mail is sent.
func NewAuthUsecase(users user.Repository, jwtSvc jwt.Service, mailer Mailer, log *zap.Logger) *Auth {
	return &Auth{
		authSvc: ucauth.NewService(users),
		users:   users,
		jwt:     jwtSvc,
		mailer:  mailer,
		log:     logger.OrNop(log),
	}
}

func (u *Auth) Register(ctx context.Context, in ucauth.RegisterInput) (user.User, string, string, error) {
	usr, err := u.authSvc.Register(ctx, in)
	if err != nil {
		return user.User{}, "", "", err
	}

	u.sendVerification(ctx, usr)

	access, refresh, err := u.issue(usr)
	if err != nil {
		return user.User{}, "", "", err
	}
	return usr, access, refresh, nil
}

func (u *Auth) Login(ctx context.Context, in ucauth.LoginInput) (user.User, string, string, error) {
	usr, err := u.authSvc.Login(ctx, in)
	if err != nil {
		return user.User{}, "", "", err
	}

	access, refresh, err := u.issue(usr)
	if err != nil {
		return user.User{}, "", "", err
	}
	return usr, access, refresh, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}

	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", "", ErrInvalidRefreshToken
		}
		return "", "", ErrInternal
	}

	return u.issue(usr)
}

func (u *Auth) Verify(ctx context.Context, token string) (user.User, error) {
	if token == "" {
		return user.User{}, ErrInvalidVerifyToken
	}
	claims, err := u.jwt.ValidateToken(token)
	if err != nil || !u.jwt.IsVerificationToken(claims) {
		return user.User{}, ErrInvalidVerifyToken
	}

	usr, err := u.authSvc.Verify(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, ucauth.ErrInvalidInput) {
			return user.User{}, ErrInvalidVerifyToken
		}
		return user.User{}, ErrInternal
	}
	return usr, nil
}

func (u *Auth) issue(usr user.User) (string, string, error) {
	id := jwt.Identity{UserID: usr.ID, Email: usr.Email, UserType: string(usr.UserType)}
	access, err := u.jwt.GenerateAccessToken(id)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(id)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}

func (u *Auth) sendVerification(ctx context.Context, usr user.User) {
	if u.mailer == nil {
		return
	}
	token, err := u.jwt.GenerateVerificationToken(jwt.Identity{UserID: usr.ID, Email: usr.Email})
	if err != nil {
		u.log.Warn("verification token failed", zap.String("user_id", usr.ID.String()), zap.Error(err))
		return
	}
	if err := u.mailer.SendVerification(ctx, usr.Email, usr.Username, token); err != nil {
		u.log.Warn("verification mail failed", zap.String("user_id", usr.ID.String()), zap.Error(err))
	}
}
