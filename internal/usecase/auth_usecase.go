package usecase

import (
	"context"
	"errors"

	"vetify/internal/delivery/dto"
	"vetify/internal/domain/entity"
	"vetify/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password; callers must not distinguish the two.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*entity.User, error)
	// CreateUser is an internal helper; there is no self-service
	// registration route.
	CreateUser(ctx context.Context, username, password, role string) (*entity.User, error)
}

type authUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	userRepo repository.UserRepository
}

func NewAuthUsecase(db *gorm.DB, log *logrus.Logger, userRepo repository.UserRepository) AuthUsecase {
	return &authUsecase{
		db:       db,
		log:      log,
		userRepo: userRepo,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*entity.User, error) {
	db := u.db.WithContext(ctx)

	user, err := u.userRepo.FindByUsername(db, req.Username)
	if err != nil {
		u.log.Warnf("Failed to find user by username: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (u *authUsecase) CreateUser(ctx context.Context, username, password, role string) (*entity.User, error) {
	if role == "" {
		role = entity.RoleSecretaria
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Username: username,
		Password: string(hash),
		Role:     role,
	}

	if err := u.userRepo.Create(u.db.WithContext(ctx), user); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	return user, nil
}
