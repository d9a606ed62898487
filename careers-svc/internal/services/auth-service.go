package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ecoba/careers/careers-svc/internal/domain"
	"github.com/ecoba/careers/careers-svc/internal/dto"
	"github.com/ecoba/careers/careers-svc/internal/helper"
	"github.com/ecoba/careers/careers-svc/internal/helper/utils"
	"github.com/ecoba/careers/careers-svc/internal/interfaces"
	"github.com/ecoba/careers/careers-svc/internal/repository"
	"github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

type AuthService interface {
	Register(ctx context.Context, input dto.RegisterRequest) (*domain.User, error)
	Login(ctx context.Context, input dto.UserLogin) (string, *domain.User, error)
	Me(ctx context.Context, session dto.Session) (dto.MeResponse, error)
	EnsureAdmin(ctx context.Context, email, password string) error
}

type authService struct {
	userRepo repository.UserRepository
	producer interfaces.ProducerHandler
	auth     helper.Auth
}

func NewAuthService(userRepo repository.UserRepository, producer interfaces.ProducerHandler, auth helper.Auth) AuthService {
	return &authService{
		userRepo: userRepo,
		producer: producer,
		auth:     auth,
	}
}

func (s *authService) Register(ctx context.Context, input dto.RegisterRequest) (*domain.User, error) {
	input.Email = utils.NormalizeEmail(input.Email)
	input.FullName = strings.TrimSpace(input.FullName)
	if err := helper.ValidateStruct(input); err != nil {
		return nil, &ValidationError{Msg: err.Error()}
	}

	if _, err := s.userRepo.FindUserByEmail(ctx, input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := s.auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: hash,
		FullName:     input.FullName,
		Role:         domain.Role(input.Role),
	}

	switch user.Role {
	case domain.RoleMember:
		err = s.userRepo.CreateMember(ctx, user, &domain.MemberProfile{
			GraduationYear: helper.NullIfEmpty(input.GraduationYear),
			Skills:         pq.StringArray{},
		})
	case domain.RoleEmployer:
		company := strings.TrimSpace(input.CompanyName)
		if company == "" {
			company = user.FullName
		}
		email := user.Email
		err = s.userRepo.CreateEmployer(ctx, user, &domain.EmployerProfile{
			CompanyName:  company,
			ContactEmail: &email,
		})
	}
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{"user_id": user.ID, "role": user.Role}).Info("user registered")
	publishEvent(s.producer, dto.EventUserRegistered, dto.UserRegisteredEvent{
		UserID:   user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     string(user.Role),
	})
	return user, nil
}

func (s *authService) Login(ctx context.Context, input dto.UserLogin) (string, *domain.User, error) {
	email := utils.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return "", nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if err := s.auth.VerifyPassword(input.Password, user.PasswordHash); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Me reports role none, not an error, for anonymous sessions and for
// tokens whose user no longer exists.
func (s *authService) Me(ctx context.Context, session dto.Session) (dto.MeResponse, error) {
	if !session.SignedIn() {
		return dto.MeResponse{Role: domain.RoleNone}, nil
	}

	user, err := s.userRepo.FindUserById(ctx, session.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return dto.MeResponse{Role: domain.RoleNone}, nil
	}
	if err != nil {
		return dto.MeResponse{}, err
	}

	resp := dto.NewUserResponse(user)
	return dto.MeResponse{User: &resp, Role: user.Role}, nil
}

// EnsureAdmin creates the admin account on first start.
func (s *authService) EnsureAdmin(ctx context.Context, email, password string) error {
	email = utils.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil
	}

	_, err := s.userRepo.FindUserByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return err
	}
	err = s.userRepo.CreateUser(ctx, &domain.User{
		Email:        email,
		PasswordHash: hash,
		FullName:     "Administrator",
		Role:         domain.RoleAdmin,
	})
	if err != nil && !errors.Is(err, repository.ErrDuplicate) {
		return err
	}
	log.WithField("email", email).Info("admin account seeded")
	return nil
}
