package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-TheatreBooking/internal/domain"
	adminRepo "github.com/m04kA/SMC-TheatreBooking/internal/infra/storage/admin"
	"github.com/m04kA/SMC-TheatreBooking/internal/service/auth/models"
)

const issuer = "theatre-booking"

// Claims содержимое токена администратора
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service выдаёт и проверяет токены администраторов
type Service struct {
	repo         AdminRepository
	secret       []byte
	ttl          time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса авторизации
func NewService(repo AdminRepository, secret string, ttl time.Duration, logger Logger) *Service {
	return &Service{
		repo:         repo,
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider устанавливает кастомный провайдер времени (для тестирования)
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Login проверяет пароль и выдаёт токен
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	admin, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			s.logger.Warn("Login: unknown admin email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for admin=%s", admin.ID)
		return nil, ErrInvalidCredentials
	}

	now := s.timeProvider.Now()
	expiresAt := now.Add(s.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email: admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   admin.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		s.logger.Error("Login: failed to sign token for admin=%s: %v", admin.ID, err)
		return nil, fmt.Errorf("%w: Login - sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: admin=%s signed in", admin.ID)
	return &models.LoginResponse{Token: signed, ExpiresAt: expiresAt, Email: admin.Email}, nil
}

// Authenticate проверяет токен и что администратор ещё существует
func (s *Service) Authenticate(ctx context.Context, tokenString string) (*domain.Admin, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.timeProvider.Now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	admin, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			s.logger.Warn("Authenticate: admin=%s no longer exists", id)
			return nil, ErrInvalidToken
		}
		s.logger.Error("Authenticate: repository error for admin=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Authenticate - repository error: %v", ErrInternal, err)
	}

	return admin, nil
}
