// Файл: internal/services/auth.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"inventory-system/internal/dto"
	"inventory-system/internal/entities"
	"inventory-system/internal/repositories"
	"inventory-system/pkg/config"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/service"
	"inventory-system/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CredentialVerifier - подключаемая проверка учётных данных. Один метод,
// чтобы механизм (конфиг, LDAP, внешний сервис) можно было заменить, не
// трогая места вызова.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (bool, error)
}

// ConfigCredentialVerifier сверяет логин с единственной административной
// учётной записью из конфигурации. Пароль хешируется bcrypt'ом при
// создании и в открытом виде в памяти не хранится.
type ConfigCredentialVerifier struct {
	adminEmail   string
	passwordHash string
}

func NewConfigCredentialVerifier(cfg *config.AuthConfig) (*ConfigCredentialVerifier, error) {
	hash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		return nil, err
	}
	return &ConfigCredentialVerifier{
		adminEmail:   cfg.AdminEmail,
		passwordHash: hash,
	}, nil
}

func (v *ConfigCredentialVerifier) Verify(_ context.Context, email, password string) (bool, error) {
	if email != v.adminEmail {
		return false, nil
	}
	if err := utils.ComparePasswords(v.passwordHash, password); err != nil {
		return false, nil
	}
	return true, nil
}

type AuthServiceInterface interface {
	Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error)
	Logout(ctx context.Context, sessionID string) error
	CurrentSession(ctx context.Context, sessionID string) (*entities.SessionUser, error)
}

type AuthService struct {
	verifier  CredentialVerifier
	cacheRepo repositories.CacheRepositoryInterface
	jwtSvc    service.JWTService
	cfg       *config.AuthConfig
	logger    *zap.Logger
}

func NewAuthService(
	verifier CredentialVerifier,
	cacheRepo repositories.CacheRepositoryInterface,
	jwtSvc service.JWTService,
	cfg *config.AuthConfig,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		verifier:  verifier,
		cacheRepo: cacheRepo,
		jwtSvc:    jwtSvc,
		cfg:       cfg,
		logger:    logger,
	}
}

// Login проверяет учётные данные через verifier, создает сессию в
// хранилище сессий и выдает пару токенов, привязанных к её идентификатору.
func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.LoginResponseDTO, error) {
	ok, err := s.verifier.Verify(ctx, payload.Email, payload.Password)
	if err != nil {
		s.logger.Error("Ошибка проверки учётных данных", zap.Error(err))
		return nil, err
	}
	if !ok {
		s.logger.Warn("Неудачная попытка входа", zap.String("email", payload.Email))
		return nil, apperrors.ErrInvalidCredentials
	}

	user := entities.SessionUser{
		Email:     payload.Email,
		Name:      s.cfg.AdminName,
		Role:      s.cfg.AdminRole,
		LoginTime: time.Now().Format(time.RFC3339),
	}

	sessionID := uuid.New().String()
	encoded, err := json.Marshal(user)
	if err != nil {
		return nil, fmt.Errorf("не удалось сериализовать сессию: %w", err)
	}
	if err := s.cacheRepo.Set(ctx, sessionKey(sessionID), encoded, s.cfg.SessionTTL); err != nil {
		s.logger.Error("Не удалось сохранить сессию", zap.Error(err))
		return nil, err
	}

	accessToken, refreshToken, err := s.jwtSvc.GenerateTokens(sessionID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Пользователь вошел в систему", zap.String("email", user.Email))
	return &dto.LoginResponseDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User: dto.SessionDTO{
			Email:     user.Email,
			Name:      user.Name,
			Role:      user.Role,
			LoginTime: user.LoginTime,
		},
	}, nil
}

// Logout уничтожает сессию; выданные токены перестают приниматься.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.cacheRepo.Del(ctx, sessionKey(sessionID))
}

func (s *AuthService) CurrentSession(ctx context.Context, sessionID string) (*entities.SessionUser, error) {
	raw, err := s.cacheRepo.Get(ctx, sessionKey(sessionID))
	if err != nil {
		return nil, apperrors.ErrSessionNotFound
	}

	var user entities.SessionUser
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("не удалось прочитать сессию: %w", err)
	}
	return &user, nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}
