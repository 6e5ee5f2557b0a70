package middleware

import (
	"context"
	"strings"

	"inventory-system/internal/entities"
	"inventory-system/pkg/contextkeys"
	apperrors "inventory-system/pkg/errors"
	"inventory-system/pkg/service"
	"inventory-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// SessionChecker - то, что умеет найти живую сессию по её идентификатору.
// Реализуется auth-сервисом; middleware знает только про интерфейс.
type SessionChecker interface {
	CurrentSession(ctx context.Context, sessionID string) (*entities.SessionUser, error)
}

type AuthMiddleware struct {
	jwtService service.JWTService
	sessions   SessionChecker
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, sessions SessionChecker, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		sessions:   sessions,
		logger:     logger,
	}
}

// Auth - это основная функция middleware.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Warn("AuthMiddleware: Пустой заголовок Authorization")
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("AuthMiddleware: Неверный формат заголовка Authorization")
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("AuthMiddleware: Ошибка валидации токена", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		if claims.IsRefreshToken {
			m.logger.Warn("AuthMiddleware: Попытка доступа с refresh токеном")
			return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		// Сессия живет в хранилище сессий; logout её уничтожает, и токен
		// перестает приниматься даже до истечения срока действия.
		user, err := m.sessions.CurrentSession(c.Request().Context(), claims.SessionID)
		if err != nil {
			m.logger.Warn("AuthMiddleware: Сессия не найдена", zap.String("sessionID", claims.SessionID), zap.Error(err))
			return utils.ErrorResponse(c, apperrors.ErrSessionNotFound, m.logger)
		}

		ctx := c.Request().Context()
		ctx = context.WithValue(ctx, contextkeys.SessionIDKey, claims.SessionID)
		ctx = context.WithValue(ctx, contextkeys.SessionUserKey, user)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
