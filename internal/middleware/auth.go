package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/pkg/apperrors"
)

// Context keys populated by Authenticate for downstream handlers.
const (
	CtxUserID   = "userID"
	CtxUsername = "username"
	CtxEmail    = "email"
	CtxRole     = "role"
)

// Authenticate is stages 1 and 2 of the authorization gate.
//
// Stage 1 verifies the bearer token: a missing or malformed header is 401,
// a bad signature is 403. Stage 2 re-fetches the user's current suspension
// flag: tokens carry no expiry, so this live check is the only mechanism by
// which suspension takes effect. It runs on every authenticated request.
//
// The identity fields placed into the context come from the token, not from
// the store; only suspension (here) and role (RequireAdmin) are treated as
// revocable live state.
func Authenticate(tokens *auth.TokenManager, userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			c.Abort()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			apperrors.HandleError(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(claims.UserID)
		if err != nil {
			// A deleted account invalidates its outstanding tokens.
			apperrors.HandleError(c, apperrors.NewForbiddenError("Account no longer exists"))
			c.Abort()
			return
		}

		if user.Suspended {
			apperrors.HandleError(c, apperrors.ErrUserSuspended)
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUsername, claims.Username)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxRole, claims.Role)

		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireAdmin is stage 3 of the gate, applied to admin routes after
// Authenticate. The role is re-fetched from the store rather than read from
// the token, so a demotion takes effect on the next request.
func RequireAdmin(userRepo repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := GetUserID(c)
		if userID == "" {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
			c.Abort()
			return
		}

		user, err := userRepo.FindByID(userID)
		if err != nil {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Account no longer exists"))
			c.Abort()
			return
		}

		if user.Role != models.UserRoleAdmin {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID extracts the authenticated user's ID from the gin context.
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get(CtxUserID)
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}
