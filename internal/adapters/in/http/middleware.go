package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"staffing/internal/core/application/usecases/queries"
	"staffing/internal/core/domain/model/kernel"
	"staffing/internal/pkg/tokens"
)

// userContextKey is where the middleware stores the authenticated account.
const userContextKey = "currentUser"

// AuthMiddleware resolves a bearer token to its user account. The account
// lookup also rejects tokens for users that were deleted after issuance.
type AuthMiddleware struct {
	issuer         *tokens.Issuer
	getUserHandler queries.GetUserQueryHandler
}

func NewAuthMiddleware(issuer *tokens.Issuer, getUserHandler queries.GetUserQueryHandler) *AuthMiddleware {
	return &AuthMiddleware{issuer: issuer, getUserHandler: getUserHandler}
}

func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)

		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			return ctx.JSON(http.StatusUnauthorized, errorBody{Message: "Missing or invalid token"})
		}

		subject, err := m.issuer.Parse(strings.TrimPrefix(header, prefix))
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, errorBody{Message: "Missing or invalid token"})
		}

		userID, err := kernel.UUIDFromString(subject)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, errorBody{Message: "Missing or invalid token"})
		}

		query, err := queries.NewGetUserQuery(userID)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, errorBody{Message: "Missing or invalid token"})
		}

		account, err := m.getUserHandler.Handle(ctx.Request().Context(), query)
		if err != nil {
			return ctx.JSON(http.StatusUnauthorized, errorBody{Message: "Missing or invalid token"})
		}

		ctx.Set(userContextKey, account)
		return next(ctx)
	}
}

// currentUser returns the account stored by Authenticate. Calling it from an
// unprotected route yields the zero value.
func currentUser(ctx echo.Context) queries.UserResponse {
	account, _ := ctx.Get(userContextKey).(queries.UserResponse)
	return account
}
