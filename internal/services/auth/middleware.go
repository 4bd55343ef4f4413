// filepath: internal/services/auth/middleware.go
package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"riseup/internal/logging"
	"riseup/internal/models"
	"riseup/internal/services"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

const challenge = `Basic realm="riseup", Bearer realm="riseup"`

// Middleware resolves the caller of every protected route.
type Middleware struct {
	User  services.UserService
	Token TokenService
}

func NewMiddleware(user services.UserService, token TokenService) *Middleware {
	return &Middleware{User: user, Token: token}
}

// authError carries the message sent back for a rejected request.
type authError struct {
	message string
	cause   error
}

func (e *authError) Error() string { return e.message }

// authenticate accepts "Bearer <access token>" or HTTP Basic credentials.
func (m *Middleware) authenticate(r *http.Request) (*models.User, error) {
	header := r.Header.Get("Authorization")
	scheme, credentials, _ := strings.Cut(header, " ")

	switch {
	case header == "":
		return nil, &authError{message: "Authorization header required"}

	case scheme == "Bearer":
		user, err := m.Token.ValidateAccessToken(credentials)
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, &authError{message: "Token expired", cause: err}
		}
		if err != nil {
			return nil, &authError{message: "Invalid token", cause: err}
		}
		return user, nil

	case scheme == "Basic":
		username, password, ok := r.BasicAuth()
		if !ok {
			return nil, &authError{message: "Invalid Basic Auth header"}
		}
		user, err := m.User.VerifyCredentials(username, password)
		if err != nil {
			return nil, &authError{message: "Authentication failed", cause: err}
		}
		return user, nil

	default:
		return nil, &authError{message: "Invalid authorization header format"}
	}
}

// AuthMiddleware rejects unauthenticated requests with 401 and stores the
// resolved user in the request context otherwise.
func (m *Middleware) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := m.authenticate(r)
		if err != nil {
			var ae *authError
			if errors.As(err, &ae) && ae.cause != nil {
				logging.FromContext(r.Context()).Warnf("AuthMiddleware: %s: %v", ae.message, ae.cause)
			}
			w.Header().Set("WWW-Authenticate", challenge)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}
