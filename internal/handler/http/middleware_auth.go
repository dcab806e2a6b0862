// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, tracing, compression, and
// ownership-guard concerns are all handled at this layer before requests
// are forwarded to the service layer.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/service"
	"github.com/MKhiriev/go-messagely/internal/utils"
	"github.com/go-chi/chi/v5"
)

// tokenBodyLimit bounds how much of the request body the token extractor
// will read when looking for the "_token" field.
const tokenBodyLimit = 1 << 20

// authenticate is an HTTP middleware that resolves the requesting identity
// from a JWT, if one is present.
//
// The token is searched in three places, first hit wins:
//  1. the "_token" field of a JSON request body,
//  2. the "_token" query parameter,
//  3. the "Authorization: Bearer <token>" header.
//
// A request without any token passes through unauthenticated; per-route
// guards ([Handler.requireIdentity], [Handler.requireSameUser]) decide
// whether that is acceptable. A request that does carry a token which fails
// validation is rejected with HTTP 401 immediately, a stale credential is
// never silently downgraded to an anonymous request.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := extractToken(r)
		if err != nil {
			log.Err(err).Send()
			writeError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		if tokenString == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeError(w, service.ErrTokenIsExpiredOrInvalid.Error(), http.StatusUnauthorized)
			return
		}

		// Store the authenticated username in the context so that downstream
		// handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UsernameCtxKey, token.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireIdentity is a route guard that rejects requests lacking an
// authenticated identity with HTTP 401.
func (h *Handler) requireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		if _, ok := utils.GetUsernameFromContext(r.Context()); !ok {
			log.Warn().Msg("unauthenticated request to protected route")
			writeError(w, ErrAuthenticationRequired.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requireSameUser is a route guard for /users/{username} subtrees: the
// authenticated identity must match the username in the path.
//
// The guard runs before any lookup, so a caller probing another user's
// resources always sees HTTP 401, whether or not that user exists.
func (h *Handler) requireSameUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		username, ok := utils.GetUsernameFromContext(r.Context())
		if !ok {
			log.Warn().Msg("unauthenticated request to protected route")
			writeError(w, ErrAuthenticationRequired.Error(), http.StatusUnauthorized)
			return
		}

		if target := chi.URLParam(r, "username"); target != username {
			log.Warn().
				Str("username", username).
				Str("target", target).
				Msg("identity does not match requested user")
			writeError(w, ErrAuthenticationRequired.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// extractToken resolves the raw JWT string from the request, trying the JSON
// body, the query string, and the Authorization header in that order.
// An empty result with a nil error means the request is anonymous.
func extractToken(r *http.Request) (string, error) {
	if token := tokenFromBody(r); token != "" {
		return token, nil
	}

	if token := r.URL.Query().Get("_token"); token != "" {
		return token, nil
	}

	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		return getTokenFromAuthHeader(authHeader)
	}

	return "", nil
}

// tokenFromBody peeks at a JSON request body for a top-level "_token" field.
// The body is restored afterwards so downstream handlers can decode it
// again. Non-JSON or malformed bodies simply yield no token; body validation
// is the handlers' job.
func tokenFromBody(r *http.Request) string {
	if r.Body == nil || r.Body == http.NoBody {
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, tokenBodyLimit))
	r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	var probe struct {
		Token string `json:"_token"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return ""
	}

	return probe.Token
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: <scheme> <token>
//
// It returns the following sentinel errors:
//   - [ErrInvalidAuthorizationHeader] — if the header contains fewer than
//     two space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — if the second part exists but is an empty string.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
