// Package auth implements the conversational auth gate: protected intents
// require a verified bearer identity before their handler may run.
// Verification is read-only; token minting happens elsewhere.
package auth

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"food-ordering-assistant/internal/classifier"
)

var (
	ErrLoginRequired    = errors.New("login required")
	ErrSessionExpired   = errors.New("session expired")
	ErrIdentityMismatch = errors.New("identity mismatch")
)

// Identity prefixes. Guests are unauthenticated by definition; operator
// identities may act on behalf of arbitrary users.
const (
	GuestPrefix    = "guest_"
	OperatorPrefix = "admin_"
)

// protectedIntents is the static set of intent labels requiring a verified
// bearer credential. Membership does not change at runtime.
var protectedIntents = map[string]struct{}{
	classifier.IntentCustomerViewCart:     {},
	classifier.IntentCustomerOrderHistory: {},
	classifier.IntentCustomerTrackOrder:   {},
	classifier.IntentCustomerPlaceOrder:   {},
	classifier.IntentCustomerAddToCart:    {},
	classifier.IntentCustomerClearCart:    {},
}

// IsProtected reports whether an intent requires a verified credential.
func IsProtected(intent string) bool {
	_, ok := protectedIntents[intent]
	return ok
}

// Claims carries the verified token subject.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// Gate verifies bearer credentials for protected intents.
type Gate struct {
	secret []byte
}

// NewGate creates a Gate verifying HS256 tokens signed with secret.
func NewGate(secret string) *Gate {
	return &Gate{secret: []byte(secret)}
}

// Authorize enforces the gate for the given intent using claims already
// checked by Verify; the token is parsed once per turn, not once per layer.
// For unprotected intents it passes the claimed identity through untouched.
// For protected intents: a missing token or guest identity is "login
// required" (hadToken distinguishes an absent token from a rejected one,
// for which claims is nil and the session is "expired"); a verified subject
// must match the claimed identity unless the claimed identity is an
// operator. Returns the identity the handler should act as.
func (g *Gate) Authorize(intent string, claims *Claims, hadToken bool, userID string) (string, error) {
	if !IsProtected(intent) {
		return userID, nil
	}

	if !hadToken || userID == "" || strings.HasPrefix(userID, GuestPrefix) {
		return "", ErrLoginRequired
	}

	if claims == nil {
		return "", ErrSessionExpired
	}

	if claims.UserID != userID && !strings.HasPrefix(userID, OperatorPrefix) {
		return "", ErrIdentityMismatch
	}

	return userID, nil
}

// Verify parses and validates a bearer token, returning its claims.
func (g *Gate) Verify(bearer string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	_, err := parser.ParseWithClaims(bearer, claims, func(t *jwt.Token) (any, error) {
		return g.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims.UserID == "" {
		return nil, errors.New("token has no subject")
	}
	return claims, nil
}
