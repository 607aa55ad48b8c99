package auth_test

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"food-ordering-assistant/internal/auth"
	"food-ordering-assistant/internal/classifier"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, userID string, expiresIn time.Duration) string {
	t.Helper()
	claims := auth.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func verifiedClaims(t *testing.T, gate *auth.Gate, userID string) *auth.Claims {
	t.Helper()
	claims, err := gate.Verify(signToken(t, userID, time.Hour))
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	return claims
}

func TestIsProtected(t *testing.T) {
	if !auth.IsProtected(classifier.IntentCustomerViewCart) {
		t.Error("view cart should be protected")
	}
	if auth.IsProtected(classifier.IntentCustomerHelp) {
		t.Error("help should not be protected")
	}
	if auth.IsProtected(classifier.IntentAdminListOrders) {
		t.Error("admin list orders should not be protected")
	}
}

func TestVerify(t *testing.T) {
	gate := auth.NewGate(testSecret)

	t.Run("Valid Token", func(t *testing.T) {
		claims, err := gate.Verify(signToken(t, "user_1", time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.UserID != "user_1" {
			t.Errorf("subject = %q, want user_1", claims.UserID)
		}
	})

	t.Run("Expired Token", func(t *testing.T) {
		if _, err := gate.Verify(signToken(t, "user_1", -time.Minute)); err == nil {
			t.Error("expected error for expired token")
		}
	})

	t.Run("Garbage Token", func(t *testing.T) {
		if _, err := gate.Verify("not-a-token"); err == nil {
			t.Error("expected error for malformed token")
		}
	})

	t.Run("Wrong Signing Key", func(t *testing.T) {
		other := auth.NewGate("different-secret")
		if _, err := other.Verify(signToken(t, "user_1", time.Hour)); err == nil {
			t.Error("expected error for foreign signature")
		}
	})
}

func TestAuthorize(t *testing.T) {
	gate := auth.NewGate(testSecret)

	t.Run("Unprotected Intent Passes Through", func(t *testing.T) {
		id, err := gate.Authorize(classifier.IntentCustomerHelp, nil, false, "guest_42")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "guest_42" {
			t.Errorf("identity = %q, want guest_42", id)
		}
	})

	t.Run("Missing Token", func(t *testing.T) {
		_, err := gate.Authorize(classifier.IntentCustomerViewCart, nil, false, "user_1")
		if !errors.Is(err, auth.ErrLoginRequired) {
			t.Errorf("expected ErrLoginRequired, got %v", err)
		}
	})

	t.Run("Guest Identity", func(t *testing.T) {
		claims := verifiedClaims(t, gate, "user_1")
		_, err := gate.Authorize(classifier.IntentCustomerViewCart, claims, true, "guest_9")
		if !errors.Is(err, auth.ErrLoginRequired) {
			t.Errorf("expected ErrLoginRequired, got %v", err)
		}
	})

	t.Run("Rejected Token", func(t *testing.T) {
		_, err := gate.Authorize(classifier.IntentCustomerViewCart, nil, true, "user_1")
		if !errors.Is(err, auth.ErrSessionExpired) {
			t.Errorf("expected ErrSessionExpired, got %v", err)
		}
	})

	t.Run("Matching Identity Accepted", func(t *testing.T) {
		claims := verifiedClaims(t, gate, "user_1")
		id, err := gate.Authorize(classifier.IntentCustomerViewCart, claims, true, "user_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "user_1" {
			t.Errorf("identity = %q, want user_1", id)
		}
	})

	t.Run("Mismatched Identity Rejected For Customer", func(t *testing.T) {
		claims := verifiedClaims(t, gate, "user_1")
		_, err := gate.Authorize(classifier.IntentCustomerViewCart, claims, true, "user_2")
		if !errors.Is(err, auth.ErrIdentityMismatch) {
			t.Errorf("expected ErrIdentityMismatch, got %v", err)
		}
	})

	t.Run("Mismatched Identity Tolerated For Operator", func(t *testing.T) {
		claims := verifiedClaims(t, gate, "user_1")
		id, err := gate.Authorize(classifier.IntentCustomerViewCart, claims, true, "admin_ops")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if id != "admin_ops" {
			t.Errorf("identity = %q, want admin_ops", id)
		}
	})
}
