// Package classifier resolves free-text utterances to intent labels.
// Both entry points are pure functions: safe to call concurrently, and
// idempotent for a fixed (message, role, history) triple.
package classifier

import (
	"strings"

	"food-ordering-assistant/internal/model"
)

// Classify maps an utterance to an intent using the ordered role-specific
// rule table. Matching is done on a trimmed, lower-cased copy; the original
// casing is never altered for downstream use.
func Classify(message string, role model.Role) Resolution {
	lower := strings.ToLower(strings.TrimSpace(message))

	rules := customerRules
	if role == model.RoleAdmin {
		rules = adminRules
	}

	for _, r := range rules {
		if !r.pattern.MatchString(lower) {
			continue
		}
		if !containsAny(lower, r.contains) {
			continue
		}
		intent := r.intent
		if r.commaIntent != "" && strings.Contains(lower, ",") {
			intent = r.commaIntent
		}
		return Resolution{Intent: intent, Confidence: r.confidence, Source: SourcePattern}
	}

	return Resolution{Intent: IntentFallback, Confidence: FallbackConfidence, Source: SourcePattern}
}

// ResolveContext checks whether the utterance is a slot-filling continuation
// of the previous turn. The add-entity dialogues are two turns: turn 1
// establishes intent and emits a prompt, turn 2 carries a bare payload with
// no verb, so only conversation position can recover its intent. Returns
// false when no continuation applies.
func ResolveContext(message string, role model.Role, previousIntents []string) (Resolution, bool) {
	if len(previousIntents) == 0 {
		return Resolution{}, false
	}
	last := previousIntents[len(previousIntents)-1]

	lower := strings.ToLower(strings.TrimSpace(message))
	if !strings.Contains(lower, ",") && !strings.ContainsAny(lower, "0123456789") {
		return Resolution{}, false
	}

	switch last {
	case IntentAdminAddRestaurant, "add_restaurant":
		return Resolution{
			Intent:     IntentProcessRestaurantDetails,
			Confidence: ContinuationConfidence,
			Source:     SourceContext,
		}, true
	case IntentAdminAddFood, "add_food":
		return Resolution{
			Intent:     IntentProcessFoodDetails,
			Confidence: ContinuationConfidence,
			Source:     SourceContext,
		}, true
	}

	return Resolution{}, false
}

// AllowedForRole reports whether a label may be produced for the given role:
// the label carries the role's prefix, or no role prefix at all.
func AllowedForRole(intent string, role model.Role) bool {
	switch role {
	case model.RoleAdmin:
		return !strings.HasPrefix(intent, "customer_")
	case model.RoleCustomer:
		return !strings.HasPrefix(intent, "admin_")
	}
	return false
}

func containsAny(s string, subs []string) bool {
	if len(subs) == 0 {
		return true
	}
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
