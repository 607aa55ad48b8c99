package usecase

import (
	"fmt"
	"regexp"
	"strings"

	"food-ordering-assistant/internal/catalog"
	"food-ordering-assistant/internal/model"
)

var (
	restaurantPrefixRe = regexp.MustCompile(`(?i)^(?:add|create|register)\s+(?:a\s+)?(?:new\s+)?restaurant\s*[:\-]?\s*`)
	foodPrefixRe       = regexp.MustCompile(`(?i)^(?:add|create)\s+(?:a\s+)?(?:new\s+)?(?:food|dish|item|menu item)\s*[:\-]?\s*`)

	statusUpdateRe = regexp.MustCompile(`(?i)(?:update|change|mark|set)\s+(?:order\s*)?#?([a-zA-Z0-9]+)\s+(?:to|as)\s+(.+)`)

	deleteRestaurantRe = regexp.MustCompile(`(?i)(?:delete|remove)\s+(?:the\s+)?restaurant\s*[:\-]?\s*(.*)`)
	deleteFoodRe       = regexp.MustCompile(`(?i)(?:delete|remove)\s+(?:the\s+)?(?:food|dish|item)\s*[:\-]?\s*(.*)`)
)

// splitDetails strips an optional leading command phrase and splits the rest
// on commas, trimming each field and dropping empties.
func splitDetails(message string, prefix *regexp.Regexp) []string {
	payload := prefix.ReplaceAllString(strings.TrimSpace(message), "")
	parts := strings.Split(payload, ",")
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			fields = append(fields, p)
		}
	}
	return fields
}

// parseStatusUpdate pulls the order identifier and raw status text out of an
// update utterance. ok is false when the utterance does not fit the shape.
func parseStatusUpdate(message string) (orderID, rawStatus string, ok bool) {
	m := statusUpdateRe.FindStringSubmatch(message)
	if m == nil {
		return "", "", false
	}
	return m[1], strings.TrimSpace(m[2]), true
}

// extractDeleteTarget returns the free-text identifier following a delete
// command, if any.
func extractDeleteTarget(message string, re *regexp.Regexp) string {
	m := re.FindStringSubmatch(message)
	if m == nil {
		return ""
	}
	return strings.Trim(strings.TrimSpace(m[1]), `"'`)
}

// searchStopPhrases are stripped from search utterances, longest first, to
// leave the bare search term.
var searchStopPhrases = []string{
	"what is the price of", "what's the price of", "how much is the",
	"how much is a", "how much is", "how much for", "price of", "cost of",
	"do you have any", "do you have", "i am looking for", "i'm looking for",
	"looking for", "i want to eat", "i want to order", "i want some",
	"i want", "can i get", "show me some", "show me", "search for",
	"search", "find me", "find", "get me", "order", "buy", "some", "the ",
	"a ",
}

// extractSearchTerm strips command verbs and pleasantries from a search
// utterance, leaving the food name to match on.
func extractSearchTerm(message string) string {
	term := strings.ToLower(strings.TrimSpace(message))
	term = strings.Trim(term, "?!. ")
	for _, phrase := range searchStopPhrases {
		term = strings.TrimSpace(strings.TrimPrefix(term, phrase))
	}
	term = strings.Trim(term, "?!. ")
	return term
}

// knownCategories mirror the platform menu taxonomy.
var knownCategories = []string{
	"salad", "rolls", "deserts", "desserts", "sandwich", "cake",
	"pure veg", "pasta", "noodles", "pizza", "burger", "drinks",
}

// extractCategory finds a known category mentioned anywhere in the message,
// falling back to stop-phrase stripping.
func extractCategory(message string) string {
	lower := strings.ToLower(message)
	for _, c := range knownCategories {
		if strings.Contains(lower, c) {
			return c
		}
	}
	return extractSearchTerm(message)
}

// formatFoodLine renders one food for a list reply.
func formatFoodLine(f catalog.FoodWithRestaurant) string {
	line := fmt.Sprintf("• %s - $%.2f", f.Food.Name, f.Food.Price)
	if f.Food.Category != "" {
		line += fmt.Sprintf(" (%s)", f.Food.Category)
	}
	if f.RestaurantName != "" {
		line += fmt.Sprintf(" from %s", f.RestaurantName)
	}
	return line
}

// formatOrderLine renders one order for a list reply.
func formatOrderLine(o model.Order) string {
	return fmt.Sprintf("• #%s | %d item(s) | $%.2f | %s | %s",
		shortOrderID(o.ID), o.ItemCount(), o.Amount, o.Status,
		o.Date.Format("Jan 2, 2006"))
}

// shortOrderID trims long identifiers for display the way receipts do.
func shortOrderID(id string) string {
	if len(id) > 8 {
		return id[len(id)-8:]
	}
	return id
}

// formatStatuses renders the status enumeration for help texts.
func formatStatuses() string {
	statuses := model.ValidOrderStatuses()
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
