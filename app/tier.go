// Package app resolves a user's subscription tier from verified claims.
package app

import (
	"strings"

	"example/vision-api/app/models"
)

// ResolveTier derives the subscription tier from a verified claim map. It
// checks public_metadata.subscription_tier first, then falls back to a
// "premium" substring match on subscription.plan. Tier is recomputed on
// every request, so a change in the identity source takes effect
// immediately.
func ResolveTier(raw map[string]any) models.Tier {
	tier := readNestedClaim(raw, "public_metadata", "subscription_tier")
	if tier != "" && tier != string(models.TierFree) {
		return models.Tier(tier)
	}

	plan := readNestedClaim(raw, "subscription", "plan")
	if strings.Contains(strings.ToLower(plan), "premium") {
		return models.TierPremium
	}

	return models.TierFree
}

func readNestedClaim(raw map[string]any, outer, inner string) string {
	if raw == nil {
		return ""
	}
	nested, ok := raw[outer].(map[string]any)
	if !ok {
		return ""
	}
	if s, ok := nested[inner].(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}
