// Package models defines subscription tier and usage reporting types.
package models

type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

// Unlimited is the sentinel reported for premium limit/remaining fields.
const Unlimited = "unlimited"
