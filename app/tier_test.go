package app

import (
	"testing"

	"example/vision-api/app/models"
)

func TestResolveTier(t *testing.T) {
	cases := []struct {
		name   string
		claims map[string]any
		want   models.Tier
	}{
		{
			name:   "no tier claims",
			claims: map[string]any{"sub": "u1"},
			want:   models.TierFree,
		},
		{
			name: "public metadata free",
			claims: map[string]any{
				"sub":             "u1",
				"public_metadata": map[string]any{"subscription_tier": "free"},
			},
			want: models.TierFree,
		},
		{
			name: "public metadata premium",
			claims: map[string]any{
				"sub":             "u1",
				"public_metadata": map[string]any{"subscription_tier": "premium"},
			},
			want: models.TierPremium,
		},
		{
			name: "subscription plan premium plus",
			claims: map[string]any{
				"sub":          "u2",
				"subscription": map[string]any{"plan": "Premium Plus"},
			},
			want: models.TierPremium,
		},
		{
			name: "subscription plan basic",
			claims: map[string]any{
				"subscription": map[string]any{"plan": "Basic"},
			},
			want: models.TierFree,
		},
		{
			name: "free metadata falls through to plan",
			claims: map[string]any{
				"public_metadata": map[string]any{"subscription_tier": "free"},
				"subscription":    map[string]any{"plan": "PREMIUM"},
			},
			want: models.TierPremium,
		},
		{
			name: "non-string claim shapes",
			claims: map[string]any{
				"public_metadata": map[string]any{"subscription_tier": 7},
				"subscription":    "not-a-map",
			},
			want: models.TierFree,
		},
		{
			name:   "nil claims",
			claims: nil,
			want:   models.TierFree,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveTier(tc.claims); got != tc.want {
				t.Fatalf("ResolveTier = %q, want %q", got, tc.want)
			}
			// pure function: same input, same output
			if got := ResolveTier(tc.claims); got != tc.want {
				t.Fatalf("ResolveTier second call = %q, want %q", got, tc.want)
			}
		})
	}
}
