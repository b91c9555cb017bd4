package domain

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Asset is a named holding on a custody platform. Identity is the
// normalized (name, platform) pair. An empty Currency means the asset is
// denominated in the display currency.
type Asset struct {
	AssetID    uuid.UUID
	Name       string
	Platform   string
	Currency   string
	CategoryID *uuid.UUID
}

// Key returns the case/whitespace-insensitive identity key of the asset.
func (a Asset) Key() string {
	return normalize(a.Name) + "|" + a.PlatformKey()
}

// PlatformKey returns the normalized platform the asset belongs to.
// Assets with no platform share the empty key.
func (a Asset) PlatformKey() string {
	return normalize(a.Platform)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Category groups assets and optionally carries a target allocation
// percentage (0-100) used by the rebalancing calculator.
type Category struct {
	CategoryID    uuid.UUID
	Name          string
	TargetPercent *decimal.Decimal
	DisplayOrder  int
}

// Platforms derives the distinct set of non-empty platform keys across
// the given assets, sorted for stable output.
func Platforms(assets []Asset) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, a := range assets {
		key := a.PlatformKey()
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
