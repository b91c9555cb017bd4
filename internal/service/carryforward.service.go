package service

import (
	"sort"

	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/util"

	"github.com/google/uuid"
)

// CompositeInput carries the raw entity collections needed to resolve a
// snapshot's composite view. Snapshots must be sorted ascending by date.
type CompositeInput struct {
	Target     domain.Snapshot
	Snapshots  []domain.Snapshot
	Values     []domain.SnapshotAssetValue
	AssetsByID map[uuid.UUID]domain.Asset
}

// CompositeValues resolves the gap-free composite view of the target
// snapshot: every platform's latest known asset values, entered directly
// or inherited from the most recent earlier snapshot that covered the
// platform.
//
// Resolution is platform-granular. If a platform has any direct entry in
// the target snapshot, none of that platform's assets are pulled from
// history, even individually stale ones. Once a prior snapshot supplies
// a platform, older snapshots can never re-supply it, so each platform
// has at most one source snapshot.
func CompositeValues(in CompositeInput) []domain.CompositeAssetValue {
	valuesBySnapshot := map[uuid.UUID][]domain.SnapshotAssetValue{}
	for _, v := range in.Values {
		valuesBySnapshot[v.SnapshotID] = append(valuesBySnapshot[v.SnapshotID], v)
	}

	out := []domain.CompositeAssetValue{}

	satisfied := map[string]bool{}
	for _, v := range valuesBySnapshot[in.Target.SnapshotID] {
		asset := in.AssetsByID[v.AssetID]
		satisfied[asset.PlatformKey()] = true
		out = append(out, domain.CompositeAssetValue{
			Asset: asset,
			Value: v.Value,
		})
	}

	prior := []domain.Snapshot{}
	for _, s := range in.Snapshots {
		if s.Date.Before(in.Target.Date) {
			prior = append(prior, s)
		}
	}
	// walk most recent first
	sort.Slice(prior, func(i, j int) bool {
		return prior[i].Date.After(prior[j].Date)
	})

	for _, s := range prior {
		seenHere := map[string]bool{}
		for _, v := range valuesBySnapshot[s.SnapshotID] {
			asset := in.AssetsByID[v.AssetID]
			platform := asset.PlatformKey()
			seenHere[platform] = true
			if satisfied[platform] {
				continue
			}
			out = append(out, domain.CompositeAssetValue{
				Asset:          asset,
				Value:          v.Value,
				CarriedForward: true,
				SourceDate:     util.TimePointer(s.Date),
			})
		}
		// only after the whole snapshot is processed: all of a
		// platform's assets in one snapshot carry forward together
		for platform := range seenHere {
			satisfied[platform] = true
		}
	}

	return out
}
