// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package retention decides which historical vault snapshots survive after a
// new snapshot is accepted.
//
// A [Policy] is an ordered list of independent [Rule] values. Each rule picks
// the snapshots it wants to keep from the full history; a snapshot survives
// when at least one rule keeps it. The snapshot just written and the newest
// snapshot of the history always survive. [Prune] is pure: it only computes
// the deletion set, the caller deletes.
package retention

import (
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Rule selects a keep-set from a snapshot history.
//
// Implementations must be deterministic and must keep the same snapshots
// when applied again to their own survivors, which makes [Prune] idempotent.
type Rule interface {
	Keep(history []models.SnapshotMeta, now time.Time) []models.SnapshotMeta
	String() string
}

// Policy is an ordered collection of rules.
type Policy []Rule

// String renders p in the format accepted by [ParsePolicy].
func (p Policy) String() string {
	parts := make([]string, len(p))
	for i, rule := range p {
		parts[i] = rule.String()
	}
	return strings.Join(parts, ",")
}

// Prune returns the snapshots of history that no rule keeps, ordered by
// revision. justWritten may or may not be part of history; it is never
// returned, and neither is the snapshot with the highest revision.
func Prune(policy Policy, history []models.SnapshotMeta, now time.Time, justWritten models.SnapshotMeta) []models.SnapshotMeta {
	all := withSnapshot(history, justWritten)
	if len(all) == 0 {
		return nil
	}

	keep := map[int64]struct{}{
		justWritten.Revision:     {},
		all[len(all)-1].Revision: {},
	}
	for _, rule := range policy {
		for _, s := range rule.Keep(all, now) {
			keep[s.Revision] = struct{}{}
		}
	}

	var toDelete []models.SnapshotMeta
	for _, s := range all {
		if _, ok := keep[s.Revision]; !ok {
			toDelete = append(toDelete, s)
		}
	}

	return toDelete
}

// withSnapshot returns a copy of history plus s, deduplicated by revision and
// sorted ascending by revision.
func withSnapshot(history []models.SnapshotMeta, s models.SnapshotMeta) []models.SnapshotMeta {
	all := make([]models.SnapshotMeta, 0, len(history)+1)
	seen := make(map[int64]struct{}, len(history)+1)

	for _, h := range history {
		if _, dup := seen[h.Revision]; dup {
			continue
		}
		seen[h.Revision] = struct{}{}
		all = append(all, h)
	}
	if _, dup := seen[s.Revision]; !dup {
		all = append(all, s)
	}

	slices.SortFunc(all, byRevision)
	return all
}

func byRevision(a, b models.SnapshotMeta) int {
	switch {
	case a.Revision < b.Revision:
		return -1
	case a.Revision > b.Revision:
		return 1
	default:
		return 0
	}
}

// newestDesc returns a copy of history ordered newest first.
func newestDesc(history []models.SnapshotMeta) []models.SnapshotMeta {
	sorted := slices.Clone(history)
	slices.SortFunc(sorted, func(a, b models.SnapshotMeta) int { return byRevision(b, a) })
	return sorted
}
