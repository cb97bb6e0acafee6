package retention

import (
	"strconv"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

// KeepLatest keeps the N snapshots with the highest revisions.
type KeepLatest struct {
	N int
}

func (r KeepLatest) Keep(history []models.SnapshotMeta, _ time.Time) []models.SnapshotMeta {
	sorted := newestDesc(history)
	return sorted[:min(max(r.N, 0), len(sorted))]
}

func (r KeepLatest) String() string { return "latest:" + strconv.Itoa(r.N) }

// KeepDaily keeps the newest snapshot of each UTC calendar day for the last
// Days days, today included.
type KeepDaily struct {
	Days int
}

func (r KeepDaily) Keep(history []models.SnapshotMeta, now time.Time) []models.SnapshotMeta {
	if r.Days <= 0 {
		return nil
	}
	from := truncateDay(now).AddDate(0, 0, -(r.Days - 1))
	return newestPerBucket(history, func(s models.SnapshotMeta) (int64, bool) {
		day := truncateDay(s.CreatedAt)
		return day.Unix(), !day.Before(from)
	})
}

func (r KeepDaily) String() string { return "daily:" + strconv.Itoa(r.Days) }

// KeepWeekly keeps the newest snapshot of each ISO week (Monday start, UTC)
// for the last Weeks weeks, the current week included.
type KeepWeekly struct {
	Weeks int
}

func (r KeepWeekly) Keep(history []models.SnapshotMeta, now time.Time) []models.SnapshotMeta {
	if r.Weeks <= 0 {
		return nil
	}
	from := truncateWeek(now).AddDate(0, 0, -7*(r.Weeks-1))
	return newestPerBucket(history, func(s models.SnapshotMeta) (int64, bool) {
		week := truncateWeek(s.CreatedAt)
		return week.Unix(), !week.Before(from)
	})
}

func (r KeepWeekly) String() string { return "weekly:" + strconv.Itoa(r.Weeks) }

// KeepMonthly keeps the newest snapshot of each UTC calendar month for the
// last Months months, the current month included.
type KeepMonthly struct {
	Months int
}

func (r KeepMonthly) Keep(history []models.SnapshotMeta, now time.Time) []models.SnapshotMeta {
	if r.Months <= 0 {
		return nil
	}
	from := monthIndex(now) - int64(r.Months-1)
	return newestPerBucket(history, func(s models.SnapshotMeta) (int64, bool) {
		month := monthIndex(s.CreatedAt)
		return month, month >= from
	})
}

func (r KeepMonthly) String() string { return "monthly:" + strconv.Itoa(r.Months) }

// KeepPerVersion keeps the newest snapshot of each data-model version, for
// the Versions versions whose newest snapshots are most recent.
type KeepPerVersion struct {
	Versions int
}

func (r KeepPerVersion) Keep(history []models.SnapshotMeta, _ time.Time) []models.SnapshotMeta {
	var kept []models.SnapshotMeta
	seen := make(map[string]struct{})

	for _, s := range newestDesc(history) {
		if len(kept) >= r.Versions {
			break
		}
		if _, ok := seen[s.Version]; ok {
			continue
		}
		seen[s.Version] = struct{}{}
		kept = append(kept, s)
	}
	return kept
}

func (r KeepPerVersion) String() string { return "versions:" + strconv.Itoa(r.Versions) }

// KeepMeaningful keeps the N newest snapshots that hold user data, so a run
// of empty or test pushes cannot push the last real vault out of history.
type KeepMeaningful struct {
	N int
}

func (r KeepMeaningful) Keep(history []models.SnapshotMeta, _ time.Time) []models.SnapshotMeta {
	var kept []models.SnapshotMeta
	for _, s := range newestDesc(history) {
		if len(kept) >= r.N {
			break
		}
		if s.HasUserData() {
			kept = append(kept, s)
		}
	}
	return kept
}

func (r KeepMeaningful) String() string { return "meaningful:" + strconv.Itoa(r.N) }

// newestPerBucket keeps the highest-revision snapshot of every bucket that
// bucketOf accepts.
func newestPerBucket(history []models.SnapshotMeta, bucketOf func(models.SnapshotMeta) (int64, bool)) []models.SnapshotMeta {
	newest := make(map[int64]models.SnapshotMeta)
	for _, s := range history {
		bucket, ok := bucketOf(s)
		if !ok {
			continue
		}
		if cur, found := newest[bucket]; !found || s.Revision > cur.Revision {
			newest[bucket] = s
		}
	}

	kept := make([]models.SnapshotMeta, 0, len(newest))
	for _, s := range newest {
		kept = append(kept, s)
	}
	return kept
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func truncateWeek(t time.Time) time.Time {
	day := truncateDay(t)
	// Monday = 0 ... Sunday = 6
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func monthIndex(t time.Time) int64 {
	y, m, _ := t.UTC().Date()
	return int64(y)*12 + int64(m) - 1
}
