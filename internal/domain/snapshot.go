package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SnapshotDateLayout is the calendar-day key format for value snapshots
const SnapshotDateLayout = "2006-01-02"

// ValueSnapshot captures the collection's worth at the end of one calendar
// day (UTC). At most one snapshot exists per day; re-recording replaces it.
type ValueSnapshot struct {
	Date            string          `json:"date"` // YYYY-MM-DD, UTC
	TotalCards      int             `json:"total_cards"`
	OwnedCards      int             `json:"owned_cards"`
	CollectionValue decimal.Decimal `json:"collection_value"`
	RecordedAt      time.Time       `json:"recorded_at"`
}
