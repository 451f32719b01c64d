package collection

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/binderapp/binder/internal/domain"
)

// sanitizeEntry turns one raw import element into a typed entry. The import
// format predates this service and was written by clients that never
// validated anything, so the rules are deliberately forgiving: quantities
// accept any numeric-looking value and clamp to non-negative integers, the
// wishlist flag accepts anything truthy. Only a structurally unusable element
// (not an object, or no usable itemId) is rejected.
func sanitizeEntry(raw json.RawMessage) (domain.CollectionEntry, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return domain.CollectionEntry{}, false
	}

	var cardID string
	if err := json.Unmarshal(fields["itemId"], &cardID); err != nil || cardID == "" {
		return domain.CollectionEntry{}, false
	}

	return domain.CollectionEntry{
		CardID:    cardID,
		NormalQty: coerceQuantity(fields["normalQty"]),
		FoilQty:   coerceQuantity(fields["foilQty"]),
		Wanted:    coerceFlag(fields["wanted"]),
	}, true
}

// coerceQuantity maps a raw JSON value to a non-negative copy count.
// Numbers and numeric strings are truncated toward zero; everything else,
// including negatives, becomes 0.
func coerceQuantity(raw json.RawMessage) int {
	if raw == nil {
		return 0
	}

	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		return clampFloat(num.String())
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return clampFloat(s)
	}

	return 0
}

func clampFloat(s string) int {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 0
	}
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}

// coerceFlag maps a raw JSON value to a wishlist flag using truthiness:
// false, 0, "", null and absent are false, anything else is true.
func coerceFlag(raw json.RawMessage) bool {
	if raw == nil {
		return false
	}

	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}

	switch val := v.(type) {
	case nil:
		return false
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val != ""
	default:
		// objects and arrays
		return true
	}
}
