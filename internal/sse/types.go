package sse

// CollectionChangedPayload is the SSE payload for single-card ownership changes
type CollectionChangedPayload struct {
	CardID    string `json:"card_id"`
	NormalQty int    `json:"normal_qty"`
	FoilQty   int    `json:"foil_qty"`
	Wanted    bool   `json:"wanted"`
	Owned     bool   `json:"owned"`
}

// ImportCompletedPayload is the SSE payload for bulk collection imports
type ImportCompletedPayload struct {
	Kept    int `json:"kept"`
	Dropped int `json:"dropped"`
}

// CatalogRefreshedPayload is the SSE payload for cold catalog loads. Cache
// hits are not broadcast; clients only care when the card list could have
// changed.
type CatalogRefreshedPayload struct {
	SetCode string `json:"set_code"`
	Variant string `json:"variant"`
	Cards   int    `json:"cards"`
}

// SnapshotRecordedPayload is the SSE payload for daily value snapshots
type SnapshotRecordedPayload struct {
	Date            string `json:"date"`
	TotalCards      int    `json:"total_cards"`
	OwnedCards      int    `json:"owned_cards"`
	CollectionValue string `json:"collection_value"`
}
