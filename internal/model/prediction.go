package model

import "github.com/google/uuid"

// AIPrediction is a transient suggestion used to prefill a product form.
// CategoryID is set only when SuggestedCategory exactly matches an existing
// category name in the shop; no fuzzy matching, no category is auto-created.
type AIPrediction struct {
	SuggestedCategory string     `json:"suggested_category"`
	ShortDescription  string     `json:"short_description"`
	CategoryID        *uuid.UUID `json:"category_id,omitempty"`
}
