package domain

// Preferences carries the matching preferences a client submits on enqueue.
// It is a closed, versioned struct: unknown fields in client payloads are
// rejected at the boundary instead of being carried around as loose maps.
type Preferences struct {
	// Version of the preference schema the client speaks. Defaults to 1.
	Version int `json:"version,omitempty"`
	// Hashtags the user explicitly picked, already normalized ("#ai").
	Hashtags []string `json:"hashtags,omitempty" validate:"max=20,dive,min=2,max=64"`
	// Interests is free-form text; hashtags are derived from it when the
	// client did not pick any explicitly.
	Interests string `json:"interests,omitempty" validate:"max=500"`
	// Language hint for interest extraction (ISO 639-1), optional.
	Language string `json:"language,omitempty" validate:"omitempty,len=2"`
	// Priority shifts the queue ordering; lower values are served sooner.
	Priority int `json:"priority,omitempty" validate:"min=0,max=9"`
}
