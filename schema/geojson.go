package schema

import "encoding/json"

// FeatureCollection models the world-countries boundary file. Geometries
// are kept as raw JSON: the server never inspects coordinates, it only
// joins on the feature name and embeds the geometry back into figure or
// map output.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string            `json:"type"`
	ID         string            `json:"id,omitempty"`
	Properties FeatureProperties `json:"properties"`
	Geometry   json.RawMessage   `json:"geometry"`
}

type FeatureProperties struct {
	Name string `json:"name"`
}
