// api/schemas/reports.go

// Package schemas defines the JSON report shapes emitted by the
// pagemark CLI. They are wire types: keep them free of behavior so
// downstream tooling can consume them without importing internals.
package schemas

// Box is a bounding box in rendered pixel space.
type Box struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// SurfaceReport describes one rendered-page surface of a snapshot.
type SurfaceReport struct {
	DocumentID string  `json:"document_id"`
	PageNumber int     `json:"page_number"`
	Scale      float64 `json:"scale"`
	ScreenRect *Box    `json:"screen_rect,omitempty"`
	// Error carries a metadata defect (missing or malformed viewport)
	// instead of hiding it; the surface is still listed.
	Error string `json:"error,omitempty"`
}

// HitReport is the result of a point lookup.
type HitReport struct {
	Found bool    `json:"found"`
	Kind  string  `json:"kind,omitempty"`
	ID    string  `json:"id,omitempty"`
	Box   *Box    `json:"box,omitempty"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// BoundsReport is the aggregate bound of one annotation id in one
// snapshot.
type BoundsReport struct {
	Snapshot     string `json:"snapshot"`
	AnnotationID string `json:"annotation_id"`
	Found        bool   `json:"found"`
	Bounds       *Box   `json:"bounds,omitempty"`
	Error        string `json:"error,omitempty"`
}
