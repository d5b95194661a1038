package models

// Section is a node of the catalog tree. ParentID is nil for root sections.
type Section struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Order    int    `json:"order"`
	ParentID *int   `json:"parent_id,omitempty"`
}
