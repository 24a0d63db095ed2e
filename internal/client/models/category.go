package models

// Category is a lookup record; read-only from this client's perspective.
// Color is a hex value like "#3498db".
type Category struct {
	ID    int64  `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon,omitempty"`
}
