package dto

// MenuItem is one node of the navigation tree returned to the front end.
// Items carry the permission claim required to see them; group nodes have
// children instead of a path.
type MenuItem struct {
	Title      string     `json:"title"`
	Icon       string     `json:"icon,omitempty"`
	Path       string     `json:"path,omitempty"`
	Permission string     `json:"permission,omitempty"`
	Children   []MenuItem `json:"children,omitempty"`
}
