package model

// GeneratedModule is the shape the text-completion upstream is asked to
// return for /modules/generate. Progress is attached server-side before the
// module is handed back to the client.
type GeneratedModule struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	Color       string          `json:"color"`
	Lessons     []Lesson        `json:"lessons"`
	Progress    *ModuleProgress `json:"progress,omitempty"`
}

// AuthUser is the identity returned by the OAuth userinfo endpoint.
type AuthUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}
