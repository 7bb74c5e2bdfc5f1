package model

// Catalog content is immutable at runtime: loaded once at startup and never
// mutated, so it is shared freely across requests without locking.

type QuizQuestion struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Correct  int      `json:"correct"`
}

type Lesson struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	Duration string         `json:"duration"`
	XP       int            `json:"xp"`
	Content  string         `json:"content"`
	Quiz     []QuizQuestion `json:"quiz,omitempty"`
}

type Module struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
	Lessons     []Lesson `json:"lessons"`
}

// ModuleProgress is the per-user completion summary injected into module
// listings. Display data, not authoritative state.
type ModuleProgress struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	XPReward    int    `json:"xp_reward"`
}

type Challenge struct {
	ID        string   `json:"id"`
	Narrative string   `json:"narrative,omitempty"`
	Question  string   `json:"question"`
	Choices   []string `json:"choices"`
	Correct   int      `json:"correct"`
	XPReward  int      `json:"xp_reward"`
	Success   string   `json:"success_text,omitempty"`
	Failure   string   `json:"failure_text,omitempty"`
}

type Chapter struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	Icon            string      `json:"icon"`
	Color           string      `json:"color"`
	Intro           string      `json:"intro,omitempty"`
	Conclusion      string      `json:"conclusion,omitempty"`
	Challenges      []Challenge `json:"challenges"`
	CompletionXP    int         `json:"completion_xp"`
	CompletionBadge *Badge      `json:"completion_badge,omitempty"`
}
