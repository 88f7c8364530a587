package dto

type PageButton struct {
	Kind   string `json:"kind"`
	Page   int    `json:"page,omitempty"`
	Active bool   `json:"active,omitempty"`
}

type Page struct {
	Category    string       `json:"category"`
	Categories  []string     `json:"categories"`
	Page        int          `json:"page"`
	PageSize    int          `json:"page_size"`
	TotalPages  int          `json:"total_pages"`
	Total       int          `json:"total"`
	WindowPages int          `json:"window_pages"`
	Buttons     []PageButton `json:"buttons"`
	Items       []Emoji      `json:"items"`
}
