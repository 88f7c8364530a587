package dto

type Emoji struct {
	ID       string   `json:"id,omitempty"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Group    string   `json:"group"`
	HTMLCode string   `json:"html_code"`
	Unicode  []string `json:"unicode,omitempty"`
	Glyph    string   `json:"glyph"`
}
