package pattern

import "fmt"

// Title is the label placed on a part.
type Title struct {
	// The point the title is placed at.
	Anchor ID `json:"anchor"`
	// Part number, such as "3b". May be empty.
	Number  string `json:"number,omitempty"`
	Title   string `json:"title"`
	Message string `json:"message,omitempty"`
	// Layout hint for renderers, such as "vertical-small". Empty means the
	// default layout.
	Mode string `json:"mode,omitempty"`
}

// AddTitle places t on the part. The anchor point must exist.
func (p *Part) AddTitle(t Title) {
	if _, ok := p.lookup(t.Anchor); !ok {
		return
	}
	p.titles = append(p.titles, t)
}

func (p *Part) Titles() []Title { return p.titles }

func (t Title) String() string {
	if t.Number == "" {
		return fmt.Sprintf("%s (%s)", t.Title, t.Message)
	}
	return fmt.Sprintf("%s %s (%s)", t.Number, t.Title, t.Message)
}
