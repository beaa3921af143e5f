package rvr1

import "github.com/riversidedenim/rvr1/pattern"

// finalizers adds the titles to each part, keyed by part name.
var finalizers = map[string]func(*pattern.Part){
	PartFront:            finalizeFront,
	PartBack:             finalizeBack,
	PartBackPocket:       finalizeBackPocket,
	PartBackPocketLining: finalizeBackPocketLining,
}

func finalizeFront(p *pattern.Part) {
	p.Shift("titleAnchor1", "front21", 270, 100)
	p.AddTitle(pattern.Title{
		Anchor:  "titleAnchor1",
		Title:   "Front",
		Message: "Compiled 1.0",
	})
}

func finalizeBack(p *pattern.Part) {
	p.NewPoint("titleAnchor", p.X("back2")/2, 135)
	p.AddTitle(interfacingTitle("Back"))
}

func finalizeBackPocket(p *pattern.Part) {
	p.NewPoint("titleAnchor", p.X("2")/2, 135)
	p.AddTitle(interfacingTitle("Back pocket"))
}

func finalizeBackPocketLining(p *pattern.Part) {
	p.NewPoint("titleAnchor", p.X("7")/2, 135)
	p.AddTitle(interfacingTitle("Back pocket lining"))
}

func interfacingTitle(title string) pattern.Title {
	return pattern.Title{
		Anchor:  "titleAnchor",
		Number:  "3b",
		Title:   title,
		Message: "1x from interfacing",
		Mode:    "vertical-small",
	}
}
