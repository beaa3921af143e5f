package geom_test

import (
	"fmt"

	"github.com/riversidedenim/rvr1/geom"
)

func ExamplePoint_Shift() {
	hem := geom.Pt(0, 0)
	knee := hem.Shift(90, 480)
	fmt.Println(knee.Round())
	fmt.Printf("%.0f\n", hem.Angle(knee))
	fmt.Println(geom.Pt(210, -480).FlipX(-30))
	// Output:
	// (0, -480)
	// 90
	// (-270, -480)
}

func ExamplePolygon_Offset() {
	pocket := geom.Polygon{geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(100, 60), geom.Pt(0, 60)}
	lining, err := pocket.Offset(-10)
	if err != nil {
		panic(err)
	}

	// Draw both outlines as an SVG document.
	fmt.Println(`<svg viewBox="-10 -10 120 80" xmlns="http://www.w3.org/2000/svg">`)
	fmt.Printf(`<path d="%s" fill="none" stroke="black" />`+"\n", pocket.Path().SVG(geom.SVGOptions{}))
	fmt.Printf(`<path d="%s" fill="none" stroke="red" stroke-dasharray="2" />`+"\n", lining.Path().SVG(geom.SVGOptions{MaxPrecision: 3}))
	fmt.Println(`</svg>`)
	// Output:
	// <svg viewBox="-10 -10 120 80" xmlns="http://www.w3.org/2000/svg">
	// <path d="M0,0 L100,0 L100,60 L0,60 Z" fill="none" stroke="black" />
	// <path d="M10,10 L90,10 L90,50 L10,50 Z" fill="none" stroke="red" stroke-dasharray="2" />
	// </svg>
}
