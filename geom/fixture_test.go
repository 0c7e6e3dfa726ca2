package geom

import (
	"embed"
	"log"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures into 2D lines. This is not a full svg
// handler: it finds every <line> element, reads its endpoints, and extends
// each segment into the infinite line through it. If anything goes wrong, it
// bails out of the test run.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadLineFixture(name string) []TwoDLine {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	lineEls := rootEl.FindAll("line")
	if len(lineEls) == 0 {
		log.Fatalf("No lines found in fixture %q", name)
	}

	lines := make([]TwoDLine, 0, len(lineEls))
	for _, el := range lineEls {
		p1 := fixturePoint(name, el.Attributes["x1"], el.Attributes["y1"])
		p2 := fixturePoint(name, el.Attributes["x2"], el.Attributes["y2"])
		line, err := TwoDLineFromPoints(p1, p2)
		if err != nil {
			log.Fatalf("Fixture %q contains a degenerate line: %v", name, err)
		}
		lines = append(lines, line)
	}
	return lines
}

func fixturePoint(fixtureName, xs, ys string) Vector {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		log.Fatalf("Invalid x value %q in fixture %q: %v", xs, fixtureName, err)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		log.Fatalf("Invalid y value %q in fixture %q: %v", ys, fixtureName, err)
	}
	p, err := NewVector2D(x, y)
	if err != nil {
		log.Fatalf("Invalid point in fixture %q: %v", fixtureName, err)
	}
	return p
}
