package render

import (
	"crypto/md5"
	"fmt"
	"image/color"
	"sort"

	svg "github.com/ajstarks/svgo"

	"github.com/anton-dovnar/revtree/revtree"
)

const (
	scale    = 1.5
	stepX    = 24
	stepY    = 30
	paddingX = 50
	paddingY = 8
	stopR    = 5
	railW    = 6
)

// SVGRailway wraps an *svg.SVG with the lattice-rail drawing routines
// adapted from the teacher's view.SVGRailway, retargeted from
// plumbing.Hash-keyed go-git commit maps to *revtree.Commit chains.
type SVGRailway struct {
	*svg.SVG
	colors map[string]color.RGBA
}

// NewSVGRailway wraps canvas with per-branch color memoization.
func NewSVGRailway(canvas *svg.SVG) *SVGRailway {
	return &SVGRailway{SVG: canvas, colors: make(map[string]color.RGBA)}
}

func (sr *SVGRailway) refToColor(ref string) color.RGBA {
	if c, ok := sr.colors[ref]; ok {
		return c
	}
	hash := md5.Sum([]byte(ref))
	h := float64(hash[0]) / 255.0
	s := 0.5 + (float64(hash[1])/255.0)*0.3
	l := 0.6 + (float64(hash[2])/255.0)*0.2
	c := hslToRGB(h, s, l)
	sr.colors[ref] = c
	return c
}

func hslToRGB(h, s, l float64) color.RGBA {
	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q, p float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p = 2*l - q
		r = hueToRGB(p, q, h+1.0/3)
		g = hueToRGB(p, q, h)
		b = hueToRGB(p, q, h-1.0/3)
	}
	return color.RGBA{R: uint8(r * 255), G: uint8(g * 255), B: uint8(b * 255), A: 255}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func colorToHex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (sr *SVGRailway) addS(path *string, dx, dy float64) {
	cp1x, cp1y := 0.0, float64(stepY)*(1.0/5.0)*dy
	cp2x, cp2y := -float64(stepX)*(1.0/4.0)*dx, float64(stepY)*(2.0/5.0)*dy
	end1x, end1y := -float64(stepX)*(1.0/2.0)*dx, float64(stepY)*(1.0/2.0)*dy
	cp3x, cp3y := -float64(stepX)*(1.0/4.0)*dx, float64(stepY)*(1.0/10.0)*dy
	cp4x, cp4y := -float64(stepX)*(1.0/2.0)*dx, float64(stepY)*(3.0/10.0)*dy
	end2x, end2y := -float64(stepX)*(1.0/2.0)*dx, float64(stepY)*(1.0/2.0)*dy
	*path += fmt.Sprintf("c %.1f %.1f %.1f %.1f %.1f %.1f ", cp1x, cp1y, cp2x, cp2y, end1x, end1y)
	*path += fmt.Sprintf("c %.1f %.1f %.1f %.1f %.1f %.1f ", cp3x, cp3y, cp4x, cp4y, end2x, end2y)
}

// Rail draws one rail segment from (x,y) to (px,py), in the given
// color, curving sideways (an "S" spline) when the column changes.
func (sr *SVGRailway) Rail(x, y, px, py int, c color.RGBA) {
	dx := x - px
	startX := paddingX + x*stepX
	startY := paddingY + y*stepY
	path := fmt.Sprintf("M %d %d ", startX, startY)

	if dx != 0 {
		path += fmt.Sprintf("V %d ", paddingY+(py+1)*stepY)
		sr.addS(&path, float64(dx), -1)
	} else {
		path += fmt.Sprintf("V %d", paddingY+py*stepY)
	}

	sr.Path(path, fmt.Sprintf(`fill="none" stroke="%s" stroke-width="%.1f"`, colorToHex(c), float64(railW)))
}

// Stop draws a commit's node circle plus its branch/tag labels.
func (sr *SVGRailway) Stop(x, y int, c color.RGBA, label string, heads, tags []string) {
	cx := paddingX + x*stepX
	cy := paddingY + y*stepY
	sr.Circle(cx, cy, stopR, fmt.Sprintf(`class="stop" fill="%s" id="%s"`, colorToHex(c), label))
	sr.addLabels(x, y, label, heads, tags)
}

func (sr *SVGRailway) addLabels(x, y int, label string, heads, tags []string) {
	ty := paddingY + y*stepY + 2
	labelX := paddingX + x*stepX + paddingY

	hashText := label
	if len(hashText) > 7 {
		hashText = hashText[:7]
	}
	sr.Text(8, ty, hashText, `fill="#c9bcbc" font-family="Ubuntu Mono" font-size="50%"`)

	offset := 0
	for _, h := range heads {
		c := sr.refToColor(h)
		sr.Writer.Write([]byte(fmt.Sprintf(`<text x="%d" y="%d"><tspan fill="%s" font-family="Ubuntu Mono" font-size="60%%" font-weight="bold">%s </tspan></text>`,
			labelX+offset, ty, colorToHex(c), h)))
		offset += len(h)*6 + 10
	}
	for _, t := range tags {
		sr.Writer.Write([]byte(fmt.Sprintf(`<text x="%d" y="%d"><tspan fill="#dad682" font-family="Ubuntu Mono" font-size="60%%" font-weight="bold">%s </tspan></text>`,
			labelX+offset, ty, t)))
		offset += len(t)*6 + 20
	}
}

// DrawRailway renders a merged RevList as an SVG lattice: one rail per
// branch column, a stop per commit, labeled with whichever heads/tags
// point at it.
func DrawRailway(canvas *svg.SVG, rl *revtree.RevList, layout *Layout) {
	headsByCommit := make(map[*revtree.Commit][]string)
	for _, h := range rl.Heads {
		headsByCommit[h.Commit] = append(headsByCommit[h.Commit], h.String())
	}
	tagsByCommit := make(map[*revtree.Commit][]string)
	for _, t := range rl.Tags {
		tagsByCommit[t.Commit] = append(tagsByCommit[t.Commit], t.String())
	}

	width := paddingX*2 + (layout.MaxX+1)*stepX
	height := paddingY*2 + (layout.MaxY+1)*stepY
	canvas.Startview(int(float64(width)*scale), int(float64(height)*scale), 0, 0, width, height)
	railway := NewSVGRailway(canvas)

	displayY := func(y int) int { return layout.MaxY - y }

	ordered := make([]*revtree.Commit, 0, len(layout.Positions))
	for c := range layout.Positions {
		ordered = append(ordered, c)
	}
	sort.Slice(ordered, func(i, j int) bool {
		pi, pj := layout.Positions[ordered[i]], layout.Positions[ordered[j]]
		if pi.Y != pj.Y {
			return pi.Y < pj.Y
		}
		return pi.X < pj.X
	})

	for _, c := range ordered {
		pos := layout.Positions[c]
		columnRef := layout.Columns[pos.X]
		columnName := "unknown"
		if columnRef != nil {
			columnName = columnRef.String()
		}
		col := railway.refToColor(columnName)

		if c.Parent != nil {
			if ppos, ok := layout.Positions[c.Parent]; ok {
				railway.Rail(pos.X, displayY(pos.Y), ppos.X, displayY(ppos.Y), col)
			}
		}
	}

	for _, c := range ordered {
		pos := layout.Positions[c]
		label := commitLabel(c)
		railway.Stop(pos.X, displayY(pos.Y), color.RGBA{219, 219, 219, 255}, label, headsByCommit[c], tagsByCommit[c])
	}

	canvas.End()
}

func commitLabel(c *revtree.Commit) string {
	if c.HasCommitID {
		return c.CommitID
	}
	if len(c.Files) > 0 {
		return c.Files[0].String()
	}
	if c.Log != nil {
		return *c.Log
	}
	return "commit"
}
