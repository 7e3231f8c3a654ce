/*package viz renders the measured diagnostic series of a run to an image
for a quick look at the decay behavior, without leaving Go for an external
plotting tool.
*/
package viz

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/latticekit/bgkflow/diag"
)

// Series accumulates one Props sample per measured timestep.
type Series struct {
	Steps  []float64
	Energy []float64
	RhoErr []float64
	UxErr  []float64
	UyErr  []float64
}

// Append records the flow properties measured at the given timestep.
func (s *Series) Append(step int, p diag.Props) {
	s.Steps = append(s.Steps, float64(step))
	s.Energy = append(s.Energy, p.Energy)
	s.RhoErr = append(s.RhoErr, p.RhoErr)
	s.UxErr = append(s.UxErr, p.UxErr)
	s.UyErr = append(s.UyErr, p.UyErr)
}

// Len returns the number of recorded samples.
func (s *Series) Len() int { return len(s.Steps) }

var lineColors = []color.RGBA{
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
}

// SavePlot writes a log-scale plot of the series to fname. The format is
// chosen from the file extension (.png, .pdf, .svg, ...). At least one
// sample must have been recorded.
func (s *Series) SavePlot(fname string) error {
	if s.Len() == 0 {
		return fmt.Errorf("no diagnostic samples recorded")
	}

	p := plot.New()
	p.Title.Text = "Taylor-Green vortex decay"
	p.X.Label.Text = "timestep"
	p.Y.Label.Text = "kinetic energy / L2 error"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true

	curves := []struct {
		name string
		ys   []float64
	}{
		{"energy", s.Energy},
		{"rho error", s.RhoErr},
		{"ux error", s.UxErr},
		{"uy error", s.UyErr},
	}

	for i, c := range curves {
		xys := make(plotter.XYs, 0, len(c.ys))
		for j, y := range c.ys {
			// The log axis cannot represent zero samples.
			if y > 0 {
				xys = append(xys, plotter.XY{X: s.Steps[j], Y: y})
			}
		}
		if len(xys) == 0 {
			continue
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.Color = lineColors[i%len(lineColors)]
		p.Add(line)
		p.Legend.Add(c.name, line)
	}

	return p.Save(8*vg.Inch, 6*vg.Inch, fname)
}
