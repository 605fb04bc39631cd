// chart.go defines the declarative chart descriptor attached to answers.
//
// The shape follows Plotly's data/layout split so a web front end can
// hand it straight to a plotting library; the TUI renders the first
// series as horizontal bars.
package ai

import "encoding/json"

// ChartConfig is a chart descriptor: one or more series plus a layout.
type ChartConfig struct {
	Data   []Trace `json:"data" yaml:"data"`
	Layout Layout  `json:"layout" yaml:"layout"`
}

// Trace is one plotted series.
type Trace struct {
	Type   string    `json:"type" yaml:"type"`
	Name   string    `json:"name,omitempty" yaml:"name,omitempty"`
	Mode   string    `json:"mode,omitempty" yaml:"mode,omitempty"`
	X      []string  `json:"x,omitempty" yaml:"x,omitempty"`
	Y      []float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Labels []string  `json:"labels,omitempty" yaml:"labels,omitempty"`
	Values []float64 `json:"values,omitempty" yaml:"values,omitempty"`
	Lat    []float64 `json:"lat,omitempty" yaml:"lat,omitempty"`
	Lon    []float64 `json:"lon,omitempty" yaml:"lon,omitempty"`
	Text   []string  `json:"text,omitempty" yaml:"text,omitempty"`
	YAxis  string    `json:"yaxis,omitempty" yaml:"yaxis,omitempty"`
	Marker *Marker   `json:"marker,omitempty" yaml:"marker,omitempty"`
	Line   *Line     `json:"line,omitempty" yaml:"line,omitempty"`
}

// Series returns the trace's category labels and values, whatever the
// trace type.
func (t Trace) Series() ([]string, []float64) {
	switch {
	case t.Type == "pie":
		return t.Labels, t.Values
	case t.Type == "scattermapbox" && t.Marker != nil:
		return t.Text, t.Marker.Color.Scale
	default:
		return t.X, t.Y
	}
}

// Marker styles the points of a trace.
type Marker struct {
	Color      Colors    `json:"color" yaml:"color"`
	Size       []float64 `json:"size,omitempty" yaml:"size,omitempty"`
	Colorscale string    `json:"colorscale,omitempty" yaml:"colorscale,omitempty"`
	Opacity    float64   `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	ShowScale  bool      `json:"showscale,omitempty" yaml:"showscale,omitempty"`
}

// Colors is a marker color: one color, one color per point, or numeric
// values mapped through a colorscale.
type Colors struct {
	Names []string
	Scale []float64
}

// Color returns a single-color value.
func Color(c string) Colors { return Colors{Names: []string{c}} }

// Palette returns a per-point color list.
func Palette(cs ...string) Colors { return Colors{Names: cs} }

// Scaled returns colorscale input values.
func Scaled(vs []float64) Colors { return Colors{Scale: vs} }

func (c Colors) value() interface{} {
	switch {
	case c.Scale != nil:
		return c.Scale
	case len(c.Names) == 1:
		return c.Names[0]
	default:
		return c.Names
	}
}

// MarshalJSON emits a string, a string array or a number array.
func (c Colors) MarshalJSON() ([]byte, error) { return json.Marshal(c.value()) }

// MarshalYAML mirrors MarshalJSON.
func (c Colors) MarshalYAML() (interface{}, error) { return c.value(), nil }

// Line styles a line trace.
type Line struct {
	Color string `json:"color" yaml:"color"`
}

// Layout holds chart-wide settings.
type Layout struct {
	Title      string  `json:"title" yaml:"title"`
	Autosize   bool    `json:"autosize,omitempty" yaml:"autosize,omitempty"`
	Height     int     `json:"height" yaml:"height"`
	Margin     Margin  `json:"margin" yaml:"margin"`
	PaperBG    string  `json:"paper_bgcolor,omitempty" yaml:"paper_bgcolor,omitempty"`
	PlotBG     string  `json:"plot_bgcolor,omitempty" yaml:"plot_bgcolor,omitempty"`
	Font       *Font   `json:"font,omitempty" yaml:"font,omitempty"`
	HoverMode  string  `json:"hovermode,omitempty" yaml:"hovermode,omitempty"`
	Mapbox     *Mapbox `json:"mapbox,omitempty" yaml:"mapbox,omitempty"`
	YAxis      *Axis   `json:"yaxis,omitempty" yaml:"yaxis,omitempty"`
	YAxis2     *Axis   `json:"yaxis2,omitempty" yaml:"yaxis2,omitempty"`
	ShowLegend bool    `json:"showlegend,omitempty" yaml:"showlegend,omitempty"`
}

// Margin is the plot margin in pixels.
type Margin struct {
	L int `json:"l" yaml:"l"`
	R int `json:"r" yaml:"r"`
	T int `json:"t" yaml:"t"`
	B int `json:"b" yaml:"b"`
}

// Font sets the chart font.
type Font struct {
	Family string `json:"family" yaml:"family"`
}

// Axis configures a y axis.
type Axis struct {
	Title      string `json:"title" yaml:"title"`
	Overlaying string `json:"overlaying,omitempty" yaml:"overlaying,omitempty"`
	Side       string `json:"side,omitempty" yaml:"side,omitempty"`
}

// Mapbox configures a map layer.
type Mapbox struct {
	Style  string  `json:"style" yaml:"style"`
	Center LatLon  `json:"center" yaml:"center"`
	Zoom   float64 `json:"zoom" yaml:"zoom"`
}

// LatLon is a geographic coordinate.
type LatLon struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

const (
	transparent  = "rgba(0,0,0,0)"
	defaultColor = "#3b82f6"
)

// newChart builds the standard single-series chart. Pie charts carry
// their points as labels/values instead of x/y.
func newChart(title string, x []string, y []float64, typ string, color Colors) *ChartConfig {
	if color.Names == nil && color.Scale == nil {
		color = Color(defaultColor)
	}
	tr := Trace{Type: typ, Marker: &Marker{Color: color}}
	if typ == "pie" {
		tr.Labels, tr.Values = x, y
	} else {
		tr.X, tr.Y = x, y
	}
	return &ChartConfig{
		Data: []Trace{tr},
		Layout: Layout{
			Title:    title,
			Autosize: true,
			Height:   300,
			Margin:   Margin{L: 50, R: 20, T: 40, B: 40},
			PaperBG:  transparent,
			PlotBG:   transparent,
			Font:     &Font{Family: "Inter"},
		},
	}
}
