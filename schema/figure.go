package schema

// Figure is the plotly-shaped chart document the API hands to the browser.
// The dashboard page passes it to Plotly.js unmodified, so the field names
// below follow the plotly figure JSON schema rather than Go conventions.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is a single plotted series. Only the fields the dashboard uses are
// modeled; zero values are omitted from the JSON.
type Trace struct {
	Type         string    `json:"type"`
	Name         string    `json:"name,omitempty"`
	Mode         string    `json:"mode,omitempty"`
	X            []any     `json:"x,omitempty"`
	Y            []any     `json:"y,omitempty"`
	Z            []float64 `json:"z,omitempty"`
	Locations    []string  `json:"locations,omitempty"`
	Text         []string  `json:"text,omitempty"`
	Fill         string    `json:"fill,omitempty"`
	FillColor    string    `json:"fillcolor,omitempty"`
	Orientation  string    `json:"orientation,omitempty"`
	ColorScale   string    `json:"colorscale,omitempty"`
	ShowScale    bool      `json:"showscale,omitempty"`
	Line         *Line     `json:"line,omitempty"`
	Marker       *Marker   `json:"marker,omitempty"`
	GeoJSON      any       `json:"geojson,omitempty"`
	FeatureIDKey string    `json:"featureidkey,omitempty"`
	BoxPoints    string    `json:"boxpoints,omitempty"`
}

type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
	Dash  string  `json:"dash,omitempty"`
}

type Marker struct {
	Color any     `json:"color,omitempty"`
	Size  float64 `json:"size,omitempty"`
}

type Layout struct {
	Title       *Title       `json:"title,omitempty"`
	XAxis       *Axis        `json:"xaxis,omitempty"`
	YAxis       *Axis        `json:"yaxis,omitempty"`
	BarMode     string       `json:"barmode,omitempty"`
	ShowLegend  *bool        `json:"showlegend,omitempty"`
	Annotations []Annotation `json:"annotations,omitempty"`
	Geo         *GeoLayout   `json:"geo,omitempty"`
	Margin      *Margin      `json:"margin,omitempty"`
}

type Title struct {
	Text string  `json:"text"`
	X    float64 `json:"x,omitempty"`
}

type Axis struct {
	Title    string `json:"title,omitempty"`
	TickMode string `json:"tickmode,omitempty"`
	DTick    any    `json:"dtick,omitempty"`
}

// Annotation carries free text placed on the plot area. The "No data
// available" placeholder is an annotation on an otherwise empty figure.
type Annotation struct {
	Text      string  `json:"text"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	XRef      string  `json:"xref,omitempty"`
	YRef      string  `json:"yref,omitempty"`
	ShowArrow bool    `json:"showarrow"`
}

type GeoLayout struct {
	ShowFrame     bool `json:"showframe"`
	ShowCoastline bool `json:"showcoastlines"`
}

type Margin struct {
	L int `json:"l"`
	R int `json:"r"`
	T int `json:"t"`
	B int `json:"b"`
}

// NoDataFigure builds the placeholder figure every chart endpoint returns
// when the current selection matches no rows.
func NoDataFigure(title string) *Figure {
	return &Figure{
		Data: []Trace{},
		Layout: Layout{
			Title: &Title{Text: title},
			Annotations: []Annotation{
				{
					Text:      "No data available",
					X:         0.5,
					Y:         0.5,
					XRef:      "paper",
					YRef:      "paper",
					ShowArrow: false,
				},
			},
		},
	}
}
