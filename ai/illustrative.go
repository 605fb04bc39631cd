// illustrative.go collects the fixed figures the simulated integrations
// report. None of them is derived from the dataset; they are placeholders
// for real forex, market and maps feeds.
package ai

// Rate is one exchange rate against USD.
type Rate struct {
	Code  string  // "EUR"
	Label string  // "EUR (€)"
	Value float64 // units per USD
	Color string  // bar color
}

// Place is a display coordinate for a sales region.
type Place struct {
	Lat  float64
	Lon  float64
	Name string
}

// Illustrative holds every stated constant used by the simulated
// integrations.
type Illustrative struct {
	BaseColor string
	Rates     []Rate

	// Market correlation series, one point per month.
	Months            []string
	SalesTrend        []float64
	AssetTrend        []float64
	CorrelationPoints int // rows shown in the correlation table
	Correlation       float64

	CostShare   float64
	ProfitShare float64

	IndustryGrowth float64 // percent
	Outperformance float64 // percentage points
	TrendURL       string

	MapCenter  Place
	MapZoom    float64
	MinMarker  float64
	MaxMarker  float64
	Regions    map[string]Place
	ExportPath string
	ExportFile string
	ExportSize string
}

// DefaultIllustrative returns the stock figures.
func DefaultIllustrative() Illustrative {
	return Illustrative{
		BaseColor: "#3b82f6",
		Rates: []Rate{
			{Code: "EUR", Label: "EUR (€)", Value: 0.92, Color: "#6366f1"},
			{Code: "MXN", Label: "MXN ($)", Value: 17.05, Color: "#10b981"},
			{Code: "GBP", Label: "GBP (£)", Value: 0.79, Color: "#f43f5e"},
		},
		Months:            []string{"Jan", "Feb", "Mar", "Apr", "May"},
		SalesTrend:        []float64{1200, 1500, 1100, 1800, 2200},
		AssetTrend:        []float64{42000, 43500, 41000, 44000, 46000},
		CorrelationPoints: 3,
		Correlation:       0.65,
		CostShare:         0.65,
		ProfitShare:       0.35,
		IndustryGrowth:    4.5,
		Outperformance:    2,
		TrendURL:          "https://search.brave.com/search?q=retail+market+trends+2025",
		MapCenter:         Place{Lat: 40.4168, Lon: -3.7038, Name: "Madrid"},
		MapZoom:           11,
		MinMarker:         20,
		MaxMarker:         50,
		Regions: map[string]Place{
			"Centro": {Lat: 40.4168, Lon: -3.7038, Name: "Madrid Centro (Sol)"},
			"Oeste":  {Lat: 40.4354, Lon: -3.7300, Name: "Moncloa / Casa de Campo"},
			"Este":   {Lat: 40.4300, Lon: -3.6200, Name: "San Blas / Ciudad Lineal"},
			"Sur":    {Lat: 40.3800, Lon: -3.7100, Name: "Usera / Villaverde"},
			"Norte":  {Lat: 40.4800, Lon: -3.6900, Name: "Chamartín / Fuencarral"},
		},
		ExportPath: "/users/docs/reports/",
		ExportFile: "sales_report_2025.csv",
		ExportSize: "45KB",
	}
}

// Place returns the display coordinate of a region. Unknown regions sit
// on the map center, labelled with their own name.
func (c Illustrative) Place(region string) Place {
	if p, ok := c.Regions[region]; ok {
		return p
	}
	return Place{Lat: c.MapCenter.Lat, Lon: c.MapCenter.Lon, Name: region}
}

// WithRates overrides exchange rates by currency code; unknown codes and
// non-positive values are ignored.
func (c Illustrative) WithRates(rates map[string]float64) Illustrative {
	out := c
	out.Rates = make([]Rate, len(c.Rates))
	copy(out.Rates, c.Rates)
	for i, r := range out.Rates {
		if v, ok := rates[r.Code]; ok && v > 0 {
			out.Rates[i].Value = v
		}
	}
	return out
}
