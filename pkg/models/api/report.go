package api

// ChartResponse is the chart renderer contract: one label, value and
// color per group key.
type ChartResponse struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
	Colors []string  `json:"colors"`
}

type Column struct {
	Header      string `json:"header"`
	AccessorKey string `json:"accessorKey"`
}

// TableResponse is the pivot table contract: ordered column
// descriptors plus display-ready rows keyed by accessor.
type TableResponse struct {
	Columns []Column            `json:"columns"`
	Rows    []map[string]string `json:"rows"`
}

type RevenueCard struct {
	Title     string `json:"title"`
	DateRange string `json:"dateRange"`
	Label     string `json:"label"`
	Value     string `json:"value"`
}

type RevenueCardsResponse struct {
	Cards []RevenueCard `json:"cards"`
}
