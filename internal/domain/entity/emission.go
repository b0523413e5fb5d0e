package entity

// RegionalCO2Emission is a single (region, year) -> total-CO2 fact,
// bulk-loaded from a spreadsheet export. (region, year) is unique.
type RegionalCO2Emission struct {
	ID             int64   // Auto-assigned numeric identifier.
	RegionName     string  // Reporting region, e.g. "C.A. de Euskadi".
	Year           int     // Reporting year.
	TotalCO2Tonnes float64 // Total emissions for the region and year, in tonnes.
}
