package model

// RegionalCO2EmissionModel mirrors the 'regional_co2_emissions' table.
// (region_name, year) carries a composite unique index; the bulk load deletes
// a region's rows before reinserting, so reloads replace instead of duplicate.
type RegionalCO2EmissionModel struct {
	ID             int64   `gorm:"primaryKey;autoIncrement"`
	RegionName     string  `gorm:"type:varchar(100);not null;uniqueIndex:idx_region_year"`
	Year           int     `gorm:"not null;uniqueIndex:idx_region_year"`
	TotalCO2Tonnes float64 `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (RegionalCO2EmissionModel) TableName() string {
	return "regional_co2_emissions"
}
