package models

import "database/sql"

// CriterionRow is one row of rubric_criteria.
type CriterionRow struct {
	ID       int64
	Name     string
	Weight   float64
	Strategy sql.NullString
	Position int
}

// BandRow is one row of rubric_bands. A NULL criterion ID marks an overall
// band.
type BandRow struct {
	CriterionID sql.NullInt64
	Lower       float64
	Label       string
}
