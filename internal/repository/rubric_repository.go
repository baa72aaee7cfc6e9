package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/godilite/intro-scorer/internal/repository/models"
	"github.com/godilite/intro-scorer/internal/rubric"
)

// Schema creates the tables RubricRepository reads.
const Schema = `
CREATE TABLE IF NOT EXISTS rubric_criteria (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE,
	weight REAL NOT NULL,
	strategy TEXT,
	position INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS rubric_bands (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	criterion_id INTEGER REFERENCES rubric_criteria(id),
	lower REAL NOT NULL,
	label TEXT NOT NULL
);
`

type RubricRepository struct {
	db *sql.DB
}

func NewRubricRepository(db *sql.DB) *RubricRepository {
	return &RubricRepository{db: db}
}

// Load builds a rubric from the stored definition. Criteria without bands
// get the default bands, as do overall bands when none are stored. Every
// definition error wraps rubric.ErrConfiguration.
func (s *RubricRepository) Load(ctx context.Context, params rubric.Params) (*rubric.Rubric, error) {
	criteria, err := s.criteria(ctx)
	if err != nil {
		return nil, err
	}
	bands, err := s.bands(ctx)
	if err != nil {
		return nil, err
	}

	known := make(map[int64]struct{}, len(criteria))
	for _, c := range criteria {
		known[c.ID] = struct{}{}
	}

	byCriterion := make(map[int64][]rubric.Band)
	var overall []rubric.Band
	for _, b := range bands {
		band := rubric.Band{Lower: b.Lower, Label: b.Label}
		if !b.CriterionID.Valid {
			overall = append(overall, band)
			continue
		}
		if _, ok := known[b.CriterionID.Int64]; !ok {
			return nil, fmt.Errorf("%w: band %q references unknown criterion %d", rubric.ErrConfiguration, b.Label, b.CriterionID.Int64)
		}
		byCriterion[b.CriterionID.Int64] = append(byCriterion[b.CriterionID.Int64], band)
	}

	defs := make([]rubric.Criterion, 0, len(criteria))
	for _, c := range criteria {
		cb, ok := byCriterion[c.ID]
		if !ok {
			cb = rubric.DefaultBands()
		}
		defs = append(defs, rubric.Criterion{
			Name:     c.Name,
			Weight:   c.Weight,
			Strategy: rubric.Strategy(c.Strategy.String),
			Bands:    cb,
		})
	}
	if overall == nil {
		overall = rubric.DefaultBands()
	}

	return rubric.New(defs, overall, params)
}

func (s *RubricRepository) criteria(ctx context.Context) ([]models.CriterionRow, error) {
	const query = `
		SELECT id, name, weight, strategy, position
		FROM rubric_criteria
		ORDER BY position, id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query rubric_criteria: %w", err)
	}
	defer rows.Close()

	var out []models.CriterionRow
	for rows.Next() {
		var c models.CriterionRow
		if err := rows.Scan(&c.ID, &c.Name, &c.Weight, &c.Strategy, &c.Position); err != nil {
			return nil, fmt.Errorf("scan rubric_criteria row: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rubric_criteria: %w", err)
	}
	return out, nil
}

func (s *RubricRepository) bands(ctx context.Context) ([]models.BandRow, error) {
	const query = `
		SELECT criterion_id, lower, label
		FROM rubric_bands
		ORDER BY criterion_id, lower
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query rubric_bands: %w", err)
	}
	defer rows.Close()

	var out []models.BandRow
	for rows.Next() {
		var b models.BandRow
		if err := rows.Scan(&b.CriterionID, &b.Lower, &b.Label); err != nil {
			return nil, fmt.Errorf("scan rubric_bands row: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rubric_bands: %w", err)
	}
	return out, nil
}
