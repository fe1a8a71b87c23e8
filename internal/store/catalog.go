package store

import (
	"fmt"

	"github.com/alexiusacademia/gostud/internal/catalog"
	"github.com/alexiusacademia/gostud/internal/model"
)

// SeedCatalog upserts the given catalog's materials, sections and
// studs. Existing rows with matching names are updated in place.
func (s *Store) SeedCatalog(cat catalog.Catalog) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer tx.Rollback()

	for _, stud := range cat.Studs {
		m := stud.Material
		if _, err := tx.Exec(`
			INSERT INTO materials (name, category, species, grade, fb, fv, fc, fcp, ft, e, e05, material_type)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET
				category = excluded.category,
				species = excluded.species,
				grade = excluded.grade,
				fb = excluded.fb,
				fv = excluded.fv,
				fc = excluded.fc,
				fcp = excluded.fcp,
				ft = excluded.ft,
				e = excluded.e,
				e05 = excluded.e05,
				material_type = excluded.material_type
		`, m.Name, m.Category, m.Species, m.Grade, m.Fb, m.Fv, m.Fc, m.Fcp, m.Ft, m.E, m.E05, string(m.MaterialType)); err != nil {
			return fmt.Errorf("seed material %q: %w", m.Name, err)
		}

		if _, err := tx.Exec(`
			INSERT INTO sections (width, depth) VALUES (?, ?)
			ON CONFLICT(width, depth) DO NOTHING
		`, stud.Section.Width, stud.Section.Depth); err != nil {
			return fmt.Errorf("seed section %s: %w", stud.Section.Name(), err)
		}

		if _, err := tx.Exec(`
			INSERT INTO studs (name, section_id, material_id)
			VALUES (?,
				(SELECT id FROM sections WHERE width = ? AND depth = ?),
				(SELECT id FROM materials WHERE name = ?))
			ON CONFLICT(name) DO UPDATE SET
				section_id = excluded.section_id,
				material_id = excluded.material_id
		`, stud.Name, stud.Section.Width, stud.Section.Depth, m.Name); err != nil {
			return fmt.Errorf("seed stud %q: %w", stud.Name, err)
		}
	}

	return tx.Commit()
}

// LoadCatalog reads the full stud catalog, ordered by section depth
// then stud id so the declaration order survives a round trip.
func (s *Store) LoadCatalog() (catalog.Catalog, error) {
	rows, err := s.db.Query(`
		SELECT st.name, sec.width, sec.depth,
		       m.name, m.category, m.species, m.grade,
		       m.fb, m.fv, m.fc, m.fcp, m.ft, m.e, m.e05, m.material_type
		FROM studs st
		JOIN sections sec ON sec.id = st.section_id
		JOIN materials m ON m.id = st.material_id
		ORDER BY sec.depth, st.id
	`)
	if err != nil {
		return catalog.Catalog{}, err
	}
	defer rows.Close()

	var cat catalog.Catalog
	for rows.Next() {
		var stud model.Stud
		var matType string
		stud.Section.Plys = 1
		if err := rows.Scan(
			&stud.Name, &stud.Section.Width, &stud.Section.Depth,
			&stud.Material.Name, &stud.Material.Category, &stud.Material.Species, &stud.Material.Grade,
			&stud.Material.Fb, &stud.Material.Fv, &stud.Material.Fc, &stud.Material.Fcp,
			&stud.Material.Ft, &stud.Material.E, &stud.Material.E05, &matType,
		); err != nil {
			return catalog.Catalog{}, err
		}
		stud.Material.MaterialType = model.MaterialType(matType)
		cat.Studs = append(cat.Studs, stud)
	}
	return cat, rows.Err()
}
