package store

import (
	"database/sql"
	"fmt"

	"github.com/alexiusacademia/gostud/internal/design"
)

// SaveRun persists a design run for a wall. All prior results for the
// wall are deleted and the new ones inserted inside a single
// transaction, so no reader ever observes a mix of old and new
// results. Only compliant candidates are stored; the optimal design
// per level is flagged is_final.
func (s *Store) SaveRun(run *design.RunResult) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin results tx: %w", err)
	}
	defer tx.Rollback()

	wallID, err := upsertWall(tx, run)
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM results WHERE wall_id = ?", wallID); err != nil {
		return fmt.Errorf("clear results for wall %q: %w", run.Wall.Name, err)
	}

	for _, lr := range run.Levels {
		for _, cand := range lr.Candidates {
			if !cand.Valid() {
				continue
			}
			rec := cand.ToRecord()
			isFinal := lr.Optimal != nil &&
				lr.Optimal.Stud.Name == rec.Stud &&
				lr.Optimal.Spacing == rec.Spacing &&
				lr.Optimal.Plys == rec.Plys
			if _, err := tx.Exec(`
				INSERT INTO results (wall_id, level, story, stud, spacing, plys, dc_ratio, governing_combo,
					pf, pr, kd, kh, kse, ksc, kt, wood_volume, is_final)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, wallID, rec.Level, rec.Story, rec.Stud, rec.Spacing, rec.Plys, rec.DCRatio, rec.GoverningCombo,
				rec.Pf, rec.Pr, rec.Kd, rec.Kh, rec.Kse, rec.Ksc, rec.Kt, rec.WoodVolume, isFinal); err != nil {
				return fmt.Errorf("insert result for wall %q level %d: %w", run.Wall.Name, rec.Level, err)
			}
		}
	}

	return tx.Commit()
}

func upsertWall(tx *sql.Tx, run *design.RunResult) (int64, error) {
	if _, err := tx.Exec(`
		INSERT INTO walls (name, length, self_weight) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			length = excluded.length,
			self_weight = excluded.self_weight
	`, run.Wall.Name, run.Wall.Length, run.Wall.SelfWeight); err != nil {
		return 0, fmt.Errorf("upsert wall %q: %w", run.Wall.Name, err)
	}
	var id int64
	err := tx.QueryRow("SELECT id FROM walls WHERE name = ?", run.Wall.Name).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("lookup wall %q: %w", run.Wall.Name, err)
	}
	return id, nil
}

// Results returns all stored results for a wall ordered by level and
// wood volume. With onlyFinal set, just the selected design per level
// is returned.
func (s *Store) Results(wallName string, onlyFinal bool) ([]design.Record, error) {
	query := `
		SELECT r.level, r.story, r.stud, r.spacing, r.plys, r.dc_ratio, r.governing_combo,
		       r.pf, r.pr, r.kd, r.kh, r.kse, r.ksc, r.kt, r.wood_volume
		FROM results r
		JOIN walls w ON w.id = r.wall_id
		WHERE w.name = ?`
	if onlyFinal {
		query += " AND r.is_final"
	}
	query += " ORDER BY r.level, r.wood_volume"

	rows, err := s.db.Query(query, wallName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []design.Record
	for rows.Next() {
		var rec design.Record
		if err := rows.Scan(
			&rec.Level, &rec.Story, &rec.Stud, &rec.Spacing, &rec.Plys, &rec.DCRatio, &rec.GoverningCombo,
			&rec.Pf, &rec.Pr, &rec.Kd, &rec.Kh, &rec.Kse, &rec.Ksc, &rec.Kt, &rec.WoodVolume,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
