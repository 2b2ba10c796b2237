// Package prefs persists the only client-side state the dashboard keeps:
// per-section view mode and sort key. Entity records always live on the
// server of record; a restart refetches everything else.
package prefs

import (
	"database/sql"
	"fmt"

	"github.com/avillega/pulse/internal/domain"
)

// SectionPrefs is the persisted presentation state for one section.
type SectionPrefs struct {
	ViewMode domain.ViewMode
	SortKey  string
}

// Store reads and writes section preferences.
type Store struct {
	db *sql.DB
}

// NewStore creates a Store over an open preferences database.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Get returns the preferences for a section, defaulting to grid view with
// no sort when nothing has been saved.
func (s *Store) Get(section string) (SectionPrefs, error) {
	row := s.db.QueryRow(
		`SELECT view_mode, sort_key FROM section_prefs WHERE section = ?`, section)

	var p SectionPrefs
	var mode string
	err := row.Scan(&mode, &p.SortKey)
	if err == sql.ErrNoRows {
		return SectionPrefs{ViewMode: domain.ViewGrid}, nil
	}
	if err != nil {
		return SectionPrefs{}, fmt.Errorf("scanning prefs for %s: %w", section, err)
	}

	p.ViewMode = domain.ViewMode(mode)
	if p.ViewMode != domain.ViewGrid && p.ViewMode != domain.ViewList {
		p.ViewMode = domain.ViewGrid
	}
	return p, nil
}

// Set saves the preferences for a section.
func (s *Store) Set(section string, p SectionPrefs) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO section_prefs (section, view_mode, sort_key) VALUES (?, ?, ?)`,
		section, string(p.ViewMode), p.SortKey)
	if err != nil {
		return fmt.Errorf("saving prefs for %s: %w", section, err)
	}
	return nil
}
