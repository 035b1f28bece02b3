package repository

import (
	"database/sql"

	dom "petstore/internal/domain/pet"
)

// petRow mirrors one row of the pets table.
type petRow struct {
	ID   int64
	Name string
	Tag  sql.NullString
}

var petColumns = []string{"id", "name", "tag"}

func toPetRow(p *dom.Pet) petRow {
	row := petRow{ID: p.ID, Name: p.Name}
	if p.Tag != nil {
		row.Tag = sql.NullString{String: *p.Tag, Valid: true}
	}
	return row
}

func (r petRow) toDomain() dom.Pet {
	p := dom.Pet{ID: r.ID, Name: r.Name}
	if r.Tag.Valid {
		tag := r.Tag.String
		p.Tag = &tag
	}
	return p
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPetRow(s scanner) (petRow, error) {
	var row petRow
	err := s.Scan(&row.ID, &row.Name, &row.Tag)
	return row, err
}
