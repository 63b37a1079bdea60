package store

import (
	"database/sql"
	"errors"
	"fmt"

	"homeroster/internal/model"
)

// ErrNotFound is returned when no member row matches the given id.
var ErrNotFound = errors.New("member not found")

// MemberStore is the single gateway to the household_members table. The
// JSON-text encoding of the sequence columns happens only here; the rest
// of the application works with real slices.
type MemberStore struct {
	db *sql.DB
}

func NewMemberStore(db *sql.DB) *MemberStore {
	return &MemberStore{db: db}
}

const memberCols = `id, name, role, photo, date_of_birth, sex, height, weight, activity_level,
	allergens, exclusions, likes, dislikes, medications, income_sources, medical_notes,
	created_at, updated_at`

func scanMember(scanner interface{ Scan(...any) error }) (*model.Member, error) {
	var m model.Member
	var photo, dob, notes sql.NullString
	var height, weight sql.NullFloat64
	var allergens, exclusions, likes, dislikes, medications, incomeSources sql.NullString

	err := scanner.Scan(
		&m.ID, &m.Name, &m.Role, &photo, &dob, &m.Sex, &height, &weight, &m.ActivityLevel,
		&allergens, &exclusions, &likes, &dislikes, &medications, &incomeSources, &notes,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.Photo = photo.String
	m.DateOfBirth = dob.String
	m.MedicalNotes = notes.String
	if height.Valid {
		m.Height = &height.Float64
	}
	if weight.Valid {
		m.Weight = &weight.Float64
	}
	// NULL and corrupt columns both decode to empty slices.
	m.Allergens = model.DecodeStrings(allergens.String)
	m.Exclusions = model.DecodeStrings(exclusions.String)
	m.Likes = model.DecodeStrings(likes.String)
	m.Dislikes = model.DecodeStrings(dislikes.String)
	m.Medications = model.DecodeStrings(medications.String)
	m.IncomeSources = model.DecodeIncomeSources(incomeSources.String)
	return &m, nil
}

// List returns all members ordered by creation time. An empty roster is
// a valid empty slice, not an error.
func (s *MemberStore) List() ([]model.Member, error) {
	rows, err := s.db.Query(`SELECT ` + memberCols + ` FROM household_members ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("query members: %w", err)
	}
	defer rows.Close()

	members := []model.Member{}
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, *m)
	}
	return members, rows.Err()
}

// GetByID returns the member with the given id, or nil when absent.
func (s *MemberStore) GetByID(id int64) (*model.Member, error) {
	row := s.db.QueryRow(`SELECT `+memberCols+` FROM household_members WHERE id = ?`, id)
	m, err := scanMember(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query member: %w", err)
	}
	return m, nil
}

// Create inserts a new member. The database stamps created_at and
// updated_at from the same statement, so both carry the same value on a
// fresh row.
func (s *MemberStore) Create(p model.Payload) (*model.Member, error) {
	result, err := s.db.Exec(
		`INSERT INTO household_members
			(name, role, photo, date_of_birth, sex, height, weight, activity_level,
			 allergens, exclusions, likes, dislikes, medications, income_sources, medical_notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Role, nullString(p.Photo), nullString(p.DateOfBirth), p.Sex,
		nullFloat(p.Height), nullFloat(p.Weight), p.ActivityLevel,
		model.EncodeStrings(p.Allergens), model.EncodeStrings(p.Exclusions),
		model.EncodeStrings(p.Likes), model.EncodeStrings(p.Dislikes),
		model.EncodeStrings(p.Medications), model.EncodeIncomeSources(p.IncomeSources),
		nullString(p.MedicalNotes),
	)
	if err != nil {
		return nil, fmt.Errorf("insert member: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	m, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("member %d vanished after insert", id)
	}
	return m, nil
}

// Update replaces every mutable field of the row matching id and
// refreshes updated_at. id and created_at are never touched. Returns
// ErrNotFound, without writing, when the id does not exist.
func (s *MemberStore) Update(id int64, p model.Payload) (*model.Member, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	_, err = s.db.Exec(
		`UPDATE household_members SET
			name = ?, role = ?, photo = ?, date_of_birth = ?, sex = ?, height = ?, weight = ?,
			activity_level = ?, allergens = ?, exclusions = ?, likes = ?, dislikes = ?,
			medications = ?, income_sources = ?, medical_notes = ?, updated_at = datetime('now')
		 WHERE id = ?`,
		p.Name, p.Role, nullString(p.Photo), nullString(p.DateOfBirth), p.Sex,
		nullFloat(p.Height), nullFloat(p.Weight), p.ActivityLevel,
		model.EncodeStrings(p.Allergens), model.EncodeStrings(p.Exclusions),
		model.EncodeStrings(p.Likes), model.EncodeStrings(p.Dislikes),
		model.EncodeStrings(p.Medications), model.EncodeIncomeSources(p.IncomeSources),
		nullString(p.MedicalNotes), id,
	)
	if err != nil {
		return nil, fmt.Errorf("update member: %w", err)
	}

	m, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrNotFound
	}
	return m, nil
}

// Delete hard-deletes the row matching id and returns its last snapshot.
func (s *MemberStore) Delete(id int64) (*model.Member, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	if _, err := s.db.Exec(`DELETE FROM household_members WHERE id = ?`, id); err != nil {
		return nil, fmt.Errorf("delete member: %w", err)
	}
	return existing, nil
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
