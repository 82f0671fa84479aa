package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jithinvs/krishi-mitra/internal/model"
	"github.com/jithinvs/krishi-mitra/internal/utils"
)

// OfficerRepo persists agricultural officer accounts.
type OfficerRepo struct{ DB *sql.DB }

func NewOfficerRepo(db *sql.DB) *OfficerRepo { return &OfficerRepo{DB: db} }

// Create inserts an officer and returns its id. Any of the four unique keys
// colliding yields ErrAccountExists; which key collided is not surfaced.
func (r *OfficerRepo) Create(ctx context.Context, o model.Officer, password string, cost int) (uint64, error) {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO officers (name, phone, password_hash, location, email, license_number, aadhar) VALUES (?,?,?,?,?,?,?)",
		strings.TrimSpace(o.Name), strings.TrimSpace(o.Phone), hash, strings.TrimSpace(o.Location),
		strings.ToLower(strings.TrimSpace(o.Email)), strings.TrimSpace(o.LicenseNumber), strings.TrimSpace(o.Aadhar))
	if err != nil {
		if isDuplicate(err) {
			return 0, ErrAccountExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

const officerCols = "id,name,phone,password_hash,location,email,license_number,aadhar,created_at,updated_at"

func scanOfficer(row *sql.Row) (model.Officer, error) {
	var o model.Officer
	err := row.Scan(&o.ID, &o.Name, &o.Phone, &o.PasswordHash, &o.Location,
		&o.Email, &o.LicenseNumber, &o.Aadhar, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Officer{}, ErrNotFound
	}
	return o, err
}

// GetByLicense fetches an officer by license number, the login key for this role.
func (r *OfficerRepo) GetByLicense(ctx context.Context, license string) (model.Officer, error) {
	return scanOfficer(r.DB.QueryRowContext(ctx,
		"SELECT "+officerCols+" FROM officers WHERE license_number=? LIMIT 1", strings.TrimSpace(license)))
}

// GetByID fetches an officer by id.
func (r *OfficerRepo) GetByID(ctx context.Context, id uint64) (model.Officer, error) {
	return scanOfficer(r.DB.QueryRowContext(ctx,
		"SELECT "+officerCols+" FROM officers WHERE id=? LIMIT 1", id))
}
