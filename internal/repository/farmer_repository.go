package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jithinvs/krishi-mitra/internal/model"
	"github.com/jithinvs/krishi-mitra/internal/utils"
)

// FarmerRepo persists farmer accounts.
type FarmerRepo struct{ DB *sql.DB }

func NewFarmerRepo(db *sql.DB) *FarmerRepo { return &FarmerRepo{DB: db} }

// isDuplicate detects a MySQL unique-key violation (error 1062).
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}

// Create inserts a farmer with a freshly hashed password and returns its id.
func (r *FarmerRepo) Create(ctx context.Context, name, phone, password, location string, cost int) (uint64, error) {
	phone = strings.TrimSpace(phone)
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO farmers (name, phone, password_hash, location) VALUES (?,?,?,?)",
		strings.TrimSpace(name), phone, hash, strings.TrimSpace(location))
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

const farmerCols = "id,name,phone,password_hash,location,created_at,updated_at"

func scanFarmer(row *sql.Row) (model.Farmer, error) {
	var f model.Farmer
	err := row.Scan(&f.ID, &f.Name, &f.Phone, &f.PasswordHash, &f.Location, &f.CreatedAt, &f.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Farmer{}, ErrNotFound
	}
	return f, err
}

// GetByPhone fetches a farmer by phone, the login key for this role.
func (r *FarmerRepo) GetByPhone(ctx context.Context, phone string) (model.Farmer, error) {
	return scanFarmer(r.DB.QueryRowContext(ctx,
		"SELECT "+farmerCols+" FROM farmers WHERE phone=? LIMIT 1", strings.TrimSpace(phone)))
}

// GetByID fetches a farmer by id.
func (r *FarmerRepo) GetByID(ctx context.Context, id uint64) (model.Farmer, error) {
	return scanFarmer(r.DB.QueryRowContext(ctx,
		"SELECT "+farmerCols+" FROM farmers WHERE id=? LIMIT 1", id))
}
