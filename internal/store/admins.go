package store

import (
	"database/sql"

	"github.com/Dhruv435/slugma-admin/internal/models"
)

func (s *Store) GetAdminByUsername(username string) (*models.Admin, error) {
	query := `SELECT id, username, password FROM admins WHERE username = ?`
	row := s.DB.QueryRow(query, username)

	var admin models.Admin
	if err := row.Scan(&admin.ID, &admin.Username, &admin.Password); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &admin, nil
}

// CreateAdmin is mainly for seeding the initial administrator.
func (s *Store) CreateAdmin(username, hashedPassword string) error {
	query := `INSERT INTO admins (username, password) VALUES (?, ?)`
	_, err := s.DB.Exec(query, username, hashedPassword)
	return err
}
