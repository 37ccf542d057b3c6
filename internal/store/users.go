package store

import (
	"github.com/Dhruv435/slugma-admin/internal/models"
)

func (s *Store) GetAllUsers() ([]models.User, error) {
	query := `SELECT id, username, age, mobile_number, created_at FROM users ORDER BY created_at DESC, id DESC`
	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Age, &u.MobileNumber, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// CreateUser is mainly for seeding and tests; accounts register through
// the storefront, not this interface.
func (s *Store) CreateUser(u *models.User) error {
	query := `INSERT INTO users (username, age, mobile_number, created_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)`
	res, err := s.DB.Exec(query, u.Username, u.Age, u.MobileNumber)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = int(id)
	return nil
}

func (s *Store) DeleteUser(id int) error {
	res, err := s.DB.Exec(`DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
