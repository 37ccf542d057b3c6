package store

import "database/sql"

type DashboardStats struct {
	TotalProducts  int            `json:"totalProducts"`
	TotalOrders    int            `json:"totalOrders"`
	TotalUsers     int            `json:"totalUsers"`
	OrdersByStatus map[string]int `json:"ordersByStatus"`
	LowStock       []StockLevel   `json:"lowStock"`
}

type StockLevel struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
}

func (s *Store) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{
		OrdersByStatus: make(map[string]int),
	}

	err := s.DB.QueryRow("SELECT COUNT(*) FROM products").Scan(&stats.TotalProducts)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	err = s.DB.QueryRow("SELECT COUNT(*) FROM orders").Scan(&stats.TotalOrders)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	err = s.DB.QueryRow("SELECT COUNT(*) FROM users").Scan(&stats.TotalUsers)
	if err != nil && err != sql.ErrNoRows {
		return nil, err
	}

	rows, err := s.DB.Query("SELECT order_status, COUNT(*) FROM orders GROUP BY order_status")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.OrdersByStatus[status] = count
	}

	stockRows, err := s.DB.Query(`
		SELECT id, name, stock
		FROM products
		WHERE stock < 5
		ORDER BY stock ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer stockRows.Close()
	for stockRows.Next() {
		var sl StockLevel
		if err := stockRows.Scan(&sl.ProductID, &sl.Name, &sl.Stock); err != nil {
			return nil, err
		}
		stats.LowStock = append(stats.LowStock, sl)
	}

	return stats, nil
}
