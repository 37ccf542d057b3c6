package store

import (
	"database/sql"
	"encoding/json"

	"github.com/Dhruv435/slugma-admin/internal/models"
)

const productColumns = `id, name, description, more_description, price, sale_price, category, material,
	sizes, colors, tags, stock, sku, brand, weight, length, width, height,
	image_url, rating, num_reviews, created_at`

func (s *Store) CreateProduct(p *models.Product) error {
	sizes, colors, tags, err := encodeProductLists(p)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO products (name, description, more_description, price, sale_price, category, material,
			sizes, colors, tags, stock, sku, brand, weight, length, width, height, image_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`
	res, err := s.DB.Exec(query,
		p.Name, p.Description, p.MoreDescription, p.Price, nullFloat(p.SalePrice), p.Category, p.Material,
		sizes, colors, tags, p.Stock, p.SKU, p.Brand, p.Weight,
		p.Dimensions.Length, p.Dimensions.Width, p.Dimensions.Height, p.ImageURL)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = int(id)
	return nil
}

func (s *Store) GetAllProducts() ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC, id DESC`
	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (s *Store) GetProductByID(id int) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = ?`
	p, err := scanProduct(s.DB.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Store) UpdateProduct(p *models.Product) error {
	sizes, colors, tags, err := encodeProductLists(p)
	if err != nil {
		return err
	}
	query := `
		UPDATE products
		SET name = ?, description = ?, more_description = ?, price = ?, sale_price = ?, category = ?,
			material = ?, sizes = ?, colors = ?, tags = ?, stock = ?, sku = ?, brand = ?,
			weight = ?, length = ?, width = ?, height = ?
		WHERE id = ?
	`
	res, err := s.DB.Exec(query,
		p.Name, p.Description, p.MoreDescription, p.Price, nullFloat(p.SalePrice), p.Category,
		p.Material, sizes, colors, tags, p.Stock, p.SKU, p.Brand,
		p.Weight, p.Dimensions.Length, p.Dimensions.Width, p.Dimensions.Height, p.ID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (s *Store) UpdateProductImage(id int, imageURL string) error {
	res, err := s.DB.Exec(`UPDATE products SET image_url = ? WHERE id = ?`, imageURL, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (s *Store) DeleteProduct(id int) error {
	res, err := s.DB.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var p models.Product
	var salePrice sql.NullFloat64
	var sizes, colors, tags string
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.MoreDescription, &p.Price, &salePrice,
		&p.Category, &p.Material, &sizes, &colors, &tags, &p.Stock, &p.SKU, &p.Brand,
		&p.Weight, &p.Dimensions.Length, &p.Dimensions.Width, &p.Dimensions.Height,
		&p.ImageURL, &p.Rating, &p.NumReviews, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if salePrice.Valid {
		v := salePrice.Float64
		p.SalePrice = &v
	}
	if err := decodeList(sizes, &p.Sizes); err != nil {
		return nil, err
	}
	if err := decodeList(colors, &p.Colors); err != nil {
		return nil, err
	}
	if err := decodeList(tags, &p.Tags); err != nil {
		return nil, err
	}
	return &p, nil
}

// Variant and tag sets are stored as JSON arrays so insertion order survives
// the round trip.
func encodeProductLists(p *models.Product) (sizes, colors, tags string, err error) {
	if sizes, err = encodeList(p.Sizes); err != nil {
		return
	}
	if colors, err = encodeList(p.Colors); err != nil {
		return
	}
	tags, err = encodeList(p.Tags)
	return
}

func encodeList(v []string) (string, error) {
	if v == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeList(s string, out *[]string) error {
	if s == "" {
		*out = []string{}
		return nil
	}
	return json.Unmarshal([]byte(s), out)
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
