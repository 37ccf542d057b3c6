// Package api is the HTTP client for the admin backend. Each call is
// fire-and-forget: no retry, no caching, one resolved or rejected outcome.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Dhruv435/slugma-admin/internal/models"
	"github.com/Dhruv435/slugma-admin/internal/store"
)

// Error is a rejected HTTP outcome: the server's status code plus the
// message extracted from its JSON body.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken attaches the session token to every subsequent request.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Login exchanges credentials for a token and installs it on the client.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(map[string]string{"username": username, "password": password})
	if err != nil {
		return "", err
	}
	var result struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/admin/login", bytes.NewReader(body), "application/json", &result); err != nil {
		return "", err
	}
	c.token = result.Token
	return result.Token, nil
}

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := c.do(ctx, http.MethodGet, "/api/products", nil, "", &products)
	return products, err
}

func (c *Client) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, "", &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (*models.Product, error) {
	return c.sendProduct(ctx, http.MethodPost, "/api/products", in)
}

func (c *Client) UpdateProduct(ctx context.Context, id int, in ProductInput) (*models.Product, error) {
	return c.sendProduct(ctx, http.MethodPut, fmt.Sprintf("/api/products/%d", id), in)
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil, "", nil)
}

func (c *Client) ListOrders(ctx context.Context, history bool) ([]models.Order, error) {
	path := "/api/orders"
	if history {
		path += "?status=history"
	}
	var orders []models.Order
	err := c.do(ctx, http.MethodGet, path, nil, "", &orders)
	return orders, err
}

// OrderUpdate is the partial edit payload; nil fields are left untouched.
type OrderUpdate struct {
	Status         *models.OrderStatus `json:"orderStatus,omitempty"`
	DeliveryOption *string             `json:"deliveryOption,omitempty"`
	AdminMessage   *string             `json:"adminMessage,omitempty"`
}

func (c *Client) UpdateOrder(ctx context.Context, id int, upd OrderUpdate) (*models.Order, error) {
	body, err := json.Marshal(upd)
	if err != nil {
		return nil, err
	}
	var order models.Order
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/orders/%d", id), bytes.NewReader(body), "application/json", &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := c.do(ctx, http.MethodGet, "/api/users", nil, "", &users)
	return users, err
}

func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/users/%d", id), nil, "", nil)
}

func (c *Client) Stats(ctx context.Context) (*store.DashboardStats, error) {
	var stats store.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/api/admin/stats", nil, "", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ProductInput is a validated product draft ready for submission.
type ProductInput struct {
	Name            string
	Description     string
	MoreDescription string
	Price           float64
	SalePrice       *float64
	Category        string
	Material        string
	SKU             string
	Brand           string
	Stock           int
	Weight          float64
	Dimensions      models.Dimensions
	Sizes           []string
	Colors          []string
	Tags            []string

	// ImagePath, when set, uploads a new image alongside the form fields.
	ImagePath string
}

func (c *Client) sendProduct(ctx context.Context, method, path string, in ProductInput) (*models.Product, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := writeProductForm(mw, in); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	var product models.Product
	if err := c.do(ctx, method, path, &buf, mw.FormDataContentType(), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func writeProductForm(mw *multipart.Writer, in ProductInput) error {
	fields := map[string]string{
		"name":            in.Name,
		"description":     in.Description,
		"moreDescription": in.MoreDescription,
		"price":           strconv.FormatFloat(in.Price, 'f', -1, 64),
		"category":        in.Category,
		"material":        in.Material,
		"sku":             in.SKU,
		"brand":           in.Brand,
		"stock":           strconv.Itoa(in.Stock),
		"weight":          strconv.FormatFloat(in.Weight, 'f', -1, 64),
		"length":          strconv.FormatFloat(in.Dimensions.Length, 'f', -1, 64),
		"width":           strconv.FormatFloat(in.Dimensions.Width, 'f', -1, 64),
		"height":          strconv.FormatFloat(in.Dimensions.Height, 'f', -1, 64),
	}
	if in.SalePrice != nil {
		fields["salePrice"] = strconv.FormatFloat(*in.SalePrice, 'f', -1, 64)
	} else {
		fields["salePrice"] = ""
	}
	for key, value := range fields {
		if err := mw.WriteField(key, value); err != nil {
			return err
		}
	}
	for _, s := range in.Sizes {
		if err := mw.WriteField("size[]", s); err != nil {
			return err
		}
	}
	for _, col := range in.Colors {
		if err := mw.WriteField("colors[]", col); err != nil {
			return err
		}
	}
	for _, tag := range in.Tags {
		if err := mw.WriteField("tags[]", tag); err != nil {
			return err
		}
	}

	if in.ImagePath != "" {
		file, err := os.Open(in.ImagePath)
		if err != nil {
			return err
		}
		defer file.Close()
		part, err := mw.CreateFormFile("image", filepath.Base(in.ImagePath))
		if err != nil {
			return err
		}
		if _, err := io.Copy(part, file); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	apiErr := &Error{
		Status:  resp.StatusCode,
		Message: fmt.Sprintf("HTTP error! Status: %d", resp.StatusCode),
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
	}
	return apiErr
}
