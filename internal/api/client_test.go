package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/Dhruv435/slugma-admin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginInstallsToken(t *testing.T) {
	var gotAuth string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/admin/login", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "admin", req["username"])
		json.NewEncoder(w).Encode(map[string]string{"token": "tok-123"})
	})
	mux.HandleFunc("GET /api/users", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode([]models.User{})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL)
	token, err := c.Login(context.Background(), "admin", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)

	_, err = c.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestErrorDecoding(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/products/1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Product not found"})
	})
	mux.HandleFunc("GET /api/products/2", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := New(srv.URL)

	_, err := c.GetProduct(context.Background(), 1)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Product not found", apiErr.Message)
	assert.Equal(t, "Product not found", err.Error())

	// A non-JSON body falls back to the generic message.
	_, err = c.GetProduct(context.Background(), 2)
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "HTTP error! Status: 500", apiErr.Message)
}

func TestUpdateOrderSendsOnlyProvidedFields(t *testing.T) {
	var got map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/orders/7", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(models.Order{ID: 7, Status: models.StatusShipped})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	status := models.StatusShipped
	order, err := New(srv.URL).UpdateOrder(context.Background(), 7, OrderUpdate{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.StatusShipped, order.Status)

	assert.Equal(t, map[string]any{"orderStatus": "Shipped"}, got)
}

func TestSendProductWritesMultipartForm(t *testing.T) {
	imagePath := filepath.Join(t.TempDir(), "shoe.jpg")
	require.NoError(t, os.WriteFile(imagePath, []byte("fake-jpeg-bytes"), 0o644))

	var fields map[string][]string
	var fileNames []string
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/products", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(10<<20))
		fields = r.MultipartForm.Value
		for _, fh := range r.MultipartForm.File["image"] {
			fileNames = append(fileNames, fh.Filename)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Product{ID: 1, Name: r.FormValue("name")})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	sale := 79.99
	in := ProductInput{
		Name:        "Trail Runner",
		Description: "Lightweight running shoe",
		Price:       99.99,
		SalePrice:   &sale,
		Category:    "Shoes",
		Material:    "Mesh",
		Stock:       12,
		Sizes:       []string{"M", "L"},
		Colors:      []string{"Red"},
		Tags:        []string{"running"},
		ImagePath:   imagePath,
	}
	p, err := New(srv.URL).CreateProduct(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "Trail Runner", p.Name)

	assert.Equal(t, []string{"99.99"}, fields["price"])
	assert.Equal(t, []string{"79.99"}, fields["salePrice"])
	assert.Equal(t, []string{"M", "L"}, fields["size[]"])
	assert.Equal(t, []string{"Red"}, fields["colors[]"])
	assert.Equal(t, []string{"running"}, fields["tags[]"])
	assert.Equal(t, []string{"shoe.jpg"}, fileNames)
}

func TestSendProductOmitsAbsentImage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/products", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(10<<20))
		assert.Empty(t, r.MultipartForm.File["image"])
		// An unset sale price still travels as an empty field.
		assert.Equal(t, []string{""}, r.MultipartForm.Value["salePrice"])
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Product{ID: 2})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	_, err := New(srv.URL).CreateProduct(context.Background(), ProductInput{
		Name: "Belt", Description: "Plain belt", Price: 20, Category: "Belt", Stock: 3,
	})
	require.NoError(t, err)
}
