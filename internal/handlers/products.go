package handlers

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Dhruv435/slugma-admin/internal/models"
	"github.com/Dhruv435/slugma-admin/internal/store"
	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

type ProductHandler struct {
	Store     *store.Store
	UploadDir string
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.Store.GetAllProducts()
	if err != nil {
		slog.Error("Failed to fetch products", "error", err)
		respondError(w, http.StatusInternalServerError, "Error fetching products")
		return
	}
	if products == nil {
		products = []models.Product{}
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}
	product, err := h.Store.GetProductByID(id)
	if err == store.ErrNotFound {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		slog.Error("Failed to fetch product", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "Error fetching product")
		return
	}
	respondJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	product, errMsg := h.parseProductForm(r, &models.Product{})
	if errMsg != "" {
		respondError(w, http.StatusBadRequest, errMsg)
		return
	}

	imageURL, errMsg := h.saveUpload(r)
	if errMsg != "" {
		respondError(w, http.StatusBadRequest, errMsg)
		return
	}
	product.ImageURL = imageURL

	if err := h.Store.CreateProduct(product); err != nil {
		slog.Error("Failed to create product", "error", err)
		respondError(w, http.StatusInternalServerError, "Error saving product")
		return
	}
	RecordAdminOperation("product_create", true)
	respondJSON(w, http.StatusCreated, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	existing, err := h.Store.GetProductByID(id)
	if err == store.ErrNotFound {
		respondError(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		slog.Error("Failed to fetch product", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "Error fetching product")
		return
	}

	product, errMsg := h.parseProductForm(r, existing)
	if errMsg != "" {
		respondError(w, http.StatusBadRequest, errMsg)
		return
	}

	if err := h.Store.UpdateProduct(product); err != nil {
		slog.Error("Failed to update product", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "Error updating product")
		return
	}

	// Optional replacement image.
	if imageURL, errMsg := h.saveUpload(r); errMsg != "" {
		respondError(w, http.StatusBadRequest, errMsg)
		return
	} else if imageURL != "" {
		if err := h.Store.UpdateProductImage(id, imageURL); err != nil {
			slog.Error("Failed to update product image", "error", err, "id", id)
			respondError(w, http.StatusInternalServerError, "Error updating product image")
			return
		}
		product.ImageURL = imageURL
	}

	RecordAdminOperation("product_update", true)
	respondJSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid product ID")
		return
	}
	if err := h.Store.DeleteProduct(id); err != nil {
		if err == store.ErrNotFound {
			respondError(w, http.StatusNotFound, "Product not found")
			return
		}
		slog.Error("Failed to delete product", "error", err, "id", id)
		respondError(w, http.StatusInternalServerError, "Error deleting product")
		return
	}
	RecordAdminOperation("product_delete", true)
	respondMessage(w, http.StatusOK, "Product deleted successfully")
}

// parseProductForm fills base from the multipart form, revalidating the
// client-side rules. Returns a user-facing message on rejection.
func (h *ProductHandler) parseProductForm(r *http.Request, base *models.Product) (*models.Product, string) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		return nil, "File too large. Max 10MB."
	}

	name := strings.TrimSpace(r.FormValue("name"))
	description := strings.TrimSpace(r.FormValue("description"))
	category := strings.TrimSpace(r.FormValue("category"))
	priceStr := strings.TrimSpace(r.FormValue("price"))
	stockStr := strings.TrimSpace(r.FormValue("stock"))
	if name == "" || description == "" || category == "" || priceStr == "" || stockStr == "" {
		return nil, "Please fill in all required product details (Name, Description, Category, Price, Stock)."
	}

	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil || price <= 0 {
		return nil, "Price must be a positive number."
	}
	stock, err := strconv.Atoi(stockStr)
	if err != nil || stock < 0 {
		return nil, "Stock must be a non-negative integer."
	}

	base.Name = name
	base.Description = description
	base.Category = category
	base.Price = price
	base.Stock = stock
	base.MoreDescription = strings.TrimSpace(r.FormValue("moreDescription"))
	base.Material = r.FormValue("material")
	base.SKU = r.FormValue("sku")
	base.Brand = r.FormValue("brand")

	base.SalePrice = nil
	if saleStr := strings.TrimSpace(r.FormValue("salePrice")); saleStr != "" {
		salePrice, err := strconv.ParseFloat(saleStr, 64)
		if err != nil || salePrice < 0 {
			return nil, "Sale price must be a non-negative number."
		}
		if salePrice >= price {
			return nil, "Sale price must be strictly less than the regular price."
		}
		base.SalePrice = &salePrice
	}

	base.Weight = formFloat(r, "weight")
	base.Dimensions = models.Dimensions{
		Length: formFloat(r, "length"),
		Width:  formFloat(r, "width"),
		Height: formFloat(r, "height"),
	}

	base.Sizes = formList(r, "size[]")
	base.Colors = formList(r, "colors[]")
	base.Tags = formList(r, "tags[]")

	return base, ""
}

func formFloat(r *http.Request, key string) float64 {
	v, err := strconv.ParseFloat(r.FormValue(key), 64)
	if err != nil {
		return 0
	}
	return v
}

func formList(r *http.Request, key string) []string {
	if r.MultipartForm == nil {
		return []string{}
	}
	values := r.MultipartForm.Value[key]
	if values == nil {
		return []string{}
	}
	return values
}

// saveUpload decodes, resizes and stores an uploaded image, returning its
// public URL. An absent image field is not an error; it returns "".
func (h *ProductHandler) saveUpload(r *http.Request) (string, string) {
	file, header, err := r.FormFile("image")
	if err != nil {
		return "", ""
	}
	defer file.Close()

	var img image.Image
	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".png":
		img, err = png.Decode(file)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(file)
	default:
		return "", "Unsupported image format. Only PNG, JPG, JPEG are allowed."
	}
	if err != nil {
		return "", "Failed to decode image."
	}

	// Resize image (max width 800px, preserve aspect ratio)
	newImage := resize.Resize(800, 0, img, resize.Lanczos3)

	filename := fmt.Sprintf("%s.jpg", uuid.New().String())
	uploadPath := filepath.Join(h.UploadDir, filename)

	out, err := os.Create(uploadPath)
	if err != nil {
		slog.Error("Failed to create upload file", "error", err, "path", uploadPath)
		return "", "Error saving image file."
	}
	defer out.Close()

	if err := jpeg.Encode(out, newImage, &jpeg.Options{Quality: 80}); err != nil {
		return "", "Error encoding image."
	}

	return "/static/uploads/" + filename, ""
}
