package dashboard

import (
	"context"
	"crypto/rand"
	"errors"
	"strconv"
	"strings"

	"github.com/Dhruv435/slugma-admin/internal/api"
	"github.com/Dhruv435/slugma-admin/internal/models"
)

// ProductService is the slice of the API client the catalog views need.
type ProductService interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int) (*models.Product, error)
	CreateProduct(ctx context.Context, in api.ProductInput) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int, in api.ProductInput) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int) error
}

// ProductDraft is the form state. Numeric fields stay strings until
// submission, when validation parses them. The draft is an immutable
// value: every change replaces it wholesale.
type ProductDraft struct {
	Name            string
	Description     string
	MoreDescription string
	Price           string
	SalePrice       string
	OnSale          bool
	Category        string
	Material        string
	SKU             string
	Brand           string
	Stock           string
	Weight          string
	Length          string
	Width           string
	Height          string
	Sizes           []string
	Colors          []string
	Tags            []string
	ImagePath       string // pending upload, if any
}

// ProductForm manages a single product draft for create or edit.
type ProductForm struct {
	svc      ProductService
	draft    ProductDraft
	editID   int // 0 means the form creates a new product
	imageURL string
	banner   Banner
}

func NewProductForm(svc ProductService) *ProductForm {
	return &ProductForm{svc: svc}
}

func (f *ProductForm) Draft() ProductDraft { return f.draft }
func (f *ProductForm) Banner() Banner      { return f.banner }
func (f *ProductForm) ImageURL() string    { return f.imageURL }

// Editing reports whether the form updates an existing product.
func (f *ProductForm) Editing() (int, bool) {
	return f.editID, f.editID != 0
}

// LoadForEdit fetches the product and fills the draft from it.
func (f *ProductForm) LoadForEdit(ctx context.Context, id int) error {
	p, err := f.svc.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	draft := ProductDraft{
		Name:            p.Name,
		Description:     p.Description,
		MoreDescription: p.MoreDescription,
		Price:           formatFloat(p.Price),
		Category:        p.Category,
		Material:        p.Material,
		SKU:             p.SKU,
		Brand:           p.Brand,
		Stock:           strconv.Itoa(p.Stock),
		Weight:          formatFloat(p.Weight),
		Length:          formatFloat(p.Dimensions.Length),
		Width:           formatFloat(p.Dimensions.Width),
		Height:          formatFloat(p.Dimensions.Height),
		Sizes:           append([]string(nil), p.Sizes...),
		Colors:          append([]string(nil), p.Colors...),
		Tags:            append([]string(nil), p.Tags...),
	}
	if p.SalePrice != nil {
		draft.SalePrice = formatFloat(*p.SalePrice)
		draft.OnSale = true
	}
	f.draft = draft
	f.editID = p.ID
	f.imageURL = p.ImageURL
	return nil
}

func (f *ProductForm) SetName(v string)            { d := f.draft; d.Name = v; f.draft = d }
func (f *ProductForm) SetDescription(v string)     { d := f.draft; d.Description = v; f.draft = d }
func (f *ProductForm) SetMoreDescription(v string) { d := f.draft; d.MoreDescription = v; f.draft = d }
func (f *ProductForm) SetPrice(v string)           { d := f.draft; d.Price = v; f.draft = d }
func (f *ProductForm) SetSKU(v string)             { d := f.draft; d.SKU = v; f.draft = d }
func (f *ProductForm) SetBrand(v string)           { d := f.draft; d.Brand = v; f.draft = d }
func (f *ProductForm) SetStock(v string)           { d := f.draft; d.Stock = v; f.draft = d }
func (f *ProductForm) SetWeight(v string)          { d := f.draft; d.Weight = v; f.draft = d }
func (f *ProductForm) SetImagePath(v string)       { d := f.draft; d.ImagePath = v; f.draft = d }

func (f *ProductForm) SetSalePrice(v string) {
	d := f.draft
	d.SalePrice = v
	d.OnSale = v != ""
	f.draft = d
}

func (f *ProductForm) SetDimensions(length, width, height string) {
	d := f.draft
	d.Length, d.Width, d.Height = length, width, height
	f.draft = d
}

// SetCategory recomputes the material options; a material the new category
// does not allow is cleared.
func (f *ProductForm) SetCategory(category string) {
	d := f.draft
	d.Category = category
	if d.Material != "" && !models.MaterialAllowed(category, d.Material) {
		d.Material = ""
	}
	f.draft = d
}

// SetMaterial accepts only materials the current category allows.
func (f *ProductForm) SetMaterial(material string) bool {
	if material != "" && !models.MaterialAllowed(f.draft.Category, material) {
		return false
	}
	d := f.draft
	d.Material = material
	f.draft = d
	return true
}

// MaterialOptions lists the materials selectable for the draft's category.
func (f *ProductForm) MaterialOptions() []string {
	return models.MaterialOptions(f.draft.Category)
}

// AddTag trims, drops empties and duplicates, and appends otherwise.
func (f *ProductForm) AddTag(tag string) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return
	}
	for _, t := range f.draft.Tags {
		if t == tag {
			return
		}
	}
	d := f.draft
	d.Tags = append(append([]string(nil), d.Tags...), tag)
	f.draft = d
}

func (f *ProductForm) RemoveTag(tag string) {
	d := f.draft
	d.Tags = removeValue(d.Tags, tag)
	f.draft = d
}

// ToggleSize adds the size if absent, removes it if present.
func (f *ProductForm) ToggleSize(size string) {
	d := f.draft
	d.Sizes = toggleValue(d.Sizes, size)
	f.draft = d
}

func (f *ProductForm) ToggleColor(color string) {
	d := f.draft
	d.Colors = toggleValue(d.Colors, color)
	f.draft = d
}

// GenerateSKU fills the SKU with a random one unless an edited product
// already carries one.
func (f *ProductForm) GenerateSKU() {
	if f.editID != 0 && f.draft.SKU != "" {
		return
	}
	d := f.draft
	d.SKU = "PROD-" + randomSKU(8)
	f.draft = d
}

// Validate applies the submission rules: required fields non-empty after
// trimming, price positive, stock a non-negative integer, sale price (when
// on sale) non-negative and strictly below price. A violation produces a
// failure banner and blocks submission before any request is sent.
func (f *ProductForm) Validate() error {
	d := f.draft
	if strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.Description) == "" ||
		strings.TrimSpace(d.Category) == "" || strings.TrimSpace(d.Price) == "" ||
		strings.TrimSpace(d.Stock) == "" {
		return f.reject("Please fill in all required product details (Name, Description, Category, Price, Stock).")
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(d.Price), 64)
	if err != nil || price <= 0 {
		return f.reject("Price must be a positive number.")
	}
	stock, err := strconv.Atoi(strings.TrimSpace(d.Stock))
	if err != nil || stock < 0 {
		return f.reject("Stock must be a non-negative integer.")
	}
	if d.OnSale && strings.TrimSpace(d.SalePrice) != "" {
		salePrice, err := strconv.ParseFloat(strings.TrimSpace(d.SalePrice), 64)
		if err != nil || salePrice < 0 {
			return f.reject("Sale price must be a non-negative number.")
		}
		if salePrice >= price {
			return f.reject("Sale price must be strictly less than the regular price.")
		}
	}
	return nil
}

// Submit validates and sends the draft. Create resets the form on success;
// update keeps the values and refreshes the displayed image if a new one
// was uploaded.
func (f *ProductForm) Submit(ctx context.Context) (*models.Product, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	in := f.input()

	if f.editID == 0 {
		p, err := f.svc.CreateProduct(ctx, in)
		if err != nil {
			f.banner = failuref("Failed to save product: %v", err)
			return nil, err
		}
		f.banner = successf("Product added successfully!")
		f.draft = ProductDraft{}
		f.imageURL = ""
		return p, nil
	}

	p, err := f.svc.UpdateProduct(ctx, f.editID, in)
	if err != nil {
		f.banner = failuref("Failed to update product: %v", err)
		return nil, err
	}
	f.banner = successf("Product updated successfully!")
	f.imageURL = p.ImageURL
	d := f.draft
	d.ImagePath = ""
	f.draft = d
	return p, nil
}

func (f *ProductForm) reject(message string) error {
	f.banner = failuref("%s", message)
	return errors.New(message)
}

// input assumes Validate has passed.
func (f *ProductForm) input() api.ProductInput {
	d := f.draft
	price, _ := strconv.ParseFloat(strings.TrimSpace(d.Price), 64)
	stock, _ := strconv.Atoi(strings.TrimSpace(d.Stock))
	in := api.ProductInput{
		Name:            strings.TrimSpace(d.Name),
		Description:     strings.TrimSpace(d.Description),
		MoreDescription: strings.TrimSpace(d.MoreDescription),
		Price:           price,
		Category:        strings.TrimSpace(d.Category),
		Material:        d.Material,
		SKU:             d.SKU,
		Brand:           d.Brand,
		Stock:           stock,
		Weight:          parseFloatOrZero(d.Weight),
		Dimensions: models.Dimensions{
			Length: parseFloatOrZero(d.Length),
			Width:  parseFloatOrZero(d.Width),
			Height: parseFloatOrZero(d.Height),
		},
		Sizes:     d.Sizes,
		Colors:    d.Colors,
		Tags:      d.Tags,
		ImagePath: d.ImagePath,
	}
	if d.OnSale && strings.TrimSpace(d.SalePrice) != "" {
		salePrice, _ := strconv.ParseFloat(strings.TrimSpace(d.SalePrice), 64)
		in.SalePrice = &salePrice
	}
	return in
}

// ProductCatalog is the product list view.
type ProductCatalog struct {
	svc      ProductService
	confirm  ConfirmFunc
	products []models.Product
	banner   Banner
}

func NewProductCatalog(svc ProductService, confirm ConfirmFunc) *ProductCatalog {
	return &ProductCatalog{svc: svc, confirm: confirm}
}

func (c *ProductCatalog) Load(ctx context.Context) error {
	products, err := c.svc.ListProducts(ctx)
	if err != nil {
		return err
	}
	c.products = products
	return nil
}

func (c *ProductCatalog) Products() []models.Product { return c.products }
func (c *ProductCatalog) Banner() Banner             { return c.banner }

// Delete removes a product after confirmation, then re-fetches the list to
// reconcile with the server.
func (c *ProductCatalog) Delete(ctx context.Context, id int) error {
	if !c.confirm("Are you sure you want to delete this product? This action cannot be undone.") {
		return nil
	}
	if err := c.svc.DeleteProduct(ctx, id); err != nil {
		c.banner = failuref("Failed to delete product: %v", err)
		return err
	}
	c.banner = successf("Product deleted successfully!")
	return c.Load(ctx)
}

func toggleValue(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return removeValue(list, value)
		}
	}
	return append(append([]string(nil), list...), value)
}

func removeValue(list []string, value string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != value {
			out = append(out, v)
		}
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloatOrZero(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

const skuCharset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789" // no I, O, 1, 0

func randomSKU(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "XXXXXXXX"[:n]
	}
	for i := range b {
		b[i] = skuCharset[int(b[i])%len(skuCharset)]
	}
	return string(b)
}
