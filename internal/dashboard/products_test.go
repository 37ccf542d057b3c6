package dashboard

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Dhruv435/slugma-admin/internal/api"
	"github.com/Dhruv435/slugma-admin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductService struct {
	products  []models.Product
	product   *models.Product
	listErr   error
	submitErr error
	deleteErr error

	created []api.ProductInput
	updated []api.ProductInput
	deleted []int
}

func (f *fakeProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.products, nil
}

func (f *fakeProductService) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	if f.product == nil {
		return nil, errors.New("not found")
	}
	return f.product, nil
}

func (f *fakeProductService) CreateProduct(ctx context.Context, in api.ProductInput) (*models.Product, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.created = append(f.created, in)
	return &models.Product{ID: 1, Name: in.Name, ImageURL: "/static/uploads/new.jpg"}, nil
}

func (f *fakeProductService) UpdateProduct(ctx context.Context, id int, in api.ProductInput) (*models.Product, error) {
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	f.updated = append(f.updated, in)
	return &models.Product{ID: id, Name: in.Name, ImageURL: "/static/uploads/replaced.jpg"}, nil
}

func (f *fakeProductService) DeleteProduct(ctx context.Context, id int) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func fillValidDraft(f *ProductForm) {
	f.SetName("Trail Runner")
	f.SetDescription("Lightweight running shoe")
	f.SetCategory("Shoes")
	f.SetPrice("99.99")
	f.SetStock("12")
}

func TestValidateRequiredFields(t *testing.T) {
	f := NewProductForm(&fakeProductService{})
	f.SetName("  ")

	err := f.Validate()
	require.Error(t, err)
	assert.Equal(t, "Please fill in all required product details (Name, Description, Category, Price, Stock).", err.Error())
	assert.Equal(t, err.Error(), f.Banner().Text)
	assert.False(t, f.Banner().OK)
}

func TestValidateNumericRules(t *testing.T) {
	f := NewProductForm(&fakeProductService{})
	fillValidDraft(f)

	f.SetPrice("0")
	assert.EqualError(t, f.Validate(), "Price must be a positive number.")
	f.SetPrice("abc")
	assert.EqualError(t, f.Validate(), "Price must be a positive number.")
	f.SetPrice("99.99")

	f.SetStock("-1")
	assert.EqualError(t, f.Validate(), "Stock must be a non-negative integer.")
	f.SetStock("1.5")
	assert.EqualError(t, f.Validate(), "Stock must be a non-negative integer.")
	f.SetStock("12")

	f.SetSalePrice("-2")
	assert.EqualError(t, f.Validate(), "Sale price must be a non-negative number.")
	f.SetSalePrice("99.99")
	assert.EqualError(t, f.Validate(), "Sale price must be strictly less than the regular price.")
	f.SetSalePrice("79.99")
	assert.NoError(t, f.Validate())

	// Clearing the sale price takes the product off sale entirely.
	f.SetSalePrice("")
	assert.False(t, f.Draft().OnSale)
	assert.NoError(t, f.Validate())
}

func TestSubmitBlockedByValidationSendsNoRequest(t *testing.T) {
	svc := &fakeProductService{}
	f := NewProductForm(svc)
	fillValidDraft(f)
	f.SetPrice("-1")

	_, err := f.Submit(context.Background())
	assert.Error(t, err)
	assert.Empty(t, svc.created)
}

func TestSubmitCreateResetsForm(t *testing.T) {
	svc := &fakeProductService{}
	f := NewProductForm(svc)
	fillValidDraft(f)
	f.SetSalePrice("79.99")
	f.AddTag("running")
	f.ToggleSize("M")

	p, err := f.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Trail Runner", p.Name)

	require.Len(t, svc.created, 1)
	in := svc.created[0]
	assert.Equal(t, 99.99, in.Price)
	require.NotNil(t, in.SalePrice)
	assert.Equal(t, 79.99, *in.SalePrice)
	assert.Equal(t, []string{"running"}, in.Tags)
	assert.Equal(t, []string{"M"}, in.Sizes)

	assert.Equal(t, Banner{OK: true, Text: "Product added successfully!"}, f.Banner())
	assert.Equal(t, ProductDraft{}, f.Draft())
	assert.Empty(t, f.ImageURL())
}

func TestSubmitUpdateKeepsValues(t *testing.T) {
	sale := 79.99
	svc := &fakeProductService{product: &models.Product{
		ID: 5, Name: "Trail Runner", Description: "Lightweight running shoe",
		Price: 99.99, SalePrice: &sale, Category: "Shoes", Material: "Mesh",
		Stock: 12, Sizes: []string{"M"}, Tags: []string{"running"},
		ImageURL: "/static/uploads/old.jpg",
	}}
	f := NewProductForm(svc)
	require.NoError(t, f.LoadForEdit(context.Background(), 5))

	id, editing := f.Editing()
	require.True(t, editing)
	assert.Equal(t, 5, id)
	assert.Equal(t, "99.99", f.Draft().Price)
	assert.True(t, f.Draft().OnSale)
	assert.Equal(t, "/static/uploads/old.jpg", f.ImageURL())

	f.SetImagePath("/tmp/new.jpg")
	_, err := f.Submit(context.Background())
	require.NoError(t, err)

	require.Len(t, svc.updated, 1)
	assert.Equal(t, "/tmp/new.jpg", svc.updated[0].ImagePath)
	assert.Equal(t, Banner{OK: true, Text: "Product updated successfully!"}, f.Banner())
	// Values stay put; the pending upload is consumed and the image refreshed.
	assert.Equal(t, "Trail Runner", f.Draft().Name)
	assert.Empty(t, f.Draft().ImagePath)
	assert.Equal(t, "/static/uploads/replaced.jpg", f.ImageURL())
}

func TestSubmitFailureKeepsDraft(t *testing.T) {
	svc := &fakeProductService{submitErr: errors.New("connection refused")}
	f := NewProductForm(svc)
	fillValidDraft(f)

	_, err := f.Submit(context.Background())
	assert.Error(t, err)
	assert.Equal(t, "Trail Runner", f.Draft().Name)
	assert.False(t, f.Banner().OK)
	assert.Contains(t, f.Banner().Text, "Failed to save product")
}

func TestAddTagTrimsAndDedups(t *testing.T) {
	f := NewProductForm(&fakeProductService{})

	f.AddTag("  running ")
	f.AddTag("running")
	f.AddTag("")
	f.AddTag("   ")
	f.AddTag("summer")
	assert.Equal(t, []string{"running", "summer"}, f.Draft().Tags)

	f.RemoveTag("running")
	assert.Equal(t, []string{"summer"}, f.Draft().Tags)
}

func TestToggleSizeAndColor(t *testing.T) {
	f := NewProductForm(&fakeProductService{})

	f.ToggleSize("M")
	f.ToggleSize("L")
	f.ToggleSize("M")
	assert.Equal(t, []string{"L"}, f.Draft().Sizes)

	f.ToggleColor("Red")
	f.ToggleColor("Black")
	assert.Equal(t, []string{"Red", "Black"}, f.Draft().Colors)
}

func TestSetCategoryClearsDisallowedMaterial(t *testing.T) {
	f := NewProductForm(&fakeProductService{})

	f.SetCategory("Shoes")
	require.True(t, f.SetMaterial("Mesh"))

	f.SetCategory("Watch")
	assert.Empty(t, f.Draft().Material)
	assert.Equal(t, models.MaterialOptions("Watch"), f.MaterialOptions())

	assert.False(t, f.SetMaterial("Mesh"))
	assert.True(t, f.SetMaterial(""))
}

func TestGenerateSKU(t *testing.T) {
	f := NewProductForm(&fakeProductService{})

	f.GenerateSKU()
	sku := f.Draft().SKU
	require.True(t, strings.HasPrefix(sku, "PROD-"))
	assert.Len(t, sku, len("PROD-")+8)

	// An edited product with an existing SKU keeps it.
	svc := &fakeProductService{product: &models.Product{
		ID: 5, Name: "Watch", Description: "d", Price: 10, Category: "Watch",
		SKU: "PROD-KEEPSKU1",
	}}
	f = NewProductForm(svc)
	require.NoError(t, f.LoadForEdit(context.Background(), 5))
	f.GenerateSKU()
	assert.Equal(t, "PROD-KEEPSKU1", f.Draft().SKU)
}

func TestCatalogDelete(t *testing.T) {
	svc := &fakeProductService{products: []models.Product{{ID: 1, Name: "Bag"}}}
	c := NewProductCatalog(svc, confirmNo)
	require.NoError(t, c.Load(context.Background()))

	// Declined confirmation sends nothing.
	require.NoError(t, c.Delete(context.Background(), 1))
	assert.Empty(t, svc.deleted)

	c = NewProductCatalog(svc, confirmYes)
	require.NoError(t, c.Load(context.Background()))
	svc.products = nil
	require.NoError(t, c.Delete(context.Background(), 1))
	assert.Equal(t, []int{1}, svc.deleted)
	assert.Equal(t, Banner{OK: true, Text: "Product deleted successfully!"}, c.Banner())
	assert.Empty(t, c.Products())
}

func TestCatalogDeleteFailure(t *testing.T) {
	svc := &fakeProductService{
		products:  []models.Product{{ID: 1, Name: "Bag"}},
		deleteErr: errors.New("connection refused"),
	}
	c := NewProductCatalog(svc, confirmYes)
	require.NoError(t, c.Load(context.Background()))

	assert.Error(t, c.Delete(context.Background(), 1))
	assert.False(t, c.Banner().OK)
	assert.Len(t, c.Products(), 1)
}
