package pg

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ibeloyar/memestore/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productRows = []string{
	"id", "name", "category", "price", "original_price", "description",
	"image_url", "payment_link", "created_at",
}

func TestRepository_GetProducts(t *testing.T) {
	repo, mock := newMockRepo(t)

	createdAt := time.Now()
	rows := sqlmock.NewRows(productRows).
		AddRow("prod-1", "Meme Mug", "mugs", "49.99", "59.99", "a mug",
			"https://img.example/mug.png", "https://pay.example/mug", createdAt).
		AddRow("prod-2", "Meme Tee", "tees", "20", nil, nil,
			"https://img.example/tee.png", "https://pay.example/tee", createdAt)

	mock.ExpectQuery("SELECT (.+) FROM products ORDER BY created_at DESC").
		WillReturnRows(rows)

	products, err := repo.GetProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Meme Mug", products[0].Name)
	assert.True(t, products[0].OriginalPrice.Equal(decimal.RequireFromString("59.99")))
	assert.True(t, products[1].OriginalPrice.IsZero())
	assert.Empty(t, products[1].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetProductByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM products WHERE id = \\$1").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetProductByID(context.Background(), "missing")

	assert.ErrorIs(t, err, model.ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateProduct_Success(t *testing.T) {
	repo, mock := newMockRepo(t)

	product := model.Product{
		ID:          "prod-1",
		Name:        "Meme Mug",
		Category:    "mugs",
		Price:       decimal.RequireFromString("49.99"),
		ImageURL:    "https://img.example/mug.png",
		PaymentLink: "https://pay.example/mug",
		CreatedAt:   time.Now(),
	}

	mock.ExpectExec("INSERT INTO products").
		WithArgs(product.ID, product.Name, product.Category, product.Price,
			sql.NullString{String: "0", Valid: false}, sql.NullString{},
			product.ImageURL, product.PaymentLink, product.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CreateProduct(context.Background(), product)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateProduct_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	product := model.Product{
		ID:    "missing",
		Name:  "Meme Mug",
		Price: decimal.NewFromInt(10),
	}

	mock.ExpectExec("UPDATE products SET").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateProduct(context.Background(), product)

	assert.ErrorIs(t, err, model.ErrProductNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Categories(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow("cat-1", "mugs").
		AddRow("cat-2", "tees")

	mock.ExpectQuery("SELECT id, name FROM categories ORDER BY name").
		WillReturnRows(rows)

	categories, err := repo.GetCategories(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "mugs", categories[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DeleteCategory_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM categories WHERE id = \\$1").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteCategory(context.Background(), "missing")

	assert.ErrorIs(t, err, model.ErrCategoryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Banners(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := sqlmock.NewRows([]string{"id", "image_url", "link", "position"}).
		AddRow("ban-1", "https://img.example/1.png", nil, 0).
		AddRow("ban-2", "https://img.example/2.png", "https://example.com", 1)

	mock.ExpectQuery("SELECT id, image_url, link, position FROM banners ORDER BY position").
		WillReturnRows(rows)

	banners, err := repo.GetBanners(context.Background())

	require.NoError(t, err)
	require.Len(t, banners, 2)
	assert.Empty(t, banners[0].Link)
	assert.Equal(t, "https://example.com", banners[1].Link)
	assert.NoError(t, mock.ExpectationsWereMet())
}
