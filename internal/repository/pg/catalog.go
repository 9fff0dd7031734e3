package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ibeloyar/memestore/internal/model"
)

const productColumns = `id, name, category, price, original_price, description, image_url, payment_link, created_at`

func scanProduct(row interface{ Scan(...any) error }) (*model.Product, error) {
	var (
		product       model.Product
		originalPrice sql.NullString
		description   sql.NullString
	)

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.Price,
		&originalPrice,
		&description,
		&product.ImageURL,
		&product.PaymentLink,
		&product.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if originalPrice.Valid {
		if err := product.OriginalPrice.Scan(originalPrice.String); err != nil {
			return nil, err
		}
	}
	product.Description = description.String

	return &product, nil
}

func (r *Repository) GetProducts(ctx context.Context) ([]model.Product, error) {
	products := make([]model.Product, 0)

	err := r.executeWithRetry(func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx,
			`SELECT `+productColumns+` FROM products ORDER BY created_at DESC`)
		if err != nil {
			return err
		}
		defer rows.Close()

		products = products[:0]
		for rows.Next() {
			product, err := scanProduct(rows)
			if err != nil {
				return err
			}
			products = append(products, *product)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *Repository) GetProductByID(ctx context.Context, id string) (*model.Product, error) {
	var product *model.Product

	err := r.executeWithRetry(func(db *sql.DB) error {
		row := db.QueryRowContext(ctx,
			`SELECT `+productColumns+` FROM products WHERE id = $1`, id)

		var err error
		product, err = scanProduct(row)
		return err
	})

	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *Repository) CreateProduct(ctx context.Context, product model.Product) error {
	return r.executeWithRetry(func(db *sql.DB) error {
		_, err := db.ExecContext(ctx,
			`INSERT INTO products (id, name, category, price, original_price, description, image_url, payment_link, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			product.ID,
			product.Name,
			product.Category,
			product.Price,
			sql.NullString{String: product.OriginalPrice.String(), Valid: !product.OriginalPrice.IsZero()},
			sql.NullString{String: product.Description, Valid: product.Description != ""},
			product.ImageURL,
			product.PaymentLink,
			product.CreatedAt,
		)
		return err
	})
}

func (r *Repository) UpdateProduct(ctx context.Context, product model.Product) error {
	var affected int64

	err := r.executeWithRetry(func(db *sql.DB) error {
		result, err := db.ExecContext(ctx,
			`UPDATE products SET name = $1, category = $2, price = $3, original_price = $4,
				description = $5, image_url = $6, payment_link = $7
			WHERE id = $8`,
			product.Name,
			product.Category,
			product.Price,
			sql.NullString{String: product.OriginalPrice.String(), Valid: !product.OriginalPrice.IsZero()},
			sql.NullString{String: product.Description, Valid: product.Description != ""},
			product.ImageURL,
			product.PaymentLink,
			product.ID,
		)
		if err != nil {
			return err
		}

		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return err
	}

	if affected == 0 {
		return model.ErrProductNotFound
	}

	return nil
}

func (r *Repository) DeleteProduct(ctx context.Context, id string) error {
	var affected int64

	err := r.executeWithRetry(func(db *sql.DB) error {
		result, err := db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
		if err != nil {
			return err
		}

		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return err
	}

	if affected == 0 {
		return model.ErrProductNotFound
	}

	return nil
}

func (r *Repository) GetCategories(ctx context.Context) ([]model.Category, error) {
	categories := make([]model.Category, 0)

	err := r.executeWithRetry(func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY name`)
		if err != nil {
			return err
		}
		defer rows.Close()

		categories = categories[:0]
		for rows.Next() {
			var category model.Category
			if err := rows.Scan(&category.ID, &category.Name); err != nil {
				return err
			}
			categories = append(categories, category)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *Repository) CreateCategory(ctx context.Context, category model.Category) error {
	return r.executeWithRetry(func(db *sql.DB) error {
		_, err := db.ExecContext(ctx,
			`INSERT INTO categories (id, name) VALUES ($1, $2)`,
			category.ID, category.Name)
		return err
	})
}

func (r *Repository) DeleteCategory(ctx context.Context, id string) error {
	var affected int64

	err := r.executeWithRetry(func(db *sql.DB) error {
		result, err := db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
		if err != nil {
			return err
		}

		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return err
	}

	if affected == 0 {
		return model.ErrCategoryNotFound
	}

	return nil
}

func (r *Repository) GetBanners(ctx context.Context) ([]model.Banner, error) {
	banners := make([]model.Banner, 0)

	err := r.executeWithRetry(func(db *sql.DB) error {
		rows, err := db.QueryContext(ctx,
			`SELECT id, image_url, link, position FROM banners ORDER BY position`)
		if err != nil {
			return err
		}
		defer rows.Close()

		banners = banners[:0]
		for rows.Next() {
			var (
				banner model.Banner
				link   sql.NullString
			)
			if err := rows.Scan(&banner.ID, &banner.ImageURL, &link, &banner.Position); err != nil {
				return err
			}
			banner.Link = link.String
			banners = append(banners, banner)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return banners, nil
}

func (r *Repository) CreateBanner(ctx context.Context, banner model.Banner) error {
	return r.executeWithRetry(func(db *sql.DB) error {
		_, err := db.ExecContext(ctx,
			`INSERT INTO banners (id, image_url, link, position) VALUES ($1, $2, $3, $4)`,
			banner.ID,
			banner.ImageURL,
			sql.NullString{String: banner.Link, Valid: banner.Link != ""},
			banner.Position,
		)
		return err
	})
}

func (r *Repository) DeleteBanner(ctx context.Context, id string) error {
	var affected int64

	err := r.executeWithRetry(func(db *sql.DB) error {
		result, err := db.ExecContext(ctx, `DELETE FROM banners WHERE id = $1`, id)
		if err != nil {
			return err
		}

		affected, err = result.RowsAffected()
		return err
	})
	if err != nil {
		return err
	}

	if affected == 0 {
		return model.ErrBannerNotFound
	}

	return nil
}
