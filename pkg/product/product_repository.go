package product

import (
	"Meal-Planner/entities"
	"context"
	"strings"

	"gorm.io/gorm"
)

type (
	ProductRepository interface {
		CreateProduct(ctx context.Context, product *entities.Product) error
		UpdateProduct(ctx context.Context, product *entities.Product) error
		DeleteProduct(ctx context.Context, id string) error
		GetProductByID(ctx context.Context, id string) (*entities.Product, error)
		GetProductByName(ctx context.Context, name string) (*entities.Product, error)
		GetProducts(ctx context.Context, search string) ([]*entities.Product, error)
	}

	productRepository struct {
		db *gorm.DB
	}
)

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) CreateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *entities.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) DeleteProduct(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Product{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetProductByName(ctx context.Context, name string) (*entities.Product, error) {
	var product entities.Product
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProducts lists products by name, optionally filtered by a
// case-insensitive substring.
func (r *productRepository) GetProducts(ctx context.Context, search string) ([]*entities.Product, error) {
	var products []*entities.Product
	q := r.db.WithContext(ctx).Model(&entities.Product{})
	if search = strings.TrimSpace(search); search != "" {
		q = q.Where("name ILIKE ?", "%"+search+"%")
	}
	if err := q.Order("name ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}
