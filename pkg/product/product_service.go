package product

import (
	"Meal-Planner/domain"
	"Meal-Planner/entities"
	"Meal-Planner/internal/utils/storage"
	"Meal-Planner/pkg/nutrition"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ProductService interface {
		CreateProduct(ctx context.Context, req domain.ProductRequest) (domain.ProductResponse, error)
		UpdateProduct(ctx context.Context, id string, req domain.ProductRequest) (domain.ProductResponse, error)
		DeleteProduct(ctx context.Context, id string) error
		GetProduct(ctx context.Context, id string) (domain.ProductResponse, error)
		GetProducts(ctx context.Context, search string) ([]domain.ProductResponse, error)
		ExportProducts(ctx context.Context) (domain.ExportResult, error)
		ImportProducts(ctx context.Context) (domain.ImportResult, error)
	}

	productService struct {
		productRepository ProductRepository
		s3                storage.AwsS3
	}
)

func NewProductService(productRepository ProductRepository, s3 storage.AwsS3) ProductService {
	return &productService{
		productRepository: productRepository,
		s3:                s3,
	}
}

func (s *productService) CreateProduct(ctx context.Context, req domain.ProductRequest) (domain.ProductResponse, error) {
	name := strings.TrimSpace(req.Name)
	if _, err := s.productRepository.GetProductByName(ctx, name); err == nil {
		return domain.ProductResponse{}, domain.ErrProductNameDuplicate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ProductResponse{}, err
	}

	product := &entities.Product{ID: uuid.New()}
	apply(product, req)
	if err := s.productRepository.CreateProduct(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}
	return ToResponse(product), nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, req domain.ProductRequest) (domain.ProductResponse, error) {
	product, err := s.find(ctx, id)
	if err != nil {
		return domain.ProductResponse{}, err
	}

	name := strings.TrimSpace(req.Name)
	if name != product.Name {
		other, err := s.productRepository.GetProductByName(ctx, name)
		if err == nil && other.ID != product.ID {
			return domain.ProductResponse{}, domain.ErrProductNameDuplicate
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ProductResponse{}, err
		}
	}

	apply(product, req)
	if err := s.productRepository.UpdateProduct(ctx, product); err != nil {
		return domain.ProductResponse{}, err
	}
	return ToResponse(product), nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	if err := s.productRepository.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProductNotFound
		}
		return err
	}
	return nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (domain.ProductResponse, error) {
	product, err := s.find(ctx, id)
	if err != nil {
		return domain.ProductResponse{}, err
	}
	return ToResponse(product), nil
}

func (s *productService) GetProducts(ctx context.Context, search string) ([]domain.ProductResponse, error) {
	products, err := s.productRepository.GetProducts(ctx, search)
	if err != nil {
		return nil, err
	}

	res := make([]domain.ProductResponse, 0, len(products))
	for _, p := range products {
		res = append(res, ToResponse(p))
	}
	return res, nil
}

func (s *productService) ExportProducts(ctx context.Context) (domain.ExportResult, error) {
	products, err := s.productRepository.GetProducts(ctx, "")
	if err != nil {
		return domain.ExportResult{}, err
	}

	data := make([]domain.ProductBackup, 0, len(products))
	for _, p := range products {
		data = append(data, domain.ProductBackup{
			Name:           p.Name,
			Price:          p.Price,
			Unit:           p.Unit,
			Amount:         p.Amount,
			Calories:       p.Calories,
			Proteins:       p.Proteins,
			Fats:           p.Fats,
			Carbs:          p.Carbs,
			WeightPerPiece: p.WeightPerPiece,
		})
	}

	key, err := s.s3.PutJSON(ctx, storage.ProductsBackup, data)
	if err != nil {
		return domain.ExportResult{}, err
	}
	log.Infow("products exported", "key", key, "count", len(data))

	return domain.ExportResult{
		Message: fmt.Sprintf("saved %d products", len(data)),
		Key:     key,
		URL:     s.s3.GetPublicLinkKey(key),
		Count:   len(data),
	}, nil
}

// ImportProducts upserts the backup by name. Existing products are only
// touched when price, amount, unit or calories differ.
func (s *productService) ImportProducts(ctx context.Context) (domain.ImportResult, error) {
	var data []domain.ProductBackup
	if err := s.s3.GetJSON(ctx, storage.ProductsBackup, &data); err != nil {
		return domain.ImportResult{}, err
	}

	res := domain.ImportResult{Message: domain.MessageSuccessImport}
	for _, item := range data {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			res.Skipped++
			continue
		}
		item = normalizeBackup(item)

		existing, err := s.productRepository.GetProductByName(ctx, name)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			product := &entities.Product{
				ID:             uuid.New(),
				Name:           name,
				Price:          item.Price,
				Unit:           item.Unit,
				Amount:         item.Amount,
				Calories:       item.Calories,
				Proteins:       item.Proteins,
				Fats:           item.Fats,
				Carbs:          item.Carbs,
				WeightPerPiece: item.WeightPerPiece,
			}
			if err := s.productRepository.CreateProduct(ctx, product); err != nil {
				return res, err
			}
			res.Created++
		case err != nil:
			return res, err
		case changed(existing, item):
			existing.Price = item.Price
			existing.Amount = item.Amount
			existing.Unit = item.Unit
			existing.Calories = item.Calories
			existing.Proteins = item.Proteins
			existing.Fats = item.Fats
			existing.Carbs = item.Carbs
			if err := s.productRepository.UpdateProduct(ctx, existing); err != nil {
				return res, err
			}
			res.Updated++
		}
	}

	log.Infow("products imported", "created", res.Created, "updated", res.Updated, "skipped", res.Skipped)
	return res, nil
}

func (s *productService) find(ctx context.Context, id string) (*entities.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}
	product, err := s.productRepository.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func apply(product *entities.Product, req domain.ProductRequest) {
	product.Name = strings.TrimSpace(req.Name)
	product.Price = req.Price
	product.Unit = strings.TrimSpace(req.Unit)
	product.Amount = req.Amount
	if product.Amount <= 0 {
		product.Amount = 1
	}
	product.Calories = req.Calories
	product.Proteins = req.Proteins
	product.Fats = req.Fats
	product.Carbs = req.Carbs
	product.WeightPerPiece = req.WeightPerPiece
}

func normalizeBackup(item domain.ProductBackup) domain.ProductBackup {
	if item.Amount <= 0 {
		item.Amount = 1
	}
	if strings.TrimSpace(item.Unit) == "" {
		item.Unit = "шт"
	}
	if item.Calories == nil {
		zero := 0.0
		item.Calories = &zero
	}
	return item
}

func changed(p *entities.Product, item domain.ProductBackup) bool {
	return p.Price != item.Price ||
		p.Amount != item.Amount ||
		p.Unit != item.Unit ||
		!sameValue(p.Calories, item.Calories)
}

func sameValue(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func ToResponse(p *entities.Product) domain.ProductResponse {
	return domain.ProductResponse{
		ID:             p.ID.String(),
		Name:           p.Name,
		Price:          p.Price,
		Unit:           p.Unit,
		Amount:         p.Amount,
		PricePerUnit:   nutrition.Round(nutrition.PricePerUnit(p), 4),
		Calories:       p.Calories,
		Proteins:       p.Proteins,
		Fats:           p.Fats,
		Carbs:          p.Carbs,
		WeightPerPiece: p.WeightPerPiece,
		CreatedAt:      p.CreatedAt,
	}
}
