package recipe

import (
	"Meal-Planner/domain"
	"Meal-Planner/entities"
	"Meal-Planner/internal/utils/storage"
	"Meal-Planner/pkg/nutrition"
	"Meal-Planner/pkg/product"
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.RecipeRequest) (domain.RecipeDetail, error)
		UpdateRecipe(ctx context.Context, id string, req domain.RecipeRequest) (domain.RecipeDetail, error)
		DeleteRecipe(ctx context.Context, id string) error
		GetRecipeDetail(ctx context.Context, id string) (domain.RecipeDetail, error)
		GetRecipes(ctx context.Context, category string) ([]domain.Recipe, error)
		ExportRecipes(ctx context.Context) (domain.ExportResult, error)
		ImportRecipes(ctx context.Context) (domain.ImportResult, error)
	}

	recipeService struct {
		recipeRepository  RecipeRepository
		productRepository product.ProductRepository
		s3                storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, productRepository product.ProductRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository:  recipeRepository,
		productRepository: productRepository,
		s3:                s3,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.RecipeRequest) (domain.RecipeDetail, error) {
	catalog, err := s.catalog(ctx)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	recipe := &entities.Recipe{ID: uuid.New()}
	if err := apply(recipe, req, catalog); err != nil {
		return domain.RecipeDetail{}, err
	}
	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetail{}, err
	}
	return ToDetail(recipe, catalog), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.RecipeRequest) (domain.RecipeDetail, error) {
	recipe, err := s.find(ctx, id)
	if err != nil {
		return domain.RecipeDetail{}, err
	}
	catalog, err := s.catalog(ctx)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	if err := apply(recipe, req, catalog); err != nil {
		return domain.RecipeDetail{}, err
	}
	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.RecipeDetail{}, err
	}
	return ToDetail(recipe, catalog), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrParseUUID
	}
	if err := s.recipeRepository.DeleteRecipe(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}
	return nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string) (domain.RecipeDetail, error) {
	recipe, err := s.find(ctx, id)
	if err != nil {
		return domain.RecipeDetail{}, err
	}
	catalog, err := s.catalog(ctx)
	if err != nil {
		return domain.RecipeDetail{}, err
	}
	return ToDetail(recipe, catalog), nil
}

func (s *recipeService) GetRecipes(ctx context.Context, category string) ([]domain.Recipe, error) {
	var categories []string
	if category != "" {
		if !slices.Contains(domain.Categories, category) {
			return nil, domain.ErrInvalidRecipeQuery
		}
		categories = append(categories, category)
	}

	recipes, err := s.recipeRepository.GetRecipes(ctx, categories...)
	if err != nil {
		return nil, err
	}
	catalog, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		res = append(res, ToSummary(r, catalog))
	}
	return res, nil
}

func (s *recipeService) ExportRecipes(ctx context.Context) (domain.ExportResult, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx)
	if err != nil {
		return domain.ExportResult{}, err
	}

	data := make([]domain.RecipeBackup, 0, len(recipes))
	for _, r := range recipes {
		data = append(data, domain.RecipeBackup{
			Title:       r.Title,
			Description: r.Description,
			Portions:    r.Portions,
			Category:    r.Category,
			Rating:      r.Rating,
		})
	}

	key, err := s.s3.PutJSON(ctx, storage.RecipesBackup, data)
	if err != nil {
		return domain.ExportResult{}, err
	}
	log.Infow("recipes exported", "key", key, "count", len(data))

	return domain.ExportResult{
		Message: fmt.Sprintf("saved %d recipes", len(data)),
		Key:     key,
		URL:     s.s3.GetPublicLinkKey(key),
		Count:   len(data),
	}, nil
}

// ImportRecipes upserts recipe headers by title. Ingredients are not part
// of the backup and stay as they are.
func (s *recipeService) ImportRecipes(ctx context.Context) (domain.ImportResult, error) {
	var data []domain.RecipeBackup
	if err := s.s3.GetJSON(ctx, storage.RecipesBackup, &data); err != nil {
		return domain.ImportResult{}, err
	}

	res := domain.ImportResult{Message: domain.MessageSuccessImport}
	for _, item := range data {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			res.Skipped++
			continue
		}
		if item.Portions < 1 {
			item.Portions = 1
		}
		if !slices.Contains(domain.Categories, item.Category) {
			item.Category = domain.CategoryOther
		}

		existing, err := s.recipeRepository.GetRecipeByTitle(ctx, title)
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			recipe := &entities.Recipe{
				ID:          uuid.New(),
				Title:       title,
				Description: item.Description,
				Portions:    item.Portions,
				Category:    item.Category,
				Rating:      item.Rating,
			}
			if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
				return res, err
			}
			res.Created++
		case err != nil:
			return res, err
		case existing.Description != item.Description || existing.Portions != item.Portions ||
			existing.Category != item.Category || existing.Rating != item.Rating:
			existing.Description = item.Description
			existing.Portions = item.Portions
			existing.Category = item.Category
			existing.Rating = item.Rating
			if err := s.recipeRepository.UpdateRecipeInfo(ctx, existing); err != nil {
				return res, err
			}
			res.Updated++
		}
	}

	log.Infow("recipes imported", "created", res.Created, "updated", res.Updated, "skipped", res.Skipped)
	return res, nil
}

func (s *recipeService) find(ctx context.Context, id string) (*entities.Recipe, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) catalog(ctx context.Context) (nutrition.Catalog, error) {
	products, err := s.productRepository.GetProducts(ctx, "")
	if err != nil {
		return nil, err
	}
	return nutrition.NewCatalog(products), nil
}

func apply(recipe *entities.Recipe, req domain.RecipeRequest, catalog nutrition.Catalog) error {
	ingredients := make([]entities.RecipeIngredient, 0, len(req.Ingredients))
	for _, item := range req.Ingredients {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return domain.ErrParseUUID
		}
		if _, ok := catalog.Product(productID); !ok {
			return fmt.Errorf("%w: %s", domain.ErrUnknownIngredient, item.ProductID)
		}
		ingredients = append(ingredients, entities.RecipeIngredient{
			ID:        uuid.New(),
			RecipeID:  recipe.ID,
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}

	recipe.Title = strings.TrimSpace(req.Title)
	recipe.Description = req.Description
	recipe.Portions = max(req.Portions, 1)
	recipe.Category = req.Category
	if recipe.Category == "" {
		recipe.Category = domain.CategoryOther
	}
	recipe.Rating = req.Rating
	recipe.Ingredients = ingredients
	return nil
}

func ToSummary(r *entities.Recipe, products nutrition.ProductLookup) domain.Recipe {
	return domain.Recipe{
		ID:              r.ID.String(),
		Title:           r.Title,
		Description:     r.Description,
		Portions:        r.Portions,
		Category:        r.Category,
		Rating:          r.Rating,
		CreatedAt:       r.CreatedAt,
		RecipeNutrition: nutrition.Calculate(r, products),
	}
}

func ToDetail(r *entities.Recipe, products nutrition.ProductLookup) domain.RecipeDetail {
	return domain.RecipeDetail{
		Recipe:      ToSummary(r, products),
		Ingredients: nutrition.Breakdown(r, products),
	}
}
