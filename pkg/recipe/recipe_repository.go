package recipe

import (
	"Meal-Planner/entities"
	"context"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		UpdateRecipeInfo(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id string) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipeByTitle(ctx context.Context, title string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, categories ...string) ([]*entities.Recipe, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

// UpdateRecipe saves the recipe row and replaces its whole ingredient list.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Ingredients").Save(recipe).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if len(recipe.Ingredients) == 0 {
			return nil
		}
		for i := range recipe.Ingredients {
			recipe.Ingredients[i].RecipeID = recipe.ID
		}
		return tx.Create(&recipe.Ingredients).Error
	})
}

// UpdateRecipeInfo saves the recipe row and leaves ingredients untouched.
func (r *recipeRepository) UpdateRecipeInfo(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Omit("Ingredients").Save(recipe).Error
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipe_id = ?", id).Delete(&entities.RecipeIngredient{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", id).Delete(&entities.Recipe{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Preload("Ingredients").Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeByTitle(ctx context.Context, title string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecipes returns recipes with their ingredients, restricted to the given
// categories when any are passed.
func (r *recipeRepository) GetRecipes(ctx context.Context, categories ...string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	q := r.db.WithContext(ctx).Preload("Ingredients")
	if len(categories) > 0 {
		q = q.Where("category IN ?", categories)
	}
	if err := q.Order("title ASC").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}
