package nutrition

import (
	"Meal-Planner/entities"

	"github.com/google/uuid"
)

type (
	ProductLookup interface {
		Product(id uuid.UUID) (*entities.Product, bool)
	}

	RecipeLookup interface {
		Recipe(id uuid.UUID) (*entities.Recipe, bool)
	}

	// Catalog indexes products by id.
	Catalog map[uuid.UUID]*entities.Product

	// Cookbook indexes recipes by id. Recipes are expected to carry their ingredients.
	Cookbook map[uuid.UUID]*entities.Recipe
)

func NewCatalog(products []*entities.Product) Catalog {
	c := make(Catalog, len(products))
	for _, p := range products {
		c[p.ID] = p
	}
	return c
}

func (c Catalog) Product(id uuid.UUID) (*entities.Product, bool) {
	p, ok := c[id]
	return p, ok && p != nil
}

func NewCookbook(recipes []*entities.Recipe) Cookbook {
	b := make(Cookbook, len(recipes))
	for _, r := range recipes {
		b[r.ID] = r
	}
	return b
}

func (b Cookbook) Recipe(id uuid.UUID) (*entities.Recipe, bool) {
	r, ok := b[id]
	return r, ok && r != nil
}
