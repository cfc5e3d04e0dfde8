package shopping

import (
	"Meal-Planner/domain"
	"Meal-Planner/entities"
	"Meal-Planner/internal/utils/mailing"
	"Meal-Planner/pkg/calendar"
	"Meal-Planner/pkg/nutrition"
	"bytes"
	"context"
	"html/template"

	"github.com/gofiber/fiber/v2/log"
)

const mailSubject = "Shopping list"

var listTemplate = template.Must(template.New("shopping").Parse(`<h2>Shopping list{{if .StartDate}} {{.StartDate}}{{end}}{{if .EndDate}} - {{.EndDate}}{{end}}</h2>
{{if .Items}}<table>
<tr><th>Product</th><th>Quantity</th><th>Packs</th><th>Cost</th></tr>
{{range .Items}}<tr><td>{{.Name}}</td><td>{{.TotalQuantity}} {{.Unit}}</td><td>{{.PacksNeeded}}</td><td>{{printf "%.2f" .EstimatedCost}}</td></tr>
{{end}}</table>
<p>Total: {{printf "%.2f" .TotalCost}}</p>{{else}}<p>Nothing to buy.</p>{{end}}
`))

type (
	// Source is the read side of the plan storage the list is built from.
	Source interface {
		GetEntries(ctx context.Context, within calendar.Range) ([]*entities.WeeklyPlanEntry, error)
		Recipes(ctx context.Context, categories ...string) ([]*entities.Recipe, error)
		Products(ctx context.Context) ([]*entities.Product, error)
	}

	ShoppingService interface {
		GetShoppingList(ctx context.Context, req domain.PlanRangeRequest) (domain.ShoppingListResponse, error)
		SendShoppingList(ctx context.Context, req domain.SendShoppingListRequest) (domain.ShoppingListResponse, error)
	}

	shoppingService struct {
		source Source
		send   mailing.Sender
	}
)

func NewShoppingService(source Source, send mailing.Sender) ShoppingService {
	if send == nil {
		send = mailing.SendMail
	}
	return &shoppingService{
		source: source,
		send:   send,
	}
}

func (s *shoppingService) GetShoppingList(ctx context.Context, req domain.PlanRangeRequest) (domain.ShoppingListResponse, error) {
	within, err := calendar.ParseRange(req.StartDate, req.EndDate)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	entries, err := s.source.GetEntries(ctx, within)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}
	recipes, err := s.source.Recipes(ctx)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}
	products, err := s.source.Products(ctx)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	items := Aggregate(entries, nutrition.NewCookbook(recipes), nutrition.NewCatalog(products), within)
	return domain.ShoppingListResponse{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Items:     items,
		TotalCost: TotalCost(items),
	}, nil
}

func (s *shoppingService) SendShoppingList(ctx context.Context, req domain.SendShoppingListRequest) (domain.ShoppingListResponse, error) {
	list, err := s.GetShoppingList(ctx, domain.PlanRangeRequest{StartDate: req.StartDate, EndDate: req.EndDate})
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	body, err := RenderList(list)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}
	if err := s.send(req.Email, mailSubject, body); err != nil {
		log.Errorw("failed to send shopping list", "email", req.Email, "error", err)
		return domain.ShoppingListResponse{}, err
	}

	log.Infow("shopping list sent", "email", req.Email, "items", len(list.Items))
	return list, nil
}

// RenderList formats the list as the html mail body.
func RenderList(list domain.ShoppingListResponse) (string, error) {
	var buf bytes.Buffer
	if err := listTemplate.Execute(&buf, list); err != nil {
		return "", err
	}
	return buf.String(), nil
}
