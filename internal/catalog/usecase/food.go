package usecase

import (
	"context"
	"strings"

	"food-ordering-assistant/internal/catalog"
	repo "food-ordering-assistant/internal/catalog/repository"
	"food-ordering-assistant/internal/model"
)

// CreateFood creates a food item after validating the restaurant exists.
func (uc *implUseCase) CreateFood(ctx context.Context, input catalog.CreateFoodInput) (catalog.CreateFoodOutput, error) {
	if strings.TrimSpace(input.Name) == "" || input.RestaurantID == "" {
		return catalog.CreateFoodOutput{}, catalog.ErrMissingFields
	}

	restaurant, err := uc.repo.GetOneRestaurant(ctx, repo.GetOneRestaurantOptions{ID: input.RestaurantID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateFood GetOneRestaurant: %v", err)
		return catalog.CreateFoodOutput{}, err
	}
	if restaurant.ID == "" {
		return catalog.CreateFoodOutput{}, catalog.ErrRestaurantNotFound
	}

	food, err := uc.repo.CreateFood(ctx, repo.CreateFoodOptions{
		Name:         strings.TrimSpace(input.Name),
		Description:  strings.TrimSpace(input.Description),
		Price:        input.Price,
		Category:     strings.TrimSpace(input.Category),
		RestaurantID: input.RestaurantID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateFood CreateFood: %v", err)
		return catalog.CreateFoodOutput{}, err
	}

	return catalog.CreateFoodOutput{Food: food}, nil
}

// ListFoods returns every food with its restaurant name resolved.
func (uc *implUseCase) ListFoods(ctx context.Context) (catalog.ListFoodsOutput, error) {
	return uc.listFoods(ctx, repo.ListFoodsOptions{})
}

// ListFoodsByRestaurant returns the menu of one restaurant.
func (uc *implUseCase) ListFoodsByRestaurant(ctx context.Context, restaurantID string) (catalog.ListFoodsOutput, error) {
	return uc.listFoods(ctx, repo.ListFoodsOptions{RestaurantID: restaurantID})
}

// SearchFoodsByName returns foods whose names match the term.
func (uc *implUseCase) SearchFoodsByName(ctx context.Context, term string, limit int) (catalog.ListFoodsOutput, error) {
	return uc.listFoods(ctx, repo.ListFoodsOptions{Name: strings.TrimSpace(term), Limit: limit})
}

// SearchFoodsByCategory returns foods whose categories match.
func (uc *implUseCase) SearchFoodsByCategory(ctx context.Context, category string, limit int) (catalog.ListFoodsOutput, error) {
	return uc.listFoods(ctx, repo.ListFoodsOptions{Category: strings.TrimSpace(category), Limit: limit})
}

// CheapestFoods returns up to limit foods ordered by ascending price.
func (uc *implUseCase) CheapestFoods(ctx context.Context, limit int) (catalog.ListFoodsOutput, error) {
	return uc.listFoods(ctx, repo.ListFoodsOptions{OrderByPrice: true, Limit: limit})
}

// FindFoodByName resolves a case-insensitive partial name match.
func (uc *implUseCase) FindFoodByName(ctx context.Context, name string) (catalog.FoodWithRestaurant, error) {
	food, err := uc.repo.GetOneFood(ctx, repo.GetOneFoodOptions{Name: strings.TrimSpace(name)})
	if err != nil {
		uc.l.Errorf(ctx, "uc.FindFoodByName: %v", err)
		return catalog.FoodWithRestaurant{}, err
	}
	if food.ID == "" {
		return catalog.FoodWithRestaurant{}, nil
	}

	restaurant, err := uc.repo.GetOneRestaurant(ctx, repo.GetOneRestaurantOptions{ID: food.RestaurantID})
	if err != nil {
		return catalog.FoodWithRestaurant{}, err
	}
	return catalog.FoodWithRestaurant{Food: food, RestaurantName: restaurant.Name}, nil
}

// FoodsByIDs returns the foods for the given id set.
func (uc *implUseCase) FoodsByIDs(ctx context.Context, ids []string) ([]model.Food, error) {
	return uc.repo.ListFoodsByIDs(ctx, ids)
}

// DeleteFood removes one food item.
func (uc *implUseCase) DeleteFood(ctx context.Context, id string) error {
	food, err := uc.repo.GetOneFood(ctx, repo.GetOneFoodOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteFood GetOneFood: %v", err)
		return err
	}
	if food.ID == "" {
		return catalog.ErrFoodNotFound
	}
	return uc.repo.DeleteFood(ctx, id)
}

// CountFoods returns the total food count.
func (uc *implUseCase) CountFoods(ctx context.Context) (int, error) {
	return uc.repo.CountFoods(ctx)
}

func (uc *implUseCase) listFoods(ctx context.Context, opt repo.ListFoodsOptions) (catalog.ListFoodsOutput, error) {
	foods, err := uc.repo.ListFoods(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.listFoods: %v", err)
		return catalog.ListFoodsOutput{}, err
	}

	// Resolve restaurant names once per distinct id.
	names := make(map[string]string)
	out := make([]catalog.FoodWithRestaurant, 0, len(foods))
	for _, f := range foods {
		name, ok := names[f.RestaurantID]
		if !ok {
			restaurant, err := uc.repo.GetOneRestaurant(ctx, repo.GetOneRestaurantOptions{ID: f.RestaurantID})
			if err != nil {
				return catalog.ListFoodsOutput{}, err
			}
			name = restaurant.Name
			names[f.RestaurantID] = name
		}
		out = append(out, catalog.FoodWithRestaurant{Food: f, RestaurantName: name})
	}

	return catalog.ListFoodsOutput{Foods: out}, nil
}
