package usecase

import (
	"context"
	"strings"

	"food-ordering-assistant/internal/catalog"
	repo "food-ordering-assistant/internal/catalog/repository"
	"food-ordering-assistant/internal/model"
)

// CreateRestaurant creates a restaurant after validating required fields
// and checking for a duplicate name.
func (uc *implUseCase) CreateRestaurant(ctx context.Context, input catalog.CreateRestaurantInput) (catalog.CreateRestaurantOutput, error) {
	name := strings.TrimSpace(input.Name)
	address := strings.TrimSpace(input.Address)
	phone := strings.TrimSpace(input.Phone)
	if name == "" || address == "" || phone == "" {
		return catalog.CreateRestaurantOutput{}, catalog.ErrMissingFields
	}

	existing, err := uc.repo.GetOneRestaurant(ctx, repo.GetOneRestaurantOptions{Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateRestaurant GetOneRestaurant: %v", err)
		return catalog.CreateRestaurantOutput{}, err
	}
	if existing.ID != "" {
		return catalog.CreateRestaurantOutput{Restaurant: existing}, catalog.ErrDuplicateRestaurant
	}

	res, err := uc.repo.CreateRestaurant(ctx, repo.CreateRestaurantOptions{
		Name:    name,
		Address: address,
		Phone:   phone,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateRestaurant CreateRestaurant: %v", err)
		return catalog.CreateRestaurantOutput{}, err
	}

	return catalog.CreateRestaurantOutput{Restaurant: res}, nil
}

// ListRestaurants returns every restaurant.
func (uc *implUseCase) ListRestaurants(ctx context.Context) (catalog.ListRestaurantsOutput, error) {
	restaurants, err := uc.repo.ListRestaurants(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListRestaurants: %v", err)
		return catalog.ListRestaurantsOutput{}, err
	}
	return catalog.ListRestaurantsOutput{Restaurants: restaurants}, nil
}

// DetailRestaurant returns one restaurant by id.
func (uc *implUseCase) DetailRestaurant(ctx context.Context, id string) (catalog.DetailRestaurantOutput, error) {
	res, err := uc.repo.GetOneRestaurant(ctx, repo.GetOneRestaurantOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DetailRestaurant: %v", err)
		return catalog.DetailRestaurantOutput{}, err
	}
	if res.ID == "" {
		return catalog.DetailRestaurantOutput{}, catalog.ErrRestaurantNotFound
	}
	return catalog.DetailRestaurantOutput{Restaurant: res}, nil
}

// UpdateRestaurant applies a partial update.
func (uc *implUseCase) UpdateRestaurant(ctx context.Context, input catalog.UpdateRestaurantInput) (catalog.UpdateRestaurantOutput, error) {
	existing, err := uc.repo.GetOneRestaurant(ctx, repo.GetOneRestaurantOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateRestaurant GetOneRestaurant: %v", err)
		return catalog.UpdateRestaurantOutput{}, err
	}
	if existing.ID == "" {
		return catalog.UpdateRestaurantOutput{}, catalog.ErrRestaurantNotFound
	}

	res, err := uc.repo.UpdateRestaurant(ctx, repo.UpdateRestaurantOptions{
		ID:      input.ID,
		Name:    strings.TrimSpace(input.Name),
		Address: strings.TrimSpace(input.Address),
		Phone:   strings.TrimSpace(input.Phone),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateRestaurant UpdateRestaurant: %v", err)
		return catalog.UpdateRestaurantOutput{}, err
	}

	return catalog.UpdateRestaurantOutput{Restaurant: res}, nil
}

// DeleteRestaurant removes a restaurant and cascades to its foods.
func (uc *implUseCase) DeleteRestaurant(ctx context.Context, id string) error {
	existing, err := uc.repo.GetOneRestaurant(ctx, repo.GetOneRestaurantOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteRestaurant GetOneRestaurant: %v", err)
		return err
	}
	if existing.ID == "" {
		return catalog.ErrRestaurantNotFound
	}

	// Foods first so a missing restaurant never strands menu items.
	if err := uc.repo.DeleteFoodsByRestaurant(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteRestaurant DeleteFoodsByRestaurant: %v", err)
		return err
	}
	if err := uc.repo.DeleteRestaurant(ctx, id); err != nil {
		uc.l.Errorf(ctx, "uc.DeleteRestaurant DeleteRestaurant: %v", err)
		return err
	}
	return nil
}

// FindRestaurantByName resolves a case-insensitive partial name match.
func (uc *implUseCase) FindRestaurantByName(ctx context.Context, name string) (model.Restaurant, error) {
	return uc.repo.GetOneRestaurant(ctx, repo.GetOneRestaurantOptions{Name: strings.TrimSpace(name)})
}

// CountRestaurants returns the total restaurant count.
func (uc *implUseCase) CountRestaurants(ctx context.Context) (int, error) {
	return uc.repo.CountRestaurants(ctx)
}
