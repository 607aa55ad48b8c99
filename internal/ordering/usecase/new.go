package usecase

import (
	"food-ordering-assistant/internal/ordering/repository"
	"food-ordering-assistant/pkg/log"
)

// implUseCase is the private implementation of ordering.UseCase.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new ordering UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
