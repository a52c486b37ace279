package activity

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/facultyboard/server/internal/domain"
	"github.com/facultyboard/server/internal/domain/category"
	"github.com/facultyboard/server/internal/domain/dto"
	"github.com/facultyboard/server/internal/pkg/constants"
	"github.com/facultyboard/server/internal/pkg/store"
	"github.com/google/uuid"
)

type Service struct {
	store store.Store
}

func NewActivityService(store store.Store) *Service {
	return &Service{store: store}
}

// Create validates a submission against the category's spec and inserts it.
func (svc *Service) Create(ctx context.Context, userID, categoryName string, request *dto.CreateActivityRequest) (*domain.Activity, error) {
	spec, err := category.Lookup(categoryName)
	if err != nil {
		return nil, err
	}

	for column := range request.Dimensions {
		if !spec.HasDimension(column) {
			return nil, constants.NewCodedError(http.StatusBadRequest,
				fmt.Sprintf("unknown field %q for category %s", column, spec.Name))
		}
	}

	occurredAt := time.Now()
	if request.OccurredAt != nil {
		occurredAt = *request.OccurredAt
	}

	activity := &domain.Activity{
		ID:          uuid.NewString(),
		UserID:      userID,
		Category:    spec.Name,
		Title:       &request.Title,
		OccurredAt:  occurredAt,
		Dimensions:  request.Dimensions,
		ArtifactURL: request.ArtifactURL,
	}

	if err := svc.store.InsertActivity(ctx, spec, activity); err != nil {
		return nil, fmt.Errorf("store.InsertActivity: %w", err)
	}

	return activity, nil
}

func (svc *Service) ListMine(ctx context.Context, userID, categoryName string) ([]*domain.Activity, error) {
	spec, err := category.Lookup(categoryName)
	if err != nil {
		return nil, err
	}

	return svc.store.ListActivitiesByUser(ctx, spec, userID)
}

func (svc *Service) Delete(ctx context.Context, userID, categoryName, id string) error {
	spec, err := category.Lookup(categoryName)
	if err != nil {
		return err
	}

	return svc.store.DeleteActivity(ctx, spec, id, userID)
}
