package service

import (
	"context"

	"inkwell/internal/cache"
	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
	"inkwell/internal/validation"

	"go.opentelemetry.io/otel/attribute"
)

// RecordService applies validation, ownership and dashboard caching on top
// of the record repository.
type RecordService struct {
	repo  repository.RecordRepository
	cache *cache.Store
}

// NewRecordService creates a record service. store may be nil or disabled.
func NewRecordService(repo repository.RecordRepository, store *cache.Store) *RecordService {
	return &RecordService{repo: repo, cache: store}
}

func (s *RecordService) List(ctx context.Context, kind models.Kind, ownerID uint) ([]models.Record, error) {
	return s.repo.ListByOwner(ctx, kind, ownerID)
}

func (s *RecordService) Get(ctx context.Context, kind models.Kind, id, ownerID uint) (*models.Record, error) {
	return s.repo.GetByID(ctx, kind, id, ownerID)
}

func (s *RecordService) Create(ctx context.Context, kind models.Kind, ownerID uint, title, content string) (rec *models.Record, err error) {
	ctx, span := observability.StartSpan(ctx, "RecordService.Create", attribute.String("record.kind", string(kind)))
	defer func() { observability.EndSpan(span, err) }()

	if msgs := validation.Record(title, content); len(msgs) > 0 {
		return nil, models.NewValidationError(msgs...)
	}

	rec, err = s.repo.Create(ctx, kind, title, content, ownerID)
	if err != nil {
		return nil, err
	}
	s.changed(ctx, kind, "create", ownerID)
	return rec, nil
}

func (s *RecordService) Update(ctx context.Context, kind models.Kind, id, ownerID uint, title, content string) (err error) {
	ctx, span := observability.StartSpan(ctx, "RecordService.Update",
		attribute.String("record.kind", string(kind)),
		attribute.Int("record.id", int(id)),
	)
	defer func() { observability.EndSpan(span, err) }()

	if msgs := validation.Record(title, content); len(msgs) > 0 {
		return models.NewValidationError(msgs...)
	}

	found, err := s.repo.Update(ctx, kind, id, ownerID, title, content)
	if err != nil {
		return err
	}
	if !found {
		return models.NewNotFoundError(kind.Label(), id)
	}
	s.changed(ctx, kind, "update", ownerID)
	return nil
}

// Delete removes the record if the owner has it; deleting an absent record succeeds.
func (s *RecordService) Delete(ctx context.Context, kind models.Kind, id, ownerID uint) error {
	if err := s.repo.Delete(ctx, kind, id, ownerID); err != nil {
		return err
	}
	s.changed(ctx, kind, "delete", ownerID)
	return nil
}

// SetChecked marks a book as read or unread.
func (s *RecordService) SetChecked(ctx context.Context, id, ownerID uint, checked bool) error {
	found, err := s.repo.SetChecked(ctx, id, ownerID, checked)
	if err != nil {
		return err
	}
	if !found {
		return models.NewNotFoundError(models.KindBook.Label(), id)
	}
	s.changed(ctx, models.KindBook, "toggle", ownerID)
	return nil
}

// Dashboard aggregates every record the owner has, served from the cache
// when possible.
func (s *RecordService) Dashboard(ctx context.Context, ownerID uint) (*models.Dashboard, error) {
	var dash models.Dashboard
	err := s.cache.Aside(ctx, cache.DashboardKey(ownerID), &dash, cache.DashboardTTL, func() error {
		var err error
		if dash.Journals, err = s.repo.ListByOwner(ctx, models.KindJournal, ownerID); err != nil {
			return err
		}
		if dash.Books, err = s.repo.ListByOwner(ctx, models.KindBook, ownerID); err != nil {
			return err
		}
		if dash.Stories, err = s.repo.ListByOwner(ctx, models.KindStory, ownerID); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dash, nil
}

func (s *RecordService) changed(ctx context.Context, kind models.Kind, op string, ownerID uint) {
	observability.RecordOperations.WithLabelValues(string(kind), op).Inc()
	s.cache.InvalidateDashboard(ctx, ownerID)
}
