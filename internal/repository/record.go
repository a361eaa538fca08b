package repository

import (
	"context"
	"errors"
	"time"

	"inkwell/internal/models"
	"inkwell/internal/observability"

	"gorm.io/gorm"
)

// RecordRepository persists journals, books and stories. Every by-id
// operation is scoped to the owner, so a record owned by someone else is
// indistinguishable from a missing one.
type RecordRepository interface {
	Create(ctx context.Context, kind models.Kind, title, content string, ownerID uint) (*models.Record, error)
	ListByOwner(ctx context.Context, kind models.Kind, ownerID uint) ([]models.Record, error)
	GetByID(ctx context.Context, kind models.Kind, id, ownerID uint) (*models.Record, error)
	Update(ctx context.Context, kind models.Kind, id, ownerID uint, title, content string) (bool, error)
	Delete(ctx context.Context, kind models.Kind, id, ownerID uint) error
	SetChecked(ctx context.Context, id, ownerID uint, checked bool) (bool, error)
}

type recordRepository struct {
	db   *gorm.DB
	logs map[models.Kind]*observability.RepoLogger
	now  func() time.Time
}

// NewRecordRepository creates a record repository over the three kind tables.
func NewRecordRepository(db *gorm.DB) RecordRepository {
	logs := make(map[models.Kind]*observability.RepoLogger, len(models.Kinds))
	for _, k := range models.Kinds {
		logs[k] = observability.NewRepoLogger(k.Table())
	}
	return &recordRepository{db: db, logs: logs, now: time.Now}
}

func (r *recordRepository) table(ctx context.Context, kind models.Kind) (*gorm.DB, error) {
	t := kind.Table()
	if t == "" {
		return nil, models.NewInternalError(errors.New("unknown record kind " + string(kind)))
	}
	return r.db.WithContext(ctx).Table(t), nil
}

func (r *recordRepository) Create(ctx context.Context, kind models.Kind, title, content string, ownerID uint) (*models.Record, error) {
	q, err := r.table(ctx, kind)
	if err != nil {
		return nil, err
	}
	defer observability.TrackQuery("create", kind.Table())()

	now := r.now().UTC()
	rec := &models.Record{
		Title:     title,
		Content:   content,
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := q.Create(rec).Error; err != nil {
		r.logs[kind].LogError(ctx, err, "create")
		return nil, models.NewInternalError(err)
	}
	r.logs[kind].LogCreate(ctx, map[string]any{"id": rec.ID, "owner_id": ownerID})
	return rec, nil
}

func (r *recordRepository) ListByOwner(ctx context.Context, kind models.Kind, ownerID uint) ([]models.Record, error) {
	q, err := r.table(ctx, kind)
	if err != nil {
		return nil, err
	}
	defer observability.TrackQuery("list_by_owner", kind.Table())()

	records := []models.Record{}
	if err := q.Where("authorid = ?", ownerID).Order("id ASC").Find(&records).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return records, nil
}

func (r *recordRepository) GetByID(ctx context.Context, kind models.Kind, id, ownerID uint) (*models.Record, error) {
	q, err := r.table(ctx, kind)
	if err != nil {
		return nil, err
	}
	defer observability.TrackQuery("get_by_id", kind.Table())()

	var rec models.Record
	if err := q.Where("id = ? AND authorid = ?", id, ownerID).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError(kind.Label(), id)
		}
		return nil, models.NewInternalError(err)
	}
	return &rec, nil
}

// Update reports false when no record with id belongs to ownerID.
func (r *recordRepository) Update(ctx context.Context, kind models.Kind, id, ownerID uint, title, content string) (bool, error) {
	q, err := r.table(ctx, kind)
	if err != nil {
		return false, err
	}
	defer observability.TrackQuery("update", kind.Table())()

	res := q.Where("id = ? AND authorid = ?", id, ownerID).Updates(map[string]any{
		"title":      title,
		"content":    content,
		"updated_at": r.now().UTC(),
	})
	if res.Error != nil {
		r.logs[kind].LogError(ctx, res.Error, "update")
		return false, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	r.logs[kind].LogUpdate(ctx, map[string]any{"id": id, "owner_id": ownerID})
	return true, nil
}

// Delete is a no-op when the record is absent or owned by someone else.
func (r *recordRepository) Delete(ctx context.Context, kind models.Kind, id, ownerID uint) error {
	q, err := r.table(ctx, kind)
	if err != nil {
		return err
	}
	defer observability.TrackQuery("delete", kind.Table())()

	res := q.Where("id = ? AND authorid = ?", id, ownerID).Delete(&models.Record{})
	if res.Error != nil {
		r.logs[kind].LogError(ctx, res.Error, "delete")
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected > 0 {
		r.logs[kind].LogDelete(ctx, map[string]any{"id": id, "owner_id": ownerID})
	}
	return nil
}

// SetChecked flips the reading flag on a book.
func (r *recordRepository) SetChecked(ctx context.Context, id, ownerID uint, checked bool) (bool, error) {
	q, err := r.table(ctx, models.KindBook)
	if err != nil {
		return false, err
	}
	defer observability.TrackQuery("set_checked", models.KindBook.Table())()

	res := q.Where("id = ? AND authorid = ?", id, ownerID).Updates(map[string]any{
		"checked":    checked,
		"updated_at": r.now().UTC(),
	})
	if res.Error != nil {
		r.logs[models.KindBook].LogError(ctx, res.Error, "set_checked")
		return false, models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	r.logs[models.KindBook].LogUpdate(ctx, map[string]any{"id": id, "owner_id": ownerID, "checked": checked})
	return true, nil
}
