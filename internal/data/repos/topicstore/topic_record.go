package topicstore

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/growthpilot/backend/internal/domain"
	"github.com/growthpilot/backend/internal/domain/topics"
	"github.com/growthpilot/backend/internal/pkg/logger"
)

// TopicRecordRepo is the persisted-record store keyed by topic_id.
type TopicRecordRepo interface {
	Get(ctx context.Context, tx *gorm.DB, topicID string) (*domain.TopicRecord, error)
	Create(ctx context.Context, tx *gorm.DB, record *domain.TopicRecord) error
	Update(ctx context.Context, tx *gorm.DB, record *domain.TopicRecord) error
	SoftDelete(ctx context.Context, tx *gorm.DB, topicID string) error
	HardDelete(ctx context.Context, tx *gorm.DB, topicID string) error
	List(ctx context.Context, tx *gorm.DB, includeInactive bool) ([]*domain.TopicRecord, error)
	ListByType(ctx context.Context, tx *gorm.DB, topicType topics.TopicType, includeInactive bool) ([]*domain.TopicRecord, error)
}

type topicRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTopicRecordRepo(db *gorm.DB, baseLog *logger.Logger) TopicRecordRepo {
	repoLog := baseLog.With("repo", "TopicRecordRepo")
	return &topicRecordRepo{db: db, log: repoLog}
}

func (r *topicRecordRepo) handle(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

// Get returns nil without error when no record exists; absence is a normal
// outcome for callers like the reconciler.
func (r *topicRecordRepo) Get(ctx context.Context, tx *gorm.DB, topicID string) (*domain.TopicRecord, error) {
	var rec domain.TopicRecord
	err := r.handle(tx).WithContext(ctx).
		Where("topic_id = ?", topicID).
		First(&rec).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Create is put-if-absent: ON CONFLICT (topic_id) DO NOTHING. Zero rows
// inserted means the key already existed, so concurrent creates cannot
// both win.
func (r *topicRecordRepo) Create(ctx context.Context, tx *gorm.DB, record *domain.TopicRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}
	now := time.Now().UTC()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	res := r.handle(tx).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "topic_id"}},
			DoNothing: true,
		}).
		Create(record)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &topics.DuplicateTopicError{TopicID: record.TopicID}
	}
	return nil
}

func (r *topicRecordRepo) Update(ctx context.Context, tx *gorm.DB, record *domain.TopicRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}
	record.UpdatedAt = time.Now().UTC()

	res := r.handle(tx).WithContext(ctx).
		Model(&domain.TopicRecord{}).
		Where("topic_id = ?", record.TopicID).
		Select("*").
		Omit("topic_id", "created_at", "created_by").
		Updates(record)
	if res.Error != nil {
		return &topics.TopicUpdateError{TopicID: record.TopicID, Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return &topics.TopicNotFoundError{TopicID: record.TopicID}
	}
	return nil
}

func (r *topicRecordRepo) SoftDelete(ctx context.Context, tx *gorm.DB, topicID string) error {
	res := r.handle(tx).WithContext(ctx).
		Model(&domain.TopicRecord{}).
		Where("topic_id = ?", topicID).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return &topics.TopicUpdateError{TopicID: topicID, Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return &topics.TopicNotFoundError{TopicID: topicID}
	}
	return nil
}

func (r *topicRecordRepo) HardDelete(ctx context.Context, tx *gorm.DB, topicID string) error {
	res := r.handle(tx).WithContext(ctx).
		Where("topic_id = ?", topicID).
		Delete(&domain.TopicRecord{})
	if res.Error != nil {
		return &topics.TopicUpdateError{TopicID: topicID, Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return &topics.TopicNotFoundError{TopicID: topicID}
	}
	return nil
}

func (r *topicRecordRepo) List(ctx context.Context, tx *gorm.DB, includeInactive bool) ([]*domain.TopicRecord, error) {
	var results []*domain.TopicRecord
	q := r.handle(tx).WithContext(ctx).Order("display_order asc, topic_id asc")
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *topicRecordRepo) ListByType(ctx context.Context, tx *gorm.DB, topicType topics.TopicType, includeInactive bool) ([]*domain.TopicRecord, error) {
	var results []*domain.TopicRecord
	q := r.handle(tx).WithContext(ctx).
		Where("topic_type = ?", string(topicType)).
		Order("display_order asc, topic_id asc")
	if !includeInactive {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
