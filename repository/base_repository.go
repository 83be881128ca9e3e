package repository

import (
	"errors"

	"dbvaultapi/config"
	"dbvaultapi/models"

	"gorm.io/gorm"
)

// Repository provides generic record access for a persisted entity type.
// All filters are exact-match. Lookups that match nothing return (nil, nil)
// rather than an error; callers decide whether absence is a failure.
type Repository[T models.Entity] interface {
	Begin() *gorm.DB
	GetByID(tx *gorm.DB, id string) (*T, error)
	GetOneByFilter(tx *gorm.DB, filters map[string]interface{}) (*T, error)
	GetAllByFilter(tx *gorm.DB, filters map[string]interface{}) ([]T, error)
	GetAll(tx *gorm.DB, limit, offset int) ([]T, error)
	Create(tx *gorm.DB, record *T) error
	Update(tx *gorm.DB, id string, values map[string]interface{}) (int64, error)
}

type repository[T models.Entity] struct {
	db *gorm.DB
}

// NewRepository creates a repository bound to the global database connection.
func NewRepository[T models.Entity]() Repository[T] {
	return &repository[T]{db: config.DB}
}

// NewRepositoryWithDB creates a repository bound to an explicit connection.
// Used by tests to substitute a mocked database.
func NewRepositoryWithDB[T models.Entity](db *gorm.DB) Repository[T] {
	return &repository[T]{db: db}
}

func (r *repository[T]) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *repository[T]) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *repository[T]) GetByID(tx *gorm.DB, id string) (*T, error) {
	var record T
	err := r.conn(tx).Where("id = ?", id).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repository[T]) GetOneByFilter(tx *gorm.DB, filters map[string]interface{}) (*T, error) {
	var record T
	err := r.conn(tx).Where(filters).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *repository[T]) GetAllByFilter(tx *gorm.DB, filters map[string]interface{}) ([]T, error) {
	var records []T
	if err := r.conn(tx).Where(filters).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository[T]) GetAll(tx *gorm.DB, limit, offset int) ([]T, error) {
	var records []T
	if err := r.conn(tx).Offset(offset).Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *repository[T]) Create(tx *gorm.DB, record *T) error {
	return r.conn(tx).Create(record).Error
}

// Update applies partial field updates to the record with the given id.
// An id that matches nothing is a no-op; the returned count is zero.
func (r *repository[T]) Update(tx *gorm.DB, id string, values map[string]interface{}) (int64, error) {
	var record T
	res := r.conn(tx).Model(&record).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
