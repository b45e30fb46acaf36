package observation

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("observation not found")

type Repository interface {
	Create(ctx context.Context, obs *Observation) error
	FindAll(ctx context.Context) ([]Observation, error)
	FindByID(ctx context.Context, id uint) (*Observation, error)
	// Update replaces every column except id and created_at.
	Update(ctx context.Context, id uint, obs Observation) error
	Delete(ctx context.Context, id uint) error

	FindByHumidityAbove(ctx context.Context, humidity int) ([]Observation, error)
	FindByTemperatureAtLeast(ctx context.Context, temperature int) ([]Observation, error)
	FindByRain(ctx context.Context, rain int) ([]Observation, error)
}

type ObservationSQLRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &ObservationSQLRepository{db: db}
}

func (r *ObservationSQLRepository) Create(ctx context.Context, obs *Observation) error {
	return r.db.WithContext(ctx).Create(obs).Error
}

func (r *ObservationSQLRepository) FindAll(ctx context.Context) ([]Observation, error) {
	var observations []Observation
	err := r.db.WithContext(ctx).Order("id").Find(&observations).Error
	if err != nil {
		return nil, err
	}
	return observations, nil
}

func (r *ObservationSQLRepository) FindByID(ctx context.Context, id uint) (*Observation, error) {
	var obs Observation
	err := r.db.WithContext(ctx).First(&obs, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &obs, nil
}

func (r *ObservationSQLRepository) Update(ctx context.Context, id uint, obs Observation) error {
	obs.ID = 0

	result := r.db.WithContext(ctx).
		Model(&Observation{}).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at").
		Updates(&obs)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ObservationSQLRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&Observation{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ObservationSQLRepository) FindByHumidityAbove(ctx context.Context, humidity int) ([]Observation, error) {
	return r.findWhere(ctx, "humidity > ?", humidity)
}

func (r *ObservationSQLRepository) FindByTemperatureAtLeast(ctx context.Context, temperature int) ([]Observation, error) {
	return r.findWhere(ctx, "temperature >= ?", temperature)
}

func (r *ObservationSQLRepository) FindByRain(ctx context.Context, rain int) ([]Observation, error) {
	return r.findWhere(ctx, "rain = ?", rain)
}

// NULL columns never satisfy these predicates, so unset readings drop out of every filter.
func (r *ObservationSQLRepository) findWhere(ctx context.Context, query string, arg int) ([]Observation, error) {
	var observations []Observation
	err := r.db.WithContext(ctx).Where(query, arg).Order("id").Find(&observations).Error
	if err != nil {
		return nil, err
	}
	return observations, nil
}
