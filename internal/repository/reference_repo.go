package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/IT22102546/ArmiGo-Research-sub009/internal/model"
)

// ReferenceRepository reads the administrative taxonomies. Lookups by
// term match name or code case-insensitively.
type ReferenceRepository interface {
	ResolveZone(ctx context.Context, term string) (*model.Zone, error)
	ResolveDistrict(ctx context.Context, term string) (*model.District, error)
	ResolveSubject(ctx context.Context, term string) (*model.Subject, error)
	ResolveMedium(ctx context.Context, term string) (*model.Medium, error)
	ListZones(ctx context.Context) ([]model.Zone, error)
	ListDistricts(ctx context.Context) ([]model.District, error)
	ListSubjects(ctx context.Context) ([]model.Subject, error)
	ListMediums(ctx context.Context) ([]model.Medium, error)
}

// referenceRepo is the GORM implementation of ReferenceRepository.
type referenceRepo struct {
	db *gorm.DB
}

// NewReferenceRepo creates a ReferenceRepository instance.
func NewReferenceRepo(db *gorm.DB) ReferenceRepository {
	return &referenceRepo{db: db}
}

func (r *referenceRepo) ResolveZone(ctx context.Context, term string) (*model.Zone, error) {
	var zone model.Zone
	err := r.db.WithContext(ctx).
		Preload("District").
		Where("LOWER(name) = LOWER(?) OR LOWER(code) = LOWER(?)", term, term).
		First(&zone).Error
	if err != nil {
		return nil, err
	}
	return &zone, nil
}

func (r *referenceRepo) ResolveDistrict(ctx context.Context, term string) (*model.District, error) {
	var district model.District
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?) OR LOWER(code) = LOWER(?)", term, term).
		First(&district).Error
	if err != nil {
		return nil, err
	}
	return &district, nil
}

func (r *referenceRepo) ResolveSubject(ctx context.Context, term string) (*model.Subject, error) {
	var subject model.Subject
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?) OR LOWER(code) = LOWER(?)", term, term).
		First(&subject).Error
	if err != nil {
		return nil, err
	}
	return &subject, nil
}

func (r *referenceRepo) ResolveMedium(ctx context.Context, term string) (*model.Medium, error) {
	var medium model.Medium
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", term).
		First(&medium).Error
	if err != nil {
		return nil, err
	}
	return &medium, nil
}

func (r *referenceRepo) ListZones(ctx context.Context) ([]model.Zone, error) {
	var zones []model.Zone
	err := r.db.WithContext(ctx).
		Preload("District").
		Order("name ASC").
		Find(&zones).Error
	return zones, err
}

func (r *referenceRepo) ListDistricts(ctx context.Context) ([]model.District, error) {
	var districts []model.District
	err := r.db.WithContext(ctx).Order("name ASC").Find(&districts).Error
	return districts, err
}

func (r *referenceRepo) ListSubjects(ctx context.Context) ([]model.Subject, error) {
	var subjects []model.Subject
	err := r.db.WithContext(ctx).Order("name ASC").Find(&subjects).Error
	return subjects, err
}

func (r *referenceRepo) ListMediums(ctx context.Context) ([]model.Medium, error) {
	var mediums []model.Medium
	err := r.db.WithContext(ctx).Order("name ASC").Find(&mediums).Error
	return mediums, err
}
