package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/IT22102546/ArmiGo-Research-sub009/internal/dto"
	"github.com/IT22102546/ArmiGo-Research-sub009/internal/repository"
)

// ReferenceService exposes the read-only administrative taxonomies.
type ReferenceService interface {
	ListZones(ctx context.Context) ([]dto.ZoneItem, error)
	ListDistricts(ctx context.Context) ([]dto.ReferenceItem, error)
	ListSubjects(ctx context.Context) ([]dto.ReferenceItem, error)
	ListMediums(ctx context.Context) ([]dto.ReferenceItem, error)
}

type referenceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewReferenceService creates a ReferenceService instance.
func NewReferenceService(repo *repository.Repository, logger *zap.Logger) ReferenceService {
	return &referenceService{repo: repo, logger: logger}
}

func (s *referenceService) ListZones(ctx context.Context) ([]dto.ZoneItem, error) {
	zones, err := s.repo.Reference.ListZones(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ZoneItem, len(zones))
	for i, z := range zones {
		items[i] = dto.ZoneItem{
			ReferenceItem: dto.ReferenceItem{ID: z.ZoneID, Name: z.Name, Code: z.Code},
		}
		if z.District != nil {
			items[i].DistrictID = z.District.DistrictID
			items[i].DistrictName = z.District.Name
		}
	}
	return items, nil
}

func (s *referenceService) ListDistricts(ctx context.Context) ([]dto.ReferenceItem, error) {
	districts, err := s.repo.Reference.ListDistricts(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReferenceItem, len(districts))
	for i, d := range districts {
		items[i] = dto.ReferenceItem{ID: d.DistrictID, Name: d.Name, Code: d.Code}
	}
	return items, nil
}

func (s *referenceService) ListSubjects(ctx context.Context) ([]dto.ReferenceItem, error) {
	subjects, err := s.repo.Reference.ListSubjects(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReferenceItem, len(subjects))
	for i, sub := range subjects {
		items[i] = dto.ReferenceItem{ID: sub.SubjectID, Name: sub.Name, Code: sub.Code}
	}
	return items, nil
}

func (s *referenceService) ListMediums(ctx context.Context) ([]dto.ReferenceItem, error) {
	mediums, err := s.repo.Reference.ListMediums(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReferenceItem, len(mediums))
	for i, m := range mediums {
		items[i] = dto.ReferenceItem{ID: m.MediumID, Name: m.Name}
	}
	return items, nil
}
