package repository

import (
	"context"
	"fmt"

	"github.com/esprit/eventsproject/internal/domain"
	"github.com/esprit/eventsproject/internal/repository/dao"
)

type LogisticsDAO interface {
	Save(ctx context.Context, logistics dao.Logistics) (dao.Logistics, error)
}

type LogisticsRepository struct {
	dao LogisticsDAO
}

func NewLogisticsRepository(dao LogisticsDAO) *LogisticsRepository {
	return &LogisticsRepository{
		dao: dao,
	}
}

func (r *LogisticsRepository) Save(ctx context.Context, logistics domain.Logistics) (domain.Logistics, error) {
	saved, err := r.dao.Save(ctx, logisticsDomainToDao(logistics))
	if err != nil {
		return domain.Logistics{}, fmt.Errorf("r.dao.Save -> %w", err)
	}

	return logisticsDaoToDomain(saved), nil
}

func logisticsDomainToDao(l domain.Logistics) dao.Logistics {
	daoLogistics := dao.Logistics{
		ID:          l.ID,
		Description: l.Description,
		Reserve:     l.Reserved,
		PrixUnit:    l.UnitPrice,
		Quantite:    l.Quantity,
	}

	if l.EventID != 0 {
		eventID := l.EventID
		daoLogistics.EventID = &eventID
	}

	return daoLogistics
}

func logisticsDaoToDomain(l dao.Logistics) domain.Logistics {
	logistics := domain.Logistics{
		ID:          l.ID,
		Description: l.Description,
		Reserved:    l.Reserve,
		UnitPrice:   l.PrixUnit,
		Quantity:    l.Quantite,
	}

	if l.EventID != nil {
		logistics.EventID = *l.EventID
	}

	return logistics
}

func logisticsDaosToDomain(daoLogistics []dao.Logistics) []domain.Logistics {
	logistics := make([]domain.Logistics, len(daoLogistics))
	for i, l := range daoLogistics {
		logistics[i] = logisticsDaoToDomain(l)
	}
	return logistics
}
