package get_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-TableBooking/internal/availability"
	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// UseCase use case получения занятости столиков на дату
type UseCase struct {
	recordsRepo  RecordsRepository
	tables       []domain.TableID
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case для плана зала tables
func NewUseCase(recordsRepo RecordsRepository, tables []domain.TableID, logger Logger) *UseCase {
	return &UseCase{
		recordsRepo:  recordsRepo,
		tables:       tables,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute строит индекс занятости на дату запроса и раскладывает столики
// плана зала на свободные и занятые по каждому запрошенному слоту
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s, hour=%q", req.Date, req.Hour)

	slots, err := requestedSlots(req)
	if err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("GetAvailability: %v", err)
		return nil, err
	}

	index, skipped, err := availability.Load(ctx, uc.recordsRepo, domain.Horizon{Min: req.Date, Max: req.Date})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to load records for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to load records: %v", ErrInternal, err)
	}
	for _, s := range skipped {
		uc.logger.Warn("GetAvailability: %v", s)
	}

	resp := &Response{Date: req.Date, Slots: make([]Slot, 0, len(slots))}
	for _, slot := range slots {
		occupied := index.OccupiedTables(req.Date, slot)
		s := Slot{
			Hour:   slot.String(),
			Free:   make([]domain.TableID, 0, len(uc.tables)),
			Booked: make([]domain.TableID, 0),
		}
		for _, t := range uc.tables {
			if _, ok := occupied[t]; ok {
				s.Booked = append(s.Booked, t)
			} else {
				s.Free = append(s.Free, t)
			}
		}
		resp.Slots = append(resp.Slots, s)
	}

	uc.logger.Info("GetAvailability: date=%s, slots=%d, skipped=%d", req.Date, len(resp.Slots), len(skipped))
	return resp, nil
}
