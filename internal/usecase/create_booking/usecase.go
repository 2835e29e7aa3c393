package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TableBooking/internal/availability"
	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// UseCase use case для создания бронирования столика
type UseCase struct {
	recordsRepo  RecordsRepository
	txManager    TransactionManager
	tables       map[domain.TableID]struct{}
	daysAhead    int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// tables - план зала, daysAhead - сколько дней вперед разрешено бронировать.
func NewUseCase(
	recordsRepo RecordsRepository,
	txManager TransactionManager,
	tables []domain.TableID,
	daysAhead int,
	logger Logger,
) *UseCase {
	known := make(map[domain.TableID]struct{}, len(tables))
	for _, t := range tables {
		known[t] = struct{}{}
	}

	return &UseCase{
		recordsRepo:  recordsRepo,
		txManager:    txManager,
		tables:       known,
		daysAhead:    daysAhead,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка занятости и вставка выполняются в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, hour=%s, table=%s, duration=%v, ppl=%d",
		req.Date, req.Hour, req.Table, req.Duration, req.People)

	// 1. Валидация входных данных
	draft, err := buildDraft(req)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	if err := validateTable(draft.Table, uc.tables); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 2. Дата должна попадать в окно бронирования
	if err := validateDate(draft.Date, uc.timeProvider.Now(), uc.daysAhead); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	payload := draft.Payload()
	var result *domain.Booking

	// 3. Проверяем занятость и сохраняем в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		h := domain.Horizon{Min: draft.Date, Max: draft.Date}
		index, skipped, err := availability.Load(txCtx, uc.recordsRepo, h)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to load records for %s: %v", draft.Date, err)
			return fmt.Errorf("%w: failed to load records: %v", ErrInternal, err)
		}
		for _, s := range skipped {
			uc.logger.Warn("CreateBooking: %v", s)
		}

		isOccupied := func(slot domain.TimeSlot) bool {
			return index.IsOccupied(draft.Date, slot, draft.Table)
		}
		if slot, conflict := findConflict(isOccupied, draft.Slots()); conflict {
			uc.logger.Warn("CreateBooking: table=%s is taken on %s at %s", draft.Table, draft.Date, slot)
			return fmt.Errorf("%w: table %s is taken at %s", ErrSlotNotAvailable, draft.Table, slot)
		}

		created, err := uc.recordsRepo.CreateBooking(txCtx, &payload)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: booking id=%d created: table=%s, date=%s, hour=%s",
		result.ID, result.Table, result.Date, result.Hour)
	return result, nil
}
