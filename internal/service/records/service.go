package records

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	recordsRepo "github.com/m04kA/SMC-TableBooking/internal/infra/storage/records"
	"github.com/m04kA/SMC-TableBooking/internal/service/records/models"
)

// Service сервис чтения записей API: бронирования и события ресторана
type Service struct {
	recordsRepo RecordsRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(recordsRepo RecordsRepository, logger Logger) *Service {
	return &Service{
		recordsRepo: recordsRepo,
		logger:      logger,
	}
}

// ListBookings возвращает бронирования по фильтру (учитываются только date_gte / date_lte)
func (s *Service) ListBookings(ctx context.Context, filter domain.RecordsFilter) ([]domain.Booking, error) {
	bookings, err := s.recordsRepo.ListBookings(ctx, filter)
	if err != nil {
		s.logger.Error("ListBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListBookings: found %d bookings", len(bookings))
	return bookings, nil
}

// GetBooking получает бронирование по ID
func (s *Service) GetBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.recordsRepo.GetBookingByID(ctx, id)
	if err != nil {
		if errors.Is(err, recordsRepo.ErrBookingNotFound) {
			s.logger.Warn("GetBooking: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetBooking: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetBooking - repository error: %v", ErrInternal, err)
	}

	return booking, nil
}

// DeleteBooking удаляет бронирование (отмена столика администратором)
func (s *Service) DeleteBooking(ctx context.Context, id int64) error {
	if err := s.recordsRepo.DeleteBooking(ctx, id); err != nil {
		if errors.Is(err, recordsRepo.ErrBookingNotFound) {
			s.logger.Warn("DeleteBooking: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("DeleteBooking: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteBooking - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBooking: booking id=%d deleted", id)
	return nil
}

// ListEvents возвращает события по фильтру
func (s *Service) ListEvents(ctx context.Context, filter domain.RecordsFilter) ([]domain.Event, error) {
	events, err := s.recordsRepo.ListEvents(ctx, filter)
	if err != nil {
		if errors.Is(err, recordsRepo.ErrInvalidFilter) {
			s.logger.Warn("ListEvents: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		s.logger.Error("ListEvents: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListEvents - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListEvents: found %d events", len(events))
	return events, nil
}

// CreateEvent создает событие ресторана (разовое или ежедневное)
func (s *Service) CreateEvent(ctx context.Context, req *models.CreateEventRequest) (*domain.Event, error) {
	event := &domain.Event{
		Name:     req.Name,
		Date:     req.Date,
		Hour:     req.Hour,
		Table:    req.Table,
		Duration: req.Duration,
		Repeat:   req.Repeat,
	}
	if event.Repeat == "" {
		event.Repeat = domain.RepeatNone
	}

	if err := validateEvent(event); err != nil {
		s.logger.Warn("CreateEvent: validation failed: %v", err)
		return nil, err
	}

	created, err := s.recordsRepo.CreateEvent(ctx, event)
	if err != nil {
		s.logger.Error("CreateEvent: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateEvent - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateEvent: event id=%d created: table=%s, date=%s, hour=%s, repeat=%s",
		created.ID, created.Table, created.Date, created.Hour, created.Repeat)
	return created, nil
}

// validateEvent проверяет, что событие можно развернуть в серию слотов
func validateEvent(event *domain.Event) error {
	if _, err := domain.ParseDateKey(string(event.Date)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if event.Table == "" {
		return fmt.Errorf("%w: table is required", ErrInvalidInput)
	}
	if event.Repeat != domain.RepeatNone && event.Repeat != domain.RepeatDaily {
		return fmt.Errorf("%w: unsupported repeat rule %q", ErrInvalidInput, event.Repeat)
	}
	if event.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	if _, err := event.OccupancyOn(event.Date).Slots(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}
