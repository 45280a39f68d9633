package reports

import (
	"context"
	"fmt"
	"sort"

	"github.com/courtline/CourtBookingService/internal/domain"
	"github.com/courtline/CourtBookingService/internal/service/reports/models"
)

// Service builds read-only management reports over booking history.
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService creates the reports service.
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// BookingsSummary aggregates bookings per start-time day over
// [From, To). Cancelled and completed rows are included; revenue only
// counts paid bookings.
func (s *Service) BookingsSummary(ctx context.Context, req *models.BookingsSummaryRequest) (*models.BookingsSummaryResponse, error) {
	s.logger.Info("BookingsSummary: period %s to %s",
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))

	if !req.To.After(req.From) {
		return nil, ErrInvalidPeriod
	}

	bookings, err := s.bookingRepo.ListWithFilter(ctx, domain.BookingsFilter{
		CourtID:         req.CourtID,
		StartDate:       &req.From,
		EndDate:         &req.To,
		IncludeInactive: true,
	})
	if err != nil {
		s.logger.Error("BookingsSummary: repository error: %v", err)
		return nil, fmt.Errorf("%w: BookingsSummary - repository error: %v", ErrInternal, err)
	}

	byDay := make(map[string]*models.DaySummary)
	resp := &models.BookingsSummaryResponse{From: req.From, To: req.To}

	for _, b := range bookings {
		date := b.StartTime.Format(domain.DateFormat)
		day, ok := byDay[date]
		if !ok {
			day = &models.DaySummary{Date: date}
			byDay[date] = day
		}

		day.Total++
		resp.TotalCount++

		switch b.Status {
		case domain.StatusCompleted:
			day.Completed++
		case domain.StatusCancelled:
			day.Cancelled++
		}

		if b.IsPaid() {
			day.Revenue += b.Fee
			resp.TotalRevenue += b.Fee
		}
	}

	resp.Days = make([]models.DaySummary, 0, len(byDay))
	for _, day := range byDay {
		resp.Days = append(resp.Days, *day)
	}
	sort.Slice(resp.Days, func(i, j int) bool {
		return resp.Days[i].Date < resp.Days[j].Date
	})

	s.logger.Info("BookingsSummary: %d bookings over %d days", resp.TotalCount, len(resp.Days))
	return resp, nil
}
