package sweep_statuses

import (
	"context"
	"fmt"
	"time"

	"github.com/courtline/CourtBookingService/internal/domain"
	"github.com/courtline/CourtBookingService/internal/integrations/notifyservice"
)

// UseCase advances booking statuses against the clock. The start step
// runs before the complete step, so a short slot can pass through
// in_progress within one run; longer slots progress across runs.
type UseCase struct {
	bookingRepo  BookingRepository
	courtRepo    CourtRepository
	notifyClient NotifyClient
	timeProvider TimeProvider
	noticeWindow time.Duration
	logger       Logger
}

// Result is a summary of one sweep run.
type Result struct {
	Started   int64
	Completed int64
	Notified  int
}

// Total returns the number of bookings whose status changed.
func (r Result) Total() int64 {
	return r.Started + r.Completed
}

// NewUseCase creates the status sweep use case.
func NewUseCase(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	notifyClient NotifyClient,
	timeProvider TimeProvider,
	noticeWindow time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		courtRepo:    courtRepo,
		notifyClient: notifyClient,
		timeProvider: timeProvider,
		noticeWindow: noticeWindow,
		logger:       logger,
	}
}

// Execute runs both transition steps and sends ending-soon notices.
// Both steps are plain conditional UPDATEs, so a run that finds nothing
// to change is a no-op and the sweep stays safe to repeat.
func (uc *UseCase) Execute(ctx context.Context) (*Result, error) {
	now := uc.timeProvider.Now()

	started, err := uc.bookingRepo.MarkInProgress(ctx, now)
	if err != nil {
		uc.logger.Error("SweepStatuses: failed to start confirmed bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to start confirmed bookings: %v", ErrInternal, err)
	}

	completed, err := uc.bookingRepo.MarkCompleted(ctx, now)
	if err != nil {
		uc.logger.Error("SweepStatuses: failed to complete in-progress bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to complete in-progress bookings: %v", ErrInternal, err)
	}

	result := &Result{Started: started, Completed: completed}

	result.Notified = uc.notifyEndingSoon(ctx, now)

	if result.Total() > 0 || result.Notified > 0 {
		uc.logger.Info("SweepStatuses: started=%d completed=%d notified=%d",
			result.Started, result.Completed, result.Notified)
	}
	return result, nil
}

// notifyEndingSoon posts a notice for each in-progress booking ending
// within the notice window. Delivery failures are logged and skipped;
// the booking stays unnotified and is retried on the next run.
func (uc *UseCase) notifyEndingSoon(ctx context.Context, now time.Time) int {
	threshold := now.Add(uc.noticeWindow)

	bookings, err := uc.bookingRepo.ListEndingSoon(ctx, now, threshold)
	if err != nil {
		uc.logger.Error("SweepStatuses: failed to list ending bookings: %v", err)
		return 0
	}

	sent := 0
	for _, booking := range bookings {
		if err := uc.sendEndingNotice(ctx, booking); err != nil {
			uc.logger.Warn("SweepStatuses: notice for booking id=%d failed: %v", booking.ID, err)
			continue
		}
		if err := uc.bookingRepo.MarkNotified(ctx, booking.ID); err != nil {
			uc.logger.Error("SweepStatuses: failed to mark booking id=%d notified: %v", booking.ID, err)
			continue
		}
		sent++
	}
	return sent
}

func (uc *UseCase) sendEndingNotice(ctx context.Context, booking *domain.Booking) error {
	courtName := fmt.Sprintf("court %d", booking.CourtID)
	if court, err := uc.courtRepo.GetByID(ctx, booking.CourtID); err == nil {
		courtName = court.Name
	}

	return uc.notifyClient.Send(ctx, &notifyservice.Notification{
		Kind:       notifyservice.KindBookingEndingSoon,
		CustomerID: booking.CustomerID,
		BookingID:  booking.ID,
		CourtName:  courtName,
		EndTime:    booking.EndTime.Format(time.RFC3339),
	})
}
