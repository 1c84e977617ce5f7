package jobs

import (
	"context"
	"log"
	"time"

	"github.com/pureaura/clinic-backend/notifications"
	"github.com/pureaura/clinic-backend/store"
)

// PendingDigestJob mails the operator a daily summary of booking requests
// that are still awaiting confirmation.
type PendingDigestJob struct {
	Bookings *store.BookingStore
	Mail     *notifications.Dispatcher
}

func (j *PendingDigestJob) Run() {
	log.Println("Running job: PendingBookingsDigest...")

	pending, err := j.Bookings.ListPendingSince(context.Background(), time.Now().Add(-24*time.Hour))
	if err != nil {
		log.Printf("Error checking for pending bookings: %v", err)
		return
	}
	if len(pending) == 0 {
		return
	}

	j.Mail.PendingBookingsDigest(pending)
}
