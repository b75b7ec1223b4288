package jobs

import (
	"log"
	"time"

	"github.com/learnai/marketplace-backend/models"
	"gorm.io/gorm"
)

const pendingBookingTTL = 24 * time.Hour

// ExpirePendingBookings marks bookings that have sat in PENDING past the TTL
// as EXPIRED and fails their transactions, so unpaid holds don't linger.
func ExpirePendingBookings(db *gorm.DB) {
	log.Println("Running job: ExpirePendingBookings...")

	cutoff := time.Now().Add(-pendingBookingTTL)

	var stale []models.Booking
	if err := db.Where("status = ? AND created_at < ?", models.BookingPending, cutoff).Find(&stale).Error; err != nil {
		log.Printf("Error checking for stale pending bookings: %v", err)
		return
	}
	if len(stale) == 0 {
		log.Println("No stale pending bookings found.")
		return
	}

	ids := make([]interface{}, 0, len(stale))
	for _, b := range stale {
		ids = append(ids, b.ID)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Booking{}).Where("id IN ?", ids).Update("status", models.BookingExpired).Error; err != nil {
			return err
		}
		return tx.Model(&models.Transaction{}).
			Where("booking_id IN ? AND status = ?", ids, models.TransactionPending).
			Update("status", models.TransactionFailed).Error
	})
	if err != nil {
		log.Printf("Error expiring pending bookings: %v", err)
		return
	}

	log.Printf("Marked %d booking(s) as expired.", len(stale))
}
