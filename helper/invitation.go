package helper

import (
	"log"
	"time"

	"store_manager/database"
	"store_manager/model"

	"github.com/robfig/cron/v3"
)

var invitationScheduler *cron.Cron

func sweepExpiredInvitations() {
	result := database.DB.
		Where("used_at IS NULL AND expires_at < ?", time.Now()).
		Delete(&model.Invitation{})

	if result.Error != nil {
		log.Printf("Failed to sweep expired invitations: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Deleted %d expired invitations", result.RowsAffected)
	}
}

// StartInvitationScheduler removes expired unused invitations hourly.
func StartInvitationScheduler() {
	invitationScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := invitationScheduler.AddFunc("@hourly", sweepExpiredInvitations)
	if err != nil {
		log.Printf("Failed to start invitation scheduler: %v", err)
		return
	}

	invitationScheduler.Start()
	log.Println("Invitation scheduler started (hourly)")
}

func StopInvitationScheduler() {
	if invitationScheduler != nil {
		invitationScheduler.Stop()
	}
}
