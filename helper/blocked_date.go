package helper

import (
	"log"
	"time"

	"store_manager/database"
	"store_manager/model"
	"store_manager/utils"

	"github.com/go-co-op/gocron/v2"
)

var blockedDateScheduler gocron.Scheduler

func IsDateBlocked(storeId uint, date utils.CustomDate) (bool, error) {
	var count int64
	err := database.DB.Model(&model.BlockedDate{}).
		Where("store_id = ? AND date = ?", storeId, date).
		Count(&count).Error
	return count > 0, err
}

func purgePastBlockedDates() {
	today := utils.NewCustomDate(time.Now().UTC())
	result := database.DB.
		Where("date < ?", today).
		Delete(&model.BlockedDate{})

	if result.Error != nil {
		log.Printf("Failed to purge past blocked dates: %v", result.Error)
		return
	}

	if result.RowsAffected > 0 {
		log.Printf("Purged %d past blocked dates", result.RowsAffected)
	}
}

// StartBlockedDateScheduler purges stale blocked dates shortly after midnight.
func StartBlockedDateScheduler() {
	s, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		log.Fatal(err)
	}

	blockedDateScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 15, 0),
			),
		),
		gocron.NewTask(purgePastBlockedDates),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Blocked-date scheduler started (00:15 UTC)")
}

func StopBlockedDateScheduler() {
	if blockedDateScheduler != nil {
		_ = blockedDateScheduler.Shutdown()
	}
}
