package daemons

import (
	"encoding/json"
	"fmt"

	"github.com/bayezid0075/Dreamy-Life-v2.0/config"
	"github.com/bayezid0075/Dreamy-Life-v2.0/models"
	"github.com/bayezid0075/Dreamy-Life-v2.0/mq_client"
	"github.com/bayezid0075/Dreamy-Life-v2.0/referral"
)

// UplineNotifier consumes registration events and tells each ancestor, up
// to ten levels deep, that a new referral joined their network. Entirely
// outside any purchase transaction.
type UplineNotifier struct {
	Running bool
}

type RegistrationPayload struct {
	UserID uint64 `json:"user_id"`
}

func NewUplineNotifier() *UplineNotifier {
	return &UplineNotifier{Running: true}
}

func (w *UplineNotifier) Stop() {
	w.Running = false
}

func (w *UplineNotifier) Start() {
	deliveries, err := mq_client.Consume("upline_registration")
	if err != nil {
		config.Logger.Fatalf("Failed to consume upline_registration: %v", err)
	}

	for delivery := range deliveries {
		if !w.Running {
			break
		}

		if err := w.Process(delivery.Body); err != nil {
			config.Logger.Errorf("Failed to process registration event: %v", err)
		}
	}
}

func (w *UplineNotifier) Process(payload []byte) error {
	var registration RegistrationPayload
	if err := json.Unmarshal(payload, &registration); err != nil {
		return err
	}

	user, err := models.FindUser(config.DataBase, registration.UserID)
	if err != nil {
		return err
	}

	graph := referral.NewGraph(referral.NewGormSource(config.DataBase))
	uplines := graph.Uplines(user, referral.MaxCommissionLevel)

	for {
		upline, err := uplines.Next()
		if err != nil {
			return err
		}
		if upline == nil {
			return nil
		}

		notification := &models.Notification{
			UserID:  upline.User.ID,
			Title:   "New referral registered",
			Message: fmt.Sprintf("%s registered using your code (L%d).", user.Username, upline.Level),
		}

		if err := config.DataBase.Create(notification).Error; err != nil {
			config.Logger.Warnf("Failed to notify upline %d: %v", upline.User.ID, err)
			continue
		}

		notification.TriggerEvent()
	}
}
