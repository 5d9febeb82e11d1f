package models

import (
	"encoding/json"
	"time"

	"github.com/bayezid0075/Dreamy-Life-v2.0/mq_client"
)

type Notification struct {
	ID        uint64    `json:"id" gorm:"primaryKey"`
	UserID    uint64    `json:"user_id" gorm:"index"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TriggerEvent pushes the notification onto the private event exchange.
// Best-effort: delivery problems are the broker's to surface, never the
// caller's.
func (n *Notification) TriggerEvent() {
	payload_message, _ := json.Marshal(n)

	mq_client.EnqueueEvent("private", n.UserID, "notification", payload_message)
}
