package models

import (
	"time"

	"gorm.io/gorm"
)

// ChatLog is the persisted record of one handled chat turn. Written by
// the serving layer; the engine itself never touches the database.
type ChatLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`

	ReplyID    string  `json:"replyId" gorm:"size:64;index"`
	UserID     string  `json:"userId" gorm:"size:64;index"`
	Persona    string  `json:"persona" gorm:"size:32"`
	Message    string  `json:"message" gorm:"type:text"`
	Response   string  `json:"response" gorm:"type:text"`
	Intent     string  `json:"intent" gorm:"size:32;index"`
	Sentiment  string  `json:"sentiment" gorm:"size:16"`
	Topic      string  `json:"topic" gorm:"size:32"`
	MatchScore float64 `json:"matchScore"`
	Source     string  `json:"source" gorm:"size:32;index"`
}

func (ChatLog) TableName() string {
	return "chat_logs"
}

// CreateChatLog inserts one turn record.
func CreateChatLog(db *gorm.DB, entry *ChatLog) error {
	return db.Create(entry).Error
}

// ListChatLogs returns a user's most recent turns, newest first.
func ListChatLogs(db *gorm.DB, userID string, limit int) ([]ChatLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var logs []ChatLog
	err := db.Model(&ChatLog{}).
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// CountChatLogs reports the total persisted turns.
func CountChatLogs(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&ChatLog{}).Count(&n).Error
	return n, err
}
