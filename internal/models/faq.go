package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/campus-connect/CampusTalk/pkg/corpus"
	"github.com/campus-connect/CampusTalk/pkg/persona"
)

// FAQEntry is one seeded question/answer pair. Persona scopes the entry
// to one audience; an empty persona puts it in the generic set every
// audience falls back to.
type FAQEntry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"-" gorm:"autoUpdateTime"`

	Persona  string `json:"persona" gorm:"size:32;index"`
	Question string `json:"question" gorm:"size:512"`
	Answer   string `json:"answer" gorm:"type:text"`
	Category string `json:"category" gorm:"size:64;index"`
}

func (FAQEntry) TableName() string {
	return "faq_entries"
}

// CreateFAQEntry inserts one entry.
func CreateFAQEntry(db *gorm.DB, entry *FAQEntry) error {
	return db.Create(entry).Error
}

// ListFAQEntries returns all entries, optionally filtered by persona.
func ListFAQEntries(db *gorm.DB, personaType string) ([]FAQEntry, error) {
	var entries []FAQEntry
	q := db.Model(&FAQEntry{}).Order("id")
	if personaType != "" {
		q = q.Where("persona = ?", personaType)
	}
	if err := q.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// CountFAQEntries reports how many entries are stored.
func CountFAQEntries(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&FAQEntry{}).Count(&n).Error
	return n, err
}

// LoadCorpus snapshots the FAQ table into the immutable corpus store the
// engine retrieves from. Rows with an unknown persona value land in the
// generic set.
func LoadCorpus(db *gorm.DB) (*corpus.Store, error) {
	rows, err := ListFAQEntries(db, "")
	if err != nil {
		return nil, err
	}

	byPersona := map[persona.Type][]corpus.Entry{}
	var generic []corpus.Entry
	for _, row := range rows {
		entry := corpus.Entry{
			Question: row.Question,
			Answer:   row.Answer,
			Category: row.Category,
		}
		t := persona.Type(row.Persona)
		if row.Persona == "" || !persona.Valid(t) {
			generic = append(generic, entry)
			continue
		}
		byPersona[t] = append(byPersona[t], entry)
	}
	return corpus.New(byPersona, generic), nil
}
