package models

// Question is a single trivia question. Rows are created and deleted
// through the API but never updated in place.
type Question struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	Question   string `json:"question" gorm:"type:text;not null" validate:"required"`
	Answer     string `json:"answer" gorm:"type:text;not null" validate:"required"`
	CategoryID uint   `json:"category" gorm:"column:category;not null;index" validate:"required"`
	Difficulty int    `json:"difficulty" gorm:"not null" validate:"required,difficulty_level"`
}

func (Question) TableName() string {
	return "questions"
}

// Category is a read-only label; rows are seeded outside this service.
type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Type string `json:"type" gorm:"size:100;not null"`
}

func (Category) TableName() string {
	return "categories"
}

// FormattedQuestion is the externally visible projection of a question.
type FormattedQuestion struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Format returns the response projection of q.
func (q *Question) Format() *FormattedQuestion {
	return &FormattedQuestion{
		ID:         q.ID,
		Question:   q.Question,
		Answer:     q.Answer,
		Category:   q.CategoryID,
		Difficulty: q.Difficulty,
	}
}

// FormatQuestions projects a slice of questions in order.
func FormatQuestions(questions []*Question) []*FormattedQuestion {
	formatted := make([]*FormattedQuestion, len(questions))
	for i, q := range questions {
		formatted[i] = q.Format()
	}
	return formatted
}
