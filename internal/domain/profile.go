package domain

import "time"

// Profile представляет учетную запись пользователя с агрегированными оценками коммуникации
type Profile struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	Scores       Scores    `json:"scores"`
	CreatedAt    time.Time `json:"created_at"`
}

// Scores содержит четыре оценки качества коммуникации, каждая в диапазоне 0-100
type Scores struct {
	Tone       int `json:"tone"`
	Empathy    int `json:"empathy"`
	Clarity    int `json:"clarity"`
	Confidence int `json:"confidence"`
}
