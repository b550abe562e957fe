package domain

import "time"

// Message es un item de un hilo direct; solo procesamos ItemType == "text".
type Message struct {
	ID       string
	ItemType string
	Text     string
	SenderID string
	SentAt   time.Time
}

func (m Message) IsText() bool { return m.ItemType == "text" }

// Member es un participante del grupo.
type Member struct {
	ID       string
	Username string
}

// Question es una pregunta de trivia cargada de lists/trivia.json.
type Question struct {
	Question string            `json:"question"`
	Options  map[string]string `json:"options"`
	Answer   string            `json:"answer"`
}
