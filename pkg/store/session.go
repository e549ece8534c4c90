package store

import "time"

const (
	TurnRoleUser  = "user"
	TurnRoleModel = "model"
)

// Turn is one entry in a session's conversation log.
type Turn struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Session holds the in-memory conversation state for one session id.
// Sessions live for the process lifetime; there is no persistence across
// restarts.
type Session struct {
	ID      string                 `json:"id"`
	UserID  string                 `json:"user_id"`
	AppName string                 `json:"app_name"`
	Turns   []Turn                 `json:"turns"`
	State   map[string]interface{} `json:"state"`
}

func NewSession(appName, userID, id string) *Session {
	return &Session{
		ID:      id,
		UserID:  userID,
		AppName: appName,
		Turns:   make([]Turn, 0),
		State:   make(map[string]interface{}),
	}
}

func (s *Session) Append(role, text string) {
	s.Turns = append(s.Turns, Turn{
		Role:      role,
		Text:      text,
		CreatedAt: time.Now(),
	})
}
