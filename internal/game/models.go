package game

import (
	"encoding/json"
	"strconv"
)

// Response is a completed call to the game server: OK mirrors a 2xx status
// and Data holds whatever JSON object came back.
type Response struct {
	OK         bool
	StatusCode int
	Data       ResponseData
}

// ResponseData is the union of the success and error payloads returned by
// /api/action. Error, Detail and Message are left untyped because servers put
// strings, objects and arrays there.
type ResponseData struct {
	Error     any     `json:"error,omitempty"`
	Detail    any     `json:"detail,omitempty"`
	Message   any     `json:"message,omitempty"`
	Narration string  `json:"narration,omitempty"`
	State     *State  `json:"state,omitempty"`
	ImageURL  *string `json:"image_url,omitempty"`
}

// Image returns the scene image URL, or "" when the server sent none.
func (d ResponseData) Image() string {
	if d.ImageURL == nil {
		return ""
	}
	return *d.ImageURL
}

// State is the game state the server keeps between turns.
type State struct {
	PlayerName string          `json:"player_name"`
	Location   string          `json:"location"`
	Inventory  []string        `json:"inventory"`
	Health     float64         `json:"health"`
	Danger     float64         `json:"danger"`
	Time       string          `json:"time"`
	Flags      map[string]any  `json:"flags,omitempty"`
	NPCs       json.RawMessage `json:"npcs,omitempty"`
	Objectives json.RawMessage `json:"objectives,omitempty"`
}

// Session endings signalled through state flags.
const (
	EndingEscaped = "escaped"
	EndingDead    = "dead"
)

// Flag reports whether the named flag is set to a truthy value.
func (s *State) Flag(name string) bool {
	if s == nil {
		return false
	}
	switch v := s.Flags[name].(type) {
	case bool:
		return v
	case float64:
		return v != 0
	case string:
		b, err := strconv.ParseBool(v)
		return err == nil && b
	default:
		return false
	}
}

// Ending returns the ending flag that closes the session, if any.
func (s *State) Ending() (string, bool) {
	switch {
	case s.Flag(EndingEscaped):
		return EndingEscaped, true
	case s.Flag(EndingDead):
		return EndingDead, true
	}
	return "", false
}

type actionRequest struct {
	Action string `json:"action"`
}
