package display

import (
	"context"
	"encoding/json"
	"io"

	"github.com/vardovia/vardovia/internal/game"
)

// OutputJSON writes pretty-printed JSON to the given writer.
func OutputJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// EventJSON is one line of --json play output.
type EventJSON struct {
	Type  string      `json:"type"`
	Text  string      `json:"text,omitempty"`
	User  bool        `json:"user,omitempty"`
	State *game.State `json:"state,omitempty"`
	URL   *string     `json:"url,omitempty"`
}

// OutcomeJSON is the summary printed by `act --json`.
type OutcomeJSON struct {
	Outcome string      `json:"outcome"`
	Message string      `json:"message,omitempty"`
	State   *game.State `json:"state,omitempty"`
}

// ConfigShowJSON represents the config show JSON output.
type ConfigShowJSON struct {
	Server    ConfigServerJSON    `json:"server"`
	Display   ConfigDisplayJSON   `json:"display"`
	Translate ConfigTranslateJSON `json:"translate"`
	Path      string              `json:"path"`
}

type ConfigServerJSON struct {
	URL     string  `json:"url"`
	Timeout float64 `json:"timeout"`
}

type ConfigDisplayJSON struct {
	ShowStatus bool `json:"show_status"`
	ShowImages bool `json:"show_images"`
	Colors     bool `json:"colors"`
	WrapWidth  int  `json:"wrap_width"`
}

type ConfigTranslateJSON struct {
	Glossary string `json:"glossary"`
}

// ActionResultJSON is a generic success/message response used by
// config reset and similar operations.
type ActionResultJSON struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Reset   bool   `json:"reset,omitempty"`
}

// JSONConsole emits one compact JSON event per line. It implements the same
// interfaces as Console.
type JSONConsole struct {
	enc *json.Encoder
}

func NewJSONConsole(w io.Writer) *JSONConsole {
	return &JSONConsole{enc: json.NewEncoder(w)}
}

func (c *JSONConsole) Show(_ context.Context, text string, isUser bool) error {
	return c.enc.Encode(EventJSON{Type: "message", Text: text, User: isUser})
}

func (c *JSONConsole) UpdateStatus(st *game.State) {
	_ = c.enc.Encode(EventJSON{Type: "status", State: st})
}

func (c *JSONConsole) UpdateImage(url string) {
	_ = c.enc.Encode(EventJSON{Type: "image", URL: &url})
}

// Outcome writes the closing summary of a single action.
func (c *JSONConsole) Outcome(o OutcomeJSON) error {
	return c.enc.Encode(o)
}
