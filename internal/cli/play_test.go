package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"

	"github.com/vardovia/vardovia/internal/prompt"
)

func TestIsQuit(t *testing.T) {
	for _, in := range []string{"quit", "EXIT", " q "} {
		if !isQuit(in) {
			t.Errorf("isQuit(%q) = false", in)
		}
	}
	for _, in := range []string{"", "quiet", "open the door"} {
		if isQuit(in) {
			t.Errorf("isQuit(%q) = true", in)
		}
	}
}

func TestPlay_SuccessfulTurnThenQuit(t *testing.T) {
	buf, _ := setupCLI(t)
	var actions []string
	startGameServer(t, gameMux(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Action string `json:"action"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		actions = append(actions, req.Action)
		_, _ = w.Write([]byte(`{"narration":"Under the cot you find a bent nail.","state":{"location":"Basement","time":"21:45","health":90,"danger":2,"inventory":["wristwatch","bent nail"]},"image_url":"/static/output_1.png"}`))
	}))
	mock := &prompt.Mock{InputFunc: prompt.Inputs("search the room")}
	useMockPrompter(t, mock)

	var logBuf bytes.Buffer
	playCmd.SetContext(newDefaultContext(&logBuf))
	if err := playCmd.RunE(playCmd, nil); err != nil {
		t.Fatalf("play error: %v", err)
	}

	if len(actions) != 1 || actions[0] != "search the room" {
		t.Errorf("server saw actions %v", actions)
	}
	if len(mock.InputCalls) != 2 {
		t.Errorf("expected 2 prompts (action, quit), got %d", len(mock.InputCalls))
	}

	output := buf.String()
	for _, want := range []string{
		"ESCAPE FROM VARDOVIA",
		"> search the room",
		"Under the cot you find a bent nail.",
		"21:45",
		"Scene image: " + serverURL + "/static/output_1.png",
		"Thanks for playing!",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestPlay_FailureMessageIsCleanedAndLoopContinues(t *testing.T) {
	buf, _ := setupCLI(t)
	startGameServer(t, gameMux(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Error processing your request: model-error: ERROR_JSON: \"You cannot fly.\""}`))
	}))
	mock := &prompt.Mock{InputFunc: prompt.Inputs("fly over the wall", "wait")}
	useMockPrompter(t, mock)

	var logBuf bytes.Buffer
	playCmd.SetContext(newDefaultContext(&logBuf))
	if err := playCmd.RunE(playCmd, nil); err != nil {
		t.Fatalf("play error: %v", err)
	}

	output := buf.String()
	if strings.Count(output, "You cannot fly.") != 2 {
		t.Errorf("expected the cleaned message once per turn:\n%s", output)
	}
	if strings.Contains(output, "ERROR_JSON") || strings.Contains(output, `"You cannot fly."`) {
		t.Errorf("marker or quotes leaked into output:\n%s", output)
	}
	if len(mock.InputCalls) != 3 {
		t.Errorf("expected 3 prompts, got %d", len(mock.InputCalls))
	}
}

func TestPlay_EndsOnEscape(t *testing.T) {
	buf, _ := setupCLI(t)
	startGameServer(t, gameMux(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"narration":"The border guard waves you through.","state":{"location":"Border","flags":{"escaped":true}},"image_url":null}`))
	}))
	mock := &prompt.Mock{InputFunc: prompt.Inputs("show the forged papers", "never asked")}
	useMockPrompter(t, mock)

	var logBuf bytes.Buffer
	playCmd.SetContext(newDefaultContext(&logBuf))
	if err := playCmd.RunE(playCmd, nil); err != nil {
		t.Fatalf("play error: %v", err)
	}

	if len(mock.InputCalls) != 1 {
		t.Errorf("expected session to end after one turn, got %d prompts", len(mock.InputCalls))
	}
	if !strings.Contains(buf.String(), "You have escaped Vardovia.") {
		t.Errorf("missing ending:\n%s", buf.String())
	}
}

func TestPlay_AbortedPrompt(t *testing.T) {
	buf, _ := setupCLI(t)
	startGameServer(t, gameMux(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no action should be sent")
	}))
	useMockPrompter(t, &prompt.Mock{InputFunc: func(prompt.InputConfig) (string, error) {
		return "", huh.ErrUserAborted
	}})

	var logBuf bytes.Buffer
	playCmd.SetContext(newDefaultContext(&logBuf))
	if err := playCmd.RunE(playCmd, nil); err != nil {
		t.Fatalf("play error: %v", err)
	}
	if !strings.Contains(buf.String(), "Session interrupted. Goodbye.") {
		t.Errorf("missing goodbye:\n%s", buf.String())
	}
}

func TestPlay_StateUnavailableIsLogged(t *testing.T) {
	setupCLI(t)
	mux := http.NewServeMux()
	mux.HandleFunc("/api/state", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	startGameServer(t, mux)
	useMockPrompter(t, &prompt.Mock{InputFunc: prompt.Inputs()})

	var logBuf bytes.Buffer
	playCmd.SetContext(newDefaultContext(&logBuf))
	if err := playCmd.RunE(playCmd, nil); err != nil {
		t.Fatalf("play error: %v", err)
	}
	if !strings.Contains(logBuf.String(), "could not load game state") {
		t.Errorf("expected warning in logs, got %q", logBuf.String())
	}
}

func TestPlay_GlossaryTranslatesNarration(t *testing.T) {
	buf, dir := setupCLI(t)
	glossary := "lang: de\nphrases:\n  guard: Wächter\n"
	if err := os.WriteFile(filepath.Join(dir, "glossary.yaml"), []byte(glossary), 0o644); err != nil {
		t.Fatal(err)
	}
	startGameServer(t, gameMux(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"narration":"The guard yawns.","image_url":null}`))
	}))
	useMockPrompter(t, &prompt.Mock{InputFunc: prompt.Inputs("talk to the guard")})

	var logBuf bytes.Buffer
	playCmd.SetContext(newVerboseContext(&logBuf))
	if err := playCmd.RunE(playCmd, nil); err != nil {
		t.Fatalf("play error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "The Wächter yawns.") {
		t.Errorf("narration not translated:\n%s", output)
	}
	if !strings.Contains(output, "> talk to the guard") {
		t.Errorf("player echo should stay untranslated:\n%s", output)
	}
	if !strings.Contains(logBuf.String(), "glossary loaded") {
		t.Errorf("expected glossary debug log, got %q", logBuf.String())
	}
}
