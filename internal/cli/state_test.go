package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/vardovia/vardovia/internal/game"
)

func TestState_Panel(t *testing.T) {
	buf, _ := setupCLI(t)
	startGameServer(t, gameMux(nil))

	var logBuf bytes.Buffer
	stateCmd.SetContext(newDefaultContext(&logBuf))
	if err := stateCmd.RunE(stateCmd, nil); err != nil {
		t.Fatalf("state error: %v", err)
	}

	for _, want := range []string{"Basement", "21:40", "2 items", "wristwatch, crumpled note"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestState_Quiet(t *testing.T) {
	buf, _ := setupCLI(t)
	quiet = true
	startGameServer(t, gameMux(nil))

	var logBuf bytes.Buffer
	stateCmd.SetContext(newDefaultContext(&logBuf))
	if err := stateCmd.RunE(stateCmd, nil); err != nil {
		t.Fatalf("state error: %v", err)
	}

	if got := buf.String(); got != "Basement 21:40 health=90 danger=1\n" {
		t.Errorf("quiet output = %q", got)
	}
}

func TestState_JSON(t *testing.T) {
	buf, _ := setupCLI(t)
	jsonOutput = true
	startGameServer(t, gameMux(nil))

	var logBuf bytes.Buffer
	stateCmd.SetContext(newDefaultContext(&logBuf))
	if err := stateCmd.RunE(stateCmd, nil); err != nil {
		t.Fatalf("state error: %v", err)
	}

	var st game.State
	if err := json.Unmarshal(buf.Bytes(), &st); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if st.PlayerName != "Arsen Dvorak" || st.Health != 90 {
		t.Errorf("unexpected state: %+v", st)
	}
}

func TestState_ServerError(t *testing.T) {
	setupCLI(t)
	mux := http.NewServeMux()
	mux.HandleFunc("/api/state", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	startGameServer(t, mux)

	var logBuf bytes.Buffer
	stateCmd.SetContext(newDefaultContext(&logBuf))
	if err := stateCmd.RunE(stateCmd, nil); err == nil {
		t.Fatal("expected error")
	}
}
