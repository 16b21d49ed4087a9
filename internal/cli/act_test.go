package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vardovia/vardovia/internal/display"
)

func TestAct_Success(t *testing.T) {
	buf, _ := setupCLI(t)
	startGameServer(t, gameMux(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"narration":"Elena slips you a key.","state":{"location":"Infirmary","time":"23:10","health":80,"danger":3,"inventory":["key"]},"image_url":null}`))
	}))

	var logBuf bytes.Buffer
	actCmd.SetContext(newDefaultContext(&logBuf))
	if err := actCmd.RunE(actCmd, []string{"ask", "Elena", "for", "help"}); err != nil {
		t.Fatalf("act error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Elena slips you a key.") || !strings.Contains(output, "Infirmary") {
		t.Errorf("unexpected output:\n%s", output)
	}
}

func TestAct_FailureReturnsError(t *testing.T) {
	buf, _ := setupCLI(t)
	startGameServer(t, gameMux(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Bad input"}`))
	}))

	var logBuf bytes.Buffer
	actCmd.SetContext(newDefaultContext(&logBuf))
	err := actCmd.RunE(actCmd, []string{"???"})
	if err == nil || !strings.Contains(err.Error(), "ended in failure") {
		t.Fatalf("expected failure error, got %v", err)
	}
	if !strings.Contains(buf.String(), "Bad input") {
		t.Errorf("failure message not shown:\n%s", buf.String())
	}
}

func TestAct_NetworkErrorIsPresented(t *testing.T) {
	buf, _ := setupCLI(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	serverURL = srv.URL
	srv.Close()

	var logBuf bytes.Buffer
	actCmd.SetContext(newDefaultContext(&logBuf))
	err := actCmd.RunE(actCmd, []string{"look"})
	if err == nil || !strings.Contains(err.Error(), "ended in exception") {
		t.Fatalf("expected exception error, got %v", err)
	}
	output := strings.TrimSpace(buf.String())
	if output == "" {
		t.Fatal("expected an error message to be shown")
	}
	if strings.HasPrefix(output, "network error") {
		t.Errorf("exception prefix should be dropped, got %q", output)
	}
}

func TestAct_JSONEvents(t *testing.T) {
	buf, _ := setupCLI(t)
	jsonOutput = true
	startGameServer(t, gameMux(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"narration":"Viktor whispers a plan.","state":{"location":"Cell 4","time":"01:00","health":70,"danger":5},"image_url":"/static/output_2.png"}`))
	}))

	var logBuf bytes.Buffer
	actCmd.SetContext(newDefaultContext(&logBuf))
	if err := actCmd.RunE(actCmd, []string{"listen", "to", "Viktor"}); err != nil {
		t.Fatalf("act error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected message, status, image and outcome lines, got %d:\n%s", len(lines), buf.String())
	}

	var first display.EventJSON
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatal(err)
	}
	if first.Type != "message" || first.Text != "Viktor whispers a plan." {
		t.Errorf("unexpected first event: %+v", first)
	}

	var outcome display.OutcomeJSON
	if err := json.Unmarshal([]byte(lines[3]), &outcome); err != nil {
		t.Fatal(err)
	}
	if outcome.Outcome != "success" || outcome.State == nil || outcome.State.Location != "Cell 4" {
		t.Errorf("unexpected outcome: %+v", outcome)
	}
}
