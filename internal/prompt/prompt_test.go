package prompt

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"
)

func TestMockPrompter_Input(t *testing.T) {
	m := &Mock{
		InputFunc: func(cfg InputConfig) (string, error) {
			return "open the door", nil
		},
	}

	result, err := m.Input(InputConfig{Title: "What do you want to do?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "open the door" {
		t.Errorf("got %q, want %q", result, "open the door")
	}
	if len(m.InputCalls) != 1 || m.InputCalls[0].Title != "What do you want to do?" {
		t.Errorf("input calls not tracked: %+v", m.InputCalls)
	}
}

func TestMockPrompter_Confirm(t *testing.T) {
	m := &Mock{
		ConfirmFunc: func(cfg ConfirmConfig) (bool, error) {
			return true, nil
		},
	}

	result, err := m.Confirm(ConfirmConfig{Title: "Are you sure?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result {
		t.Error("got false, want true")
	}
}

func TestMockPrompter_NilFuncsReturnZeroValues(t *testing.T) {
	m := &Mock{}

	if v, err := m.Input(InputConfig{}); v != "" || err != nil {
		t.Errorf("Input() = (%q, %v)", v, err)
	}
	if v, err := m.Confirm(ConfirmConfig{}); v || err != nil {
		t.Errorf("Confirm() = (%v, %v)", v, err)
	}
}

func TestInputs_ReplaysThenQuits(t *testing.T) {
	next := Inputs("look", "wait")

	for _, want := range []string{"look", "wait", "quit", "quit"} {
		got, err := next(InputConfig{})
		if err != nil || got != want {
			t.Errorf("next() = (%q, %v), want %q", got, err, want)
		}
	}
}

func TestIsAborted(t *testing.T) {
	if !IsAborted(huh.ErrUserAborted) {
		t.Error("expected huh.ErrUserAborted to count as aborted")
	}
	if !IsAborted(fmt.Errorf("reading action: %w", huh.ErrUserAborted)) {
		t.Error("expected wrapped abort to count as aborted")
	}
	if IsAborted(errors.New("boom")) {
		t.Error("unrelated error reported as aborted")
	}
}

func TestValidateAction(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"normal", "search the room", false},
		{"empty", "", true},
		{"spaces", "   ", true},
		{"at limit", strings.Repeat("a", MaxActionLength), false},
		{"too long", strings.Repeat("a", MaxActionLength+1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAction(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateAction() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
