// Package translate is the message pipeline between the presenter and the
// screen: game-master text is translated, then shown.
package translate

import (
	"context"
	"fmt"
)

// Translator rewrites a message into the player's language.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Identity leaves text unchanged.
type Identity struct{}

func (Identity) Translate(_ context.Context, text string) (string, error) {
	return text, nil
}

// Sink shows a finished message.
type Sink interface {
	Show(ctx context.Context, text string, isUser bool) error
}

// Pipeline translates game-master messages and forwards every message to
// Sink. Player messages are shown as typed.
type Pipeline struct {
	Translator Translator
	Sink       Sink
}

// AddMessage implements presenter.Messenger.
func (p *Pipeline) AddMessage(ctx context.Context, text string, isUser bool) error {
	if !isUser && p.Translator != nil {
		translated, err := p.Translator.Translate(ctx, text)
		if err != nil {
			return fmt.Errorf("translate: %w", err)
		}
		text = translated
	}
	return p.Sink.Show(ctx, text, isUser)
}
