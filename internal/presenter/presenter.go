// Package presenter turns a finished game call into what the player sees:
// narration, a status update and a scene image on success, or a single
// cleaned-up error message otherwise.
package presenter

import (
	"context"

	"github.com/vardovia/vardovia/internal/game"
	"github.com/vardovia/vardovia/internal/logging"
)

// Messenger shows a message to the player, translating it first if needed.
type Messenger interface {
	AddMessage(ctx context.Context, text string, isUser bool) error
}

// StatusUpdater receives the latest game state.
type StatusUpdater interface {
	UpdateStatus(state *game.State)
}

// ImageUpdater receives the scene image URL; "" clears it.
type ImageUpdater interface {
	UpdateImage(url string)
}

// Loader is the in-flight indicator shown while a call runs.
type Loader interface {
	Hide()
}

// Call performs one request against the game server.
type Call func(ctx context.Context) (*game.Response, error)

// Kind says which path a presentation took.
type Kind int

const (
	Success Kind = iota
	Failure
	Exception
)

func (k Kind) String() string {
	switch k {
	case Success:
		return "success"
	case Failure:
		return "failure"
	case Exception:
		return "exception"
	default:
		return "unknown"
	}
}

// Outcome records what was shown.
type Outcome struct {
	Kind    Kind
	Message string
	State   *game.State
}

// Presenter routes call results to its collaborators. Status, Image and
// Loading may be nil.
type Presenter struct {
	Messages Messenger
	Status   StatusUpdater
	Image    ImageUpdater
	Loading  Loader
}

// Present runs call and shows its result. It never fails: errors from the
// call, or from showing a success or failure, are presented as exceptions.
// The loading indicator is hidden exactly once however Present returns.
func (p *Presenter) Present(ctx context.Context, call Call) Outcome {
	defer p.hideLoading()

	resp, err := call(ctx)
	if err == nil {
		var out Outcome
		if out, err = p.presentResponse(ctx, resp); err == nil {
			return out
		}
	}
	return p.presentException(ctx, err)
}

func (p *Presenter) presentResponse(ctx context.Context, resp *game.Response) (Outcome, error) {
	if resp == nil {
		return Outcome{}, errNoResponse
	}

	if !resp.OK {
		msg := FailureMessage(resp.Data)
		logging.FromContext(ctx).Debug("presenting failure", "status", resp.StatusCode, "message", msg)
		if err := p.Messages.AddMessage(ctx, msg, false); err != nil {
			return Outcome{}, err
		}
		return Outcome{Kind: Failure, Message: msg}, nil
	}

	data := resp.Data
	if data.Narration != "" {
		if err := p.Messages.AddMessage(ctx, data.Narration, false); err != nil {
			return Outcome{}, err
		}
	}
	if data.State != nil && p.Status != nil {
		p.Status.UpdateStatus(data.State)
	}
	if p.Image != nil {
		p.Image.UpdateImage(data.Image())
	}
	return Outcome{Kind: Success, Message: data.Narration, State: data.State}, nil
}

func (p *Presenter) presentException(ctx context.Context, err error) Outcome {
	logger := logging.FromContext(ctx)
	logger.Debug("presenting exception", "err", err)

	msg := ExceptionMessage(err)
	if addErr := p.Messages.AddMessage(ctx, msg, false); addErr != nil {
		logger.Warn("could not show error message", "message", msg, "err", addErr)
	}
	return Outcome{Kind: Exception, Message: msg}
}

func (p *Presenter) hideLoading() {
	if p.Loading != nil {
		p.Loading.Hide()
	}
}
