package cli

import (
	"context"
	"os"
	"strings"

	"github.com/vardovia/vardovia/internal/config"
	"github.com/vardovia/vardovia/internal/display"
	"github.com/vardovia/vardovia/internal/game"
	"github.com/vardovia/vardovia/internal/httpclient"
	"github.com/vardovia/vardovia/internal/logging"
	"github.com/vardovia/vardovia/internal/presenter"
	"github.com/vardovia/vardovia/internal/spinner"
	"github.com/vardovia/vardovia/internal/translate"
)

// session wires one game client to the presenter's collaborators for the
// lifetime of a command.
type session struct {
	client      *game.Client
	messages    *translate.Pipeline
	sink        translate.Sink
	status      presenter.StatusUpdater
	image       presenter.ImageUpdater
	events      *display.JSONConsole
	showSpinner bool
}

func newSession(ctx context.Context) *session {
	cfg := config.Get()

	base := cfg.ServerURL()
	if s := strings.TrimSpace(serverURL); s != "" {
		base = s
	}
	client := game.NewClient(base, httpclient.NewFromConfig(cfg.Server.Timeout))

	s := &session{
		client:      client,
		showSpinner: spinner.ShouldShow(quiet, jsonOutput, !isTerminal()),
	}

	var sink translate.Sink
	if jsonOutput {
		jc := display.NewJSONConsole(outWriter)
		sink, s.status, s.image, s.events = jc, jc, jc, jc
	} else {
		width := cfg.Display.WrapWidth
		if isTerminal() {
			width = display.WrapWidth(cfg.Display.WrapWidth)
		}
		c := display.NewConsole(outWriter, display.ConsoleOptions{
			Width:      width,
			ShowStatus: cfg.Display.ShowStatus && !quiet,
			ShowImages: cfg.Display.ShowImages && !quiet,
			ResolveURL: client.ResolveURL,
		})
		sink, s.status, s.image = c, c, c
	}

	s.sink = sink
	s.messages = &translate.Pipeline{Translator: loadTranslator(ctx, cfg), Sink: sink}
	return s
}

// loadTranslator returns the configured glossary, the default glossary file
// when one exists, or the identity translator.
func loadTranslator(ctx context.Context, cfg config.Config) translate.Translator {
	logger := logging.FromContext(ctx)

	path := cfg.Translate.Glossary
	if path == "" {
		if _, err := os.Stat(config.GlossaryFile()); err != nil {
			return translate.Identity{}
		}
		path = config.GlossaryFile()
	}

	g, err := translate.LoadGlossary(path)
	if err != nil {
		logger.Warn("glossary unavailable, showing untranslated text", "err", err)
		return translate.Identity{}
	}
	logger.Debug("glossary loaded", "path", path, "lang", g.Lang, "phrases", g.Len())
	return g
}

// turn sends one action and presents the reply.
func (s *session) turn(ctx context.Context, action string) presenter.Outcome {
	ctx, cancel := context.WithCancel(logging.With(ctx, "action", action))
	defer cancel()

	loading := s.startLoading(cancel)
	out := &clearFirst{loading: loading, sink: s.sink, status: s.status, image: s.image}
	p := &presenter.Presenter{
		Messages: &translate.Pipeline{Translator: s.messages.Translator, Sink: out},
		Status:   out,
		Image:    out,
		Loading:  loading,
	}
	return p.Present(ctx, func(ctx context.Context) (*game.Response, error) {
		return s.client.Act(ctx, action)
	})
}

// clearFirst takes the spinner down before anything is written for a turn,
// so its last frame never lingers above the reply. The spinner's Hide is
// idempotent, so the presenter's own Hide afterwards is a no-op.
type clearFirst struct {
	loading spinner.Hider
	sink    translate.Sink
	status  presenter.StatusUpdater
	image   presenter.ImageUpdater
}

func (c *clearFirst) Show(ctx context.Context, text string, isUser bool) error {
	c.loading.Hide()
	return c.sink.Show(ctx, text, isUser)
}

func (c *clearFirst) UpdateStatus(st *game.State) {
	c.loading.Hide()
	c.status.UpdateStatus(st)
}

func (c *clearFirst) UpdateImage(url string) {
	c.loading.Hide()
	c.image.UpdateImage(url)
}

func (s *session) startLoading(cancel context.CancelFunc) spinner.Hider {
	if !s.showSpinner {
		return spinner.Noop{}
	}
	return spinner.Start(spinnerWriter, spinner.DefaultTitle, cancel)
}
