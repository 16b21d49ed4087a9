package display

import (
	"context"
	"fmt"
	"io"

	"github.com/vardovia/vardovia/internal/game"
)

// ConsoleOptions configures a Console.
type ConsoleOptions struct {
	// Width wraps narration; 0 disables wrapping.
	Width      int
	ShowStatus bool
	ShowImages bool
	// ResolveURL turns server-relative image paths into absolute URLs.
	ResolveURL func(string) string
}

// Console renders the game to a terminal. It is the translate.Sink and the
// presenter's status and image updater.
type Console struct {
	w         io.Writer
	opts      ConsoleOptions
	lastImage string
}

func NewConsole(w io.Writer, opts ConsoleOptions) *Console {
	return &Console{w: w, opts: opts}
}

// Show prints one message.
func (c *Console) Show(_ context.Context, text string, isUser bool) error {
	var rendered string
	if isUser {
		rendered = RenderUserMessage(text)
	} else {
		rendered = "\n" + RenderNarration(text, c.opts.Width) + "\n"
	}
	_, err := fmt.Fprintln(c.w, rendered)
	return err
}

// UpdateStatus prints the status panel.
func (c *Console) UpdateStatus(st *game.State) {
	if !c.opts.ShowStatus {
		return
	}
	_, _ = fmt.Fprintln(c.w, RenderStatus(st))
}

// UpdateImage prints the scene image URL when it changes. An empty URL
// forgets the current image.
func (c *Console) UpdateImage(url string) {
	if url == c.lastImage {
		return
	}
	c.lastImage = url
	if url == "" || !c.opts.ShowImages {
		return
	}
	if c.opts.ResolveURL != nil {
		url = c.opts.ResolveURL(url)
	}
	_, _ = fmt.Fprintln(c.w, RenderImage(url))
}
