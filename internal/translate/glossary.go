package translate

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// glossaryFile is the on-disk shape of a phrase table:
//
//	lang: de
//	phrases:
//	  "An unknown error occurred": "Ein unbekannter Fehler ist aufgetreten"
type glossaryFile struct {
	Lang    string            `yaml:"lang"`
	Phrases map[string]string `yaml:"phrases"`
}

// Glossary translates by phrase substitution. A phrase only matches whole
// words, so "cell" leaves "cellar" alone. When phrases overlap, the longest
// one wins.
type Glossary struct {
	Lang    string
	phrases map[string]string
	// sources holds the phrase keys, longest first.
	sources []string
}

// NewGlossary builds a Glossary from a phrase table. Empty source phrases
// are ignored.
func NewGlossary(lang string, phrases map[string]string) *Glossary {
	sources := make([]string, 0, len(phrases))
	for src := range phrases {
		if src != "" {
			sources = append(sources, src)
		}
	}
	sort.Slice(sources, func(i, j int) bool {
		if len(sources[i]) != len(sources[j]) {
			return len(sources[i]) > len(sources[j])
		}
		return sources[i] < sources[j]
	})
	return &Glossary{Lang: lang, phrases: phrases, sources: sources}
}

// LoadGlossary reads a YAML phrase table from path.
func LoadGlossary(path string) (*Glossary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading glossary: %w", err)
	}
	var f glossaryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing glossary %s: %w", path, err)
	}
	return NewGlossary(f.Lang, f.Phrases), nil
}

// Len returns the number of phrases in the glossary.
func (g *Glossary) Len() int { return len(g.sources) }

func (g *Glossary) Translate(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if len(g.sources) == 0 {
		return text, nil
	}

	var b strings.Builder
	b.Grow(len(text))
	prev := ' '
	for i := 0; i < len(text); {
		if src, ok := g.matchAt(text, i, prev); ok {
			b.WriteString(g.phrases[src])
			prev, _ = utf8.DecodeLastRuneInString(src)
			i += len(src)
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		b.WriteString(text[i : i+size])
		prev = r
		i += size
	}
	return b.String(), nil
}

// matchAt returns the longest phrase starting at text[i] that does not begin
// or end in the middle of a word. prev is the rune before i.
func (g *Glossary) matchAt(text string, i int, prev rune) (string, bool) {
	rest := text[i:]
	for _, src := range g.sources {
		if !strings.HasPrefix(rest, src) {
			continue
		}
		first, _ := utf8.DecodeRuneInString(src)
		if isWordRune(first) && isWordRune(prev) {
			continue
		}
		last, _ := utf8.DecodeLastRuneInString(src)
		next, _ := utf8.DecodeRuneInString(rest[len(src):])
		if isWordRune(last) && isWordRune(next) {
			continue
		}
		return src, true
	}
	return "", false
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
