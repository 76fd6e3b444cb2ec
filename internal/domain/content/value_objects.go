package content

import (
	"strings"
	"unicode/utf8"

	"github.com/gosimple/slug"
)

const (
	MaxTitleLength = 200
	MaxBodyLength  = 100_000
)

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Title{}, ErrEmptyTitle
	}
	if utf8.RuneCountInString(t) > MaxTitleLength {
		return Title{}, ErrTitleTooLong
	}
	return Title{value: t}, nil
}

func (t Title) String() string { return t.value }

// Slug derives the URL slug. Titles made only of symbols fall back to "untitled".
func (t Title) Slug() string {
	s := slug.Make(t.value)
	if s == "" {
		return "untitled"
	}
	return s
}

type Body struct {
	text string
}

func NewBody(s string) (Body, error) {
	if len(s) > MaxBodyLength {
		return Body{}, ErrBodyTooLong
	}
	return Body{text: s}, nil
}

func (b Body) String() string { return b.text }
