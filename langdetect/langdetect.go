// Package langdetect adapts an ssipgo.Client to speak multilingual text by
// switching the connection's LANGUAGE setting between runs of
// same-language lines.
//
// The upstream Rust crate this module is modeled on leaves its
// multilingual helper as a stub backed by a third-party statistical
// language-detection model (lingua). Nothing in this codebase's example
// corpus carries an equivalent detector, so language tagging here is
// matched against a caller-supplied tag set using
// golang.org/x/text/language's BCP 47 matcher instead of reimplementing a
// statistical model from scratch.
package langdetect

import (
	"context"

	"golang.org/x/text/language"

	"github.com/ssipgo/ssipgo/ssip"
	"github.com/ssipgo/ssipgo/ssipgo"
)

// TaggedLine is one line of text paired with its BCP 47 language tag
// (e.g. "en", "fr-CA").
type TaggedLine struct {
	Text string
	Tag  language.Tag
}

// Detector matches a line's declared tag against a fixed set of languages
// the caller has configured voices for, picking the closest supported
// match (e.g. "en-GB" input matches a configured "en" voice).
type Detector struct {
	matcher    language.Matcher
	supported  []language.Tag
	defaultTag language.Tag
}

// NewDetector builds a Detector over the given supported languages; the
// first tag is used as the fallback when a line's tag matches nothing
// closely.
func NewDetector(supported ...language.Tag) *Detector {
	return &Detector{
		matcher:    language.NewMatcher(supported),
		supported:  supported,
		defaultTag: supported[0],
	}
}

// Match returns the supported tag closest to want.
func (d *Detector) Match(want language.Tag) language.Tag {
	_, index, _ := d.matcher.Match(want)
	if index < 0 || index >= len(d.supported) {
		return d.defaultTag
	}
	return d.supported[index]
}

// SendLinesMultilingual speaks each run of consecutive lines with the same
// matched tag as its own SPEAK block, setting the client's active language
// (via SET self LANGUAGE) before each run. It returns the message id of the
// final queued segment.
func SendLinesMultilingual(ctx context.Context, c *ssipgo.Client, d *Detector, lines []TaggedLine) (ssip.MessageID, error) {
	var lastID ssip.MessageID
	var current language.Tag
	var haveCurrent bool
	var run []string

	flush := func() error {
		if len(run) == 0 {
			return nil
		}
		id, err := c.Speak(ctx, joinLines(run))
		if err != nil {
			return err
		}
		lastID = id
		run = run[:0]
		return nil
	}

	for _, line := range lines {
		tag := d.Match(line.Tag)
		if !haveCurrent || tag != current {
			if err := flush(); err != nil {
				return 0, err
			}
			base, _ := tag.Base()
			if err := c.SetLanguage(ssip.CurrentClient(), base.String()); err != nil {
				return 0, err
			}
			current = tag
			haveCurrent = true
		}
		run = append(run, line.Text)
	}
	if err := flush(); err != nil {
		return 0, err
	}
	return lastID, nil
}

func joinLines(lines []string) string {
	out := lines[0]
	for _, l := range lines[1:] {
		out += "\n" + l
	}
	return out
}
