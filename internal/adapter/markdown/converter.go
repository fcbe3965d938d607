// Package markdown converts question bodies into the markdown dialect the
// forum renders.
package markdown

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/microcosm-cc/bluemonday"

	"leetcode-daily-thread/internal/domain/model"
	"leetcode-daily-thread/internal/domain/ports"
)

// Converter implements ports.MarkupConverter.
type Converter struct {
	baseURL  string
	policy   *bluemonday.Policy
	markdown *converter.Converter
}

var _ ports.MarkupConverter = (*Converter)(nil)

// New creates a Converter. Question links and relative URLs in the body are
// resolved against baseURL.
func New(baseURL string) *Converter {
	return &Converter{
		baseURL: strings.TrimRight(baseURL, "/"),
		policy:  bluemonday.UGCPolicy(),
		markdown: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// LinkLine returns the first line of every converted body.
func (c *Converter) LinkLine(linkPath string) string {
	return fmt.Sprintf("[Question link](%s%s)", c.baseURL, linkPath)
}

// Convert turns the HTML body into markdown headed by a question link line
// and a blank separator. Lines are trimmed and runs of blank lines collapse
// to one.
func (c *Converter) Convert(content model.ChallengeContent, linkPath string) (model.ConvertedBody, error) {
	clean := c.policy.Sanitize(string(content))

	md, err := c.markdown.ConvertString(clean, converter.WithDomain(c.baseURL))
	if err != nil {
		return "", fmt.Errorf("convert html to markdown: %w", err)
	}

	return model.ConvertedBody(strings.Join(normalize(c.LinkLine(linkPath), md), "\n")), nil
}

func normalize(header, md string) []string {
	lines := []string{header, ""}
	for _, line := range strings.Split(md, "\n") {
		line = strings.TrimSpace(line)
		if line == "" && lines[len(lines)-1] == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
