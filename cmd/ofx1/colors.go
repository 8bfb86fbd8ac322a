package main

import (
	"strings"

	"github.com/signadot/ofx-sgml/sgml"

	"github.com/fatih/color"
)

type Colors struct {
	HeaderKey func(...any) string
	Sep       func(...any) string
	StartTag  func(...any) string
	EndTag    func(...any) string
}

func NewColors() *Colors {
	return &Colors{
		HeaderKey: color.RGB(196, 96, 16).SprintFunc(),
		Sep:       color.RGB(255, 0, 196).SprintFunc(),
		StartTag:  color.RGB(128, 168, 196).SprintFunc(),
		EndTag:    color.RGB(74, 92, 138).SprintFunc(),
	}
}

// Highlight colors the header keys and the tags of a rendered document.
func (c *Colors) Highlight(doc string) string {
	b := &strings.Builder{}
	body := doc
	if strings.HasPrefix(doc, "OFXHEADER:") {
		blank := sgml.LineSeparator + sgml.LineSeparator
		hdr, rest, ok := strings.Cut(doc, blank)
		if ok {
			for _, line := range strings.Split(hdr, sgml.LineSeparator) {
				key, val, _ := strings.Cut(line, ":")
				b.WriteString(c.HeaderKey(key))
				b.WriteString(c.Sep(":"))
				b.WriteString(val)
				b.WriteString(sgml.LineSeparator)
			}
			b.WriteString(sgml.LineSeparator)
			body = rest
		}
	}
	for {
		i := strings.IndexByte(body, '<')
		if i < 0 {
			break
		}
		j := strings.IndexByte(body[i:], '>')
		if j < 0 {
			break
		}
		b.WriteString(body[:i])
		tag := body[i : i+j+1]
		if strings.HasPrefix(tag, "</") {
			b.WriteString(c.EndTag(tag))
		} else {
			b.WriteString(c.StartTag(tag))
		}
		body = body[i+j+1:]
	}
	b.WriteString(body)
	return b.String()
}
