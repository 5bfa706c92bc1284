// Package tui provides the Bubble Tea typing interface.
package tui

import "strings"

type styledWord struct {
	s     string
	width int
}

// wrapWords lays styled words out in lines no wider than width, one space
// apart. A word wider than width gets a line of its own.
func wrapWords(words []styledWord, width int) string {
	var out strings.Builder
	lineWidth := 0
	for i, w := range words {
		if i > 0 {
			if width > 0 && lineWidth+1+w.width > width {
				out.WriteRune('\n')
				lineWidth = 0
			} else {
				out.WriteRune(' ')
				lineWidth++
			}
		}
		out.WriteString(w.s)
		lineWidth += w.width
	}
	return out.String()
}
