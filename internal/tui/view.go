package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/typespeed/internal/typing"
)

const (
	fallbackWidth  = 60
	minContentSize = 20
	inputWidth     = 30
	maxResultRows  = 8
)

var (
	matchedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#73D13D"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	boxStyle         = lipgloss.NewStyle().
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	resultValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// View implements tea.Model.
func (s *screen) View() string {
	if !s.ready {
		return ""
	}
	snap := s.snap
	contentWidth := fallbackWidth
	if s.width > 0 {
		contentWidth = int(float64(s.width) * 0.70)
	}
	if contentWidth < minContentSize {
		contentWidth = minContentSize
	}
	// Borders and padding take four cells.
	inner := contentWidth - 4

	sections := []string{
		boxStyle.Width(contentWidth - 2).Render(renderWords(snap.Upcoming, inner)),
		lipgloss.JoinHorizontal(lipgloss.Top,
			boxStyle.Width(min(inputWidth, contentWidth/2)).Render(snap.Typed),
			boxStyle.Render(infoLine(snap)),
		),
	}
	s.bar.Width = contentWidth
	sections = append(sections, s.bar.ViewAs(snap.Progress))
	if snap.State == typing.StateCompleted {
		sections = append(sections, "", renderResults(snap, contentWidth))
	}
	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	s.help.Width = s.width
	footer := footerStyle.Render(s.help.View(keys.forState(snap.State)))
	if s.width == 0 || s.height < 3 {
		return content + "\n" + footer
	}
	body := lipgloss.Place(s.width, s.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(s.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func renderWords(words []typing.WordView, width int) string {
	if len(words) == 0 {
		return pendingStyle.Render("---")
	}
	styled := make([]styledWord, 0, len(words))
	for _, w := range words {
		styled = append(styled, styledWord{s: renderWord(w), width: runewidth.StringWidth(w.Text)})
	}
	return wrapWords(styled, width)
}

func renderWord(w typing.WordView) string {
	switch {
	case !w.Current:
		return pendingStyle.Render(w.Text)
	case w.Mistyped:
		return incorrectStyle.Render(w.Text)
	}
	runes := []rune(w.Text)
	var b strings.Builder
	if w.Matched > 0 {
		b.WriteString(matchedStyle.Render(string(runes[:w.Matched])))
	}
	if w.Matched < len(runes) {
		b.WriteString(currentWordStyle.Render(string(runes[w.Matched:])))
	}
	return b.String()
}

func infoLine(snap typing.Snapshot) string {
	switch snap.State {
	case typing.StateActive:
		return fmt.Sprintf("%ds | ~%d wpm", snap.Remaining, snap.LiveWPM)
	case typing.StateCompleted:
		if snap.Result == nil {
			return "0 wpm"
		}
		return fmt.Sprintf("%d wpm | %.1f%% accuracy", snap.Result.AdjustedWPM, snap.Result.Accuracy*100)
	default:
		return "---"
	}
}

func renderResults(snap typing.Snapshot, width int) string {
	var b strings.Builder
	if snap.Result != nil {
		r := snap.Result
		b.WriteString(resultValueStyle.Render(fmt.Sprintf("%d wpm", r.AdjustedWPM)))
		b.WriteString(pendingStyle.Render(fmt.Sprintf("  gross %.1f · %d correct · %d wrong", r.GrossWPM, r.CharsCorrect, r.CharsWrong)))
		b.WriteString("\n\n")
	}
	if len(snap.WordsTried) == 0 {
		b.WriteString(pendingStyle.Render("No words submitted."))
		return b.String()
	}
	b.WriteString(wordsTable(snap.WordsTried, snap.WordsEntered, width).View())
	return b.String()
}

func wordsTable(tried, entered []string, width int) table.Model {
	wordWidth := (width - 12) / 2
	if wordWidth < 6 {
		wordWidth = 6
	}
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Target", Width: wordWidth},
		{Title: "Typed", Width: wordWidth},
		{Title: "", Width: 2},
	}
	rows := make([]table.Row, 0, len(tried))
	for i := range tried {
		typed := ""
		if i < len(entered) {
			typed = entered[i]
		}
		mark := "✓"
		if typed != tried[i] {
			mark = "✗"
		}
		rows = append(rows, table.Row{strconv.Itoa(i + 1), tried[i], typed, mark})
	}
	styles := table.DefaultStyles()
	styles.Selected = styles.Cell
	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(min(len(rows), maxResultRows)+1),
		table.WithFocused(false),
		table.WithStyles(styles),
	)
}
