// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"time"

	"github.com/verte-zerg/typespeed/internal/model"
)

// CharsPerWord is the conventional word length used for WPM.
const CharsPerWord = 5

// LiveWPM estimates words per minute while a round is running, scaling the
// correct characters to a full minute of the round window. Integer
// arithmetic: a 30s window gives correct/5*2.
func LiveWPM(correct int, window time.Duration) int {
	secs := int(window / time.Second)
	if secs <= 0 || correct <= 0 {
		return 0
	}
	return correct / CharsPerWord * 60 / secs
}

// Remaining returns the whole seconds left in a round, never negative.
func Remaining(window, elapsed time.Duration) int {
	left := int(window/time.Second) - int(elapsed/time.Second)
	if left < 0 {
		return 0
	}
	return left
}

// RoundMetrics computes accuracy, gross WPM and accuracy-adjusted WPM for a
// finished round. Nothing typed yields zeros.
func RoundMetrics(correct, wrong int, window time.Duration) (accuracy, gross float64, adjusted int) {
	total := correct + wrong
	minutes := window.Minutes()
	if total <= 0 || minutes <= 0 {
		return 0, 0, 0
	}
	accuracy = float64(correct) / float64(total)
	gross = float64(total) / CharsPerWord / minutes
	// gross*accuracy with the total cancelled out.
	adjusted = int(float64(correct) / CharsPerWord / minutes)
	return accuracy, gross, adjusted
}

// NewRoundResult fills a RoundResult from raw counters.
func NewRoundResult(startedAt, endedAt time.Time, window time.Duration, correct, wrong, words int) model.RoundResult {
	acc, gross, adjusted := RoundMetrics(correct, wrong, window)
	return model.RoundResult{
		StartedAt:    startedAt,
		EndedAt:      endedAt,
		Duration:     window,
		CharsCorrect: correct,
		CharsWrong:   wrong,
		Words:        words,
		Accuracy:     acc,
		GrossWPM:     gross,
		AdjustedWPM:  adjusted,
	}
}

// RenderSummary prints a table of rounds completed in this session.
func RenderSummary(w io.Writer, results []model.RoundResult) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No completed rounds.")
		return err
	}
	best := 0
	var totalAcc float64
	rows := make([][]string, 0, len(results))
	for i, r := range results {
		if r.AdjustedWPM > best {
			best = r.AdjustedWPM
		}
		totalAcc += r.Accuracy
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			r.StartedAt.Format("15:04:05"),
			fmt.Sprintf("%d", r.AdjustedWPM),
			fmt.Sprintf("%.1f", r.GrossWPM),
			fmt.Sprintf("%.2f%%", r.Accuracy*100),
			fmt.Sprintf("%d", r.CharsCorrect),
			fmt.Sprintf("%d", r.CharsWrong),
			fmt.Sprintf("%d", r.Words),
		})
	}

	if _, err := fmt.Fprintln(w, "Rounds"); err != nil {
		return err
	}
	headers := []string{"#", "Started", "WPM", "Gross", "Accuracy", "Correct", "Wrong", "Words"}
	rightAlign := map[int]bool{0: true, 2: true, 3: true, 4: true, 5: true, 6: true, 7: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best WPM: %d\n", best); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg Accuracy: %.2f%%\n", totalAcc/float64(len(results))*100); err != nil {
		return err
	}
	return nil
}
