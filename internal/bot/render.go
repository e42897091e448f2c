package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hydrohomies/waterbot/internal/models"
)

const leaderboardLimit = 10

// renderLeaderboards renders the daily block followed by the all-time
// block, each capped at the top ten entries with a fixed fallback line
// when empty.
func renderLeaderboards(daily, allTime []models.LeaderboardEntry) string {
	dailyBlock := renderBoard("**🏆 Daily Leaderboard:**", daily, "No entries so far today...")
	allTimeBlock := renderBoard("**🏆 All Time Leaderboard:**", allTime, "No entries at all.")
	return dailyBlock + "\n" + allTimeBlock
}

func renderBoard(header string, entries []models.LeaderboardEntry, empty string) string {
	if len(entries) == 0 {
		return header + "\n" + empty
	}
	if len(entries) > leaderboardLimit {
		entries = entries[:leaderboardLimit]
	}
	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = fmt.Sprintf("%d. %s: %s", i+1, entry.UserKey, formatPoints(entry.TotalPoints))
	}
	return header + "\n" + strings.Join(lines, "\n")
}

func renderToday(name string, points float64) string {
	return fmt.Sprintf("💧 %s, today you have %s points.", name, formatPoints(points))
}

func renderLogged(oz, points float64) string {
	return fmt.Sprintf("Added %s oz → +%s points!", formatOz(oz), formatPoints(points))
}

// formatOz renders an ounce amount with at least one decimal place, so a
// whole number reads "60.0" and a fraction keeps its precision ("60.5").
func formatOz(oz float64) string {
	s := strconv.FormatFloat(oz, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// formatPoints renders a point value minimally: "0", "0.5", "-1.5", "2".
func formatPoints(points float64) string {
	return strconv.FormatFloat(points, 'f', -1, 64)
}
