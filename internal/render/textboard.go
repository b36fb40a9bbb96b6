package render

import (
	"strings"

	mb "github.com/battledinghy/dinghy-backend/models/battleship"
)

const (
	emojiWater  = "🟦"
	emojiMiss   = "⭕️"
	emojiHit    = "💥"
	emojiDinghy = "🚤"

	legend = "Legend: 🟦 = water   ⭕️ = miss   💥 = hit   🚤 = dinghy"
)

var columnHeaders = [mb.GridSize]string{"1️⃣", "2️⃣", "3️⃣", "4️⃣", "5️⃣", "6️⃣"}

const rowLabels = "ABCDEF"

// Board renders a grid as a fenced emoji block ready to post. With
// revealShips false, untouched ship segments draw as water so a player
// never sees the opponent's fleet; hits and misses always show.
func Board(grid mb.Grid, title string, revealShips bool) string {
	var b strings.Builder

	b.WriteString("```\n")
	b.WriteString(title)
	b.WriteString("\n  ")
	for _, header := range columnHeaders {
		b.WriteString(header)
	}
	b.WriteByte('\n')

	for i, row := range grid {
		b.WriteByte(rowLabels[i])
		b.WriteByte(' ')
		for _, cell := range row {
			b.WriteString(cellEmoji(cell, revealShips))
		}
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(legend)
	b.WriteString("\n```")

	return b.String()
}

func cellEmoji(cell int, revealShips bool) string {
	switch {
	case cell == mb.CellMiss:
		return emojiMiss
	case cell >= mb.CellMiss+1: // hit markers are 12-14
		return emojiHit
	case cell == mb.CellWater:
		return emojiWater
	default: // untouched ship segment
		if revealShips {
			return emojiDinghy
		}
		return emojiWater
	}
}
