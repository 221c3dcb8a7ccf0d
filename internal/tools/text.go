package tools

import (
	"log"

	"LocalPaint/internal/gesture"
)

// text asks for a string and writes it at the press position. It never
// tracks the drag.
func text(ev gesture.Event, cx *Context, _ gesture.EndFunc) {
	if cx.Prompter == nil {
		return
	}
	pos := cx.Pos(ev)
	cx.Prompter.Prompt("Text:", "", func(s string) {
		if s == "" {
			return
		}
		if err := cx.Canvas.FillText(s, float64(pos.X), float64(pos.Y)); err != nil {
			log.Printf("[TEXT] %v", err)
		}
	})
}
