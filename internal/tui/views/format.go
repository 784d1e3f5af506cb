package views

import (
	"fmt"
	"time"

	"github.com/matheus3301/whatschat/internal/model"
)

func formatTimestamp(ms int64) string {
	if ms == 0 {
		return ""
	}
	t := time.UnixMilli(ms)
	now := time.Now()
	if t.Year() == now.Year() && t.YearDay() == now.YearDay() {
		return t.Format("15:04")
	}
	return t.Format("01/02")
}

func formatDuration(sec int) string {
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}

// ticks renders the status marks shown next to outgoing messages.
func ticks(status model.MessageStatus) string {
	switch status {
	case model.StatusSent:
		return "[gray]✓[-]"
	case model.StatusDelivered:
		return "[gray]✓✓[-]"
	case model.StatusRead:
		return "[blue]✓✓[-]"
	default:
		return ""
	}
}
