package ui

import "strings"

// truncate shortens a string to the given limit, adding ellipsis if needed.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	if limit <= 3 {
		return string(runes[:limit])
	}
	return string(runes[:limit-3]) + "..."
}

// truncateMiddle shortens a path to limit runes. The file name after the
// last slash is kept whole and the directory part is cut before "…/". When
// the file name alone does not fit, the middle of the whole value is cut.
func truncateMiddle(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 || value == "" {
		return value
	}
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	ellipsis := []rune("…/")
	if limit <= len(ellipsis)+1 {
		return string(runes[:limit])
	}
	if idx := strings.LastIndex(value, "/"); idx >= 0 {
		name := []rune(value[idx+1:])
		if prefix := limit - len(ellipsis) - len(name); prefix > 0 {
			return string(runes[:prefix]) + string(ellipsis) + string(name)
		}
	}
	keep := limit - len(ellipsis)
	head := keep / 2
	tail := keep - head
	return string(runes[:head]) + string(ellipsis) + string(runes[len(runes)-tail:])
}

// padRight pads a string with spaces to the given width.
func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(r))
}

// orDash returns "-" for blank values.
func orDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return strings.TrimSpace(value)
}
