package update

import (
	"fmt"
	"strconv"
	"strings"

	"annid/internal/commands"
	"annid/internal/model"
	"annid/internal/views"
)

func levelFromError(isErr bool) string {
	if isErr {
		return "error"
	}
	return "info"
}

func escapeAppleScript(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

func renderMarkdownPreview(md string) string {
	return views.RenderMarkdown(md)
}

// parseCycleArg accepts the plain cycle names plus "every:N" / "custom:N"
// for a custom month interval.
func parseCycleArg(raw string) (model.Cycle, int, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	if months, ok := strings.CutPrefix(normalized, "every:"); ok {
		return parseCustomMonths(months)
	}
	if months, ok := strings.CutPrefix(normalized, "custom:"); ok {
		return parseCustomMonths(months)
	}
	cycle := model.Cycle(normalized)
	if !cycle.IsValid() {
		return "", 0, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown cycle %q", raw)}
	}
	// Bare "custom" keeps whatever month interval the record already has.
	return cycle, 0, nil
}

func parseCustomMonths(raw string) (model.Cycle, int, error) {
	months, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return "", 0, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid month interval %q", raw)}
	}
	return model.CycleCustom, months, nil
}

// parseTimingsArg parses a comma-separated list of day offsets.
func parseTimingsArg(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		days, err := strconv.Atoi(part)
		if err != nil || days < 0 {
			return nil, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid day offset %q", part)}
		}
		out = append(out, days)
	}
	if len(out) == 0 {
		return nil, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: "no day offsets given"}
	}
	return out, nil
}

func formatTimings(timings []int) string {
	parts := make([]string, 0, len(timings))
	for _, days := range timings {
		parts = append(parts, strconv.Itoa(days))
	}
	return strings.Join(parts, ",")
}
