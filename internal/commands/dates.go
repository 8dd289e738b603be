package commands

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var dateLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"Jan 2 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

var (
	parserOnce sync.Once
	dateParser *when.Parser
)

func naturalParser() *when.Parser {
	parserOnce.Do(func() {
		w := when.New(nil)
		w.Add(en.All...)
		w.Add(common.All...)
		dateParser = w
	})
	return dateParser
}

// ResolveDate turns a date argument into a calendar day. Fixed layouts are
// tried first so unambiguous inputs stay deterministic; anything else goes
// through the natural-language parser against the reference time
// ("next friday", "march 3rd").
func ResolveDate(raw string, ref time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "date is empty"}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return dayOnly(t), nil
		}
	}

	result, err := naturalParser().Parse(trimmed, ref)
	if err != nil || result == nil {
		return time.Time{}, &CommandError{
			Code:    ErrCodeInvalidArgument,
			Message: fmt.Sprintf("could not understand date: %q", trimmed),
		}
	}
	return dayOnly(result.Time), nil
}

func dayOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
