package matcher

import (
	"fmt"
	"strings"
	"time"

	"github.com/citrusframework/citrus-go/validate/ir"
)

var (
	matchesDatePatternSym = &datePatternSymbol{name: matchesDatePatternName}
	isWeekdaySym          = &weekdaySymbol{name: isWeekdayName}
	dateRangeSym          = &dateRangeSymbol{name: dateRangeName}
)

// MatchesDatePattern matches strings that parse as a date with the given
// pattern, e.g. @matchesDatePattern('yyyy-MM-dd')@.
func MatchesDatePattern() Symbol { return matchesDatePatternSym }

// IsWeekday matches dates falling on a day of the week:
// @isWeekday('MONDAY')@ or @isWeekday('MONDAY','dd.MM.yyyy')@. The default
// pattern is yyyy-MM-dd.
func IsWeekday() Symbol { return isWeekdaySym }

// DateRange matches dates between two bounds, inclusive:
// @dateRange('01-01-2024','31-12-2024')@ with an optional third pattern
// argument defaulting to dd-MM-yyyy.
func DateRange() Symbol { return dateRangeSym }

const (
	matchesDatePatternName name = "matchesDatePattern"
	isWeekdayName          name = "isWeekday"
	dateRangeName          name = "dateRange"

	defaultWeekdayPattern = "yyyy-MM-dd"
	defaultRangePattern   = "dd-MM-yyyy"
)

type datePatternSymbol struct {
	name
}

func (s datePatternSymbol) Instance(args []string) (Matcher, error) {
	if err := checkArgs(s, args, 1, 1); err != nil {
		return nil, err
	}
	layout, err := Layout(args[0])
	if err != nil {
		return nil, argsError(s, "%v", err)
	}
	return &dateOp{op: op{name: s.name, args: args}, layout: layout, pred: func(time.Time) bool { return true }}, nil
}

type weekdaySymbol struct {
	name
}

func (s weekdaySymbol) Instance(args []string) (Matcher, error) {
	if err := checkArgs(s, args, 1, 2); err != nil {
		return nil, err
	}
	day, ok := weekdays[strings.ToUpper(strings.TrimSpace(args[0]))]
	if !ok {
		return nil, argsError(s, "%q is not a day of the week", args[0])
	}
	pattern := defaultWeekdayPattern
	if len(args) == 2 {
		pattern = args[1]
	}
	layout, err := Layout(pattern)
	if err != nil {
		return nil, argsError(s, "%v", err)
	}
	return &dateOp{op: op{name: s.name, args: args}, layout: layout, pred: func(t time.Time) bool {
		return t.Weekday() == day
	}}, nil
}

var weekdays = map[string]time.Weekday{
	"SUNDAY":    time.Sunday,
	"MONDAY":    time.Monday,
	"TUESDAY":   time.Tuesday,
	"WEDNESDAY": time.Wednesday,
	"THURSDAY":  time.Thursday,
	"FRIDAY":    time.Friday,
	"SATURDAY":  time.Saturday,
}

type dateRangeSymbol struct {
	name
}

func (s dateRangeSymbol) Instance(args []string) (Matcher, error) {
	if err := checkArgs(s, args, 2, 3); err != nil {
		return nil, err
	}
	pattern := defaultRangePattern
	if len(args) == 3 {
		pattern = args[2]
	}
	layout, err := Layout(pattern)
	if err != nil {
		return nil, argsError(s, "%v", err)
	}
	from, err := time.Parse(layout, args[0])
	if err != nil {
		return nil, argsError(s, "from date: %v", err)
	}
	to, err := time.Parse(layout, args[1])
	if err != nil {
		return nil, argsError(s, "to date: %v", err)
	}
	if to.Before(from) {
		return nil, argsError(s, "range ends before it starts")
	}
	return &dateOp{op: op{name: s.name, args: args}, layout: layout, pred: func(t time.Time) bool {
		return !t.Before(from) && !t.After(to)
	}}, nil
}

type dateOp struct {
	op
	layout string
	pred   func(time.Time) bool
}

func (o dateOp) Match(v *ir.Node, _ *Context) (bool, error) {
	if v.Type != ir.StringType {
		return false, nil
	}
	t, err := time.Parse(o.layout, v.String)
	if err != nil {
		return false, nil
	}
	return o.pred(t), nil
}

// Layout converts a date pattern in the SimpleDateFormat notation
// (yyyy-MM-dd'T'HH:mm:ss) to a time package layout. Text in single quotes
// is literal; two single quotes in a row stand for one.
func Layout(pattern string) (string, error) {
	buf := &strings.Builder{}
	for i := 0; i < len(pattern); {
		c := pattern[i]
		if c == '\'' {
			if i+1 < len(pattern) && pattern[i+1] == '\'' {
				buf.WriteByte('\'')
				i += 2
				continue
			}
			j := i + 1
			for {
				if j == len(pattern) {
					return "", fmt.Errorf("unterminated quote in date pattern %q", pattern)
				}
				if pattern[j] == '\'' {
					if j+1 < len(pattern) && pattern[j+1] == '\'' {
						buf.WriteByte('\'')
						j += 2
						continue
					}
					break
				}
				buf.WriteByte(pattern[j])
				j++
			}
			i = j + 1
			continue
		}
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z') {
			buf.WriteByte(c)
			i++
			continue
		}
		j := i
		for j < len(pattern) && pattern[j] == c {
			j++
		}
		tok, err := layoutToken(c, j-i)
		if err != nil {
			return "", fmt.Errorf("date pattern %q: %w", pattern, err)
		}
		buf.WriteString(tok)
		i = j
	}
	return buf.String(), nil
}

func layoutToken(c byte, n int) (string, error) {
	switch c {
	case 'y', 'u':
		if n == 2 {
			return "06", nil
		}
		return "2006", nil
	case 'M':
		switch n {
		case 1:
			return "1", nil
		case 2:
			return "01", nil
		case 3:
			return "Jan", nil
		default:
			return "January", nil
		}
	case 'd':
		if n == 1 {
			return "2", nil
		}
		return "02", nil
	case 'H':
		return "15", nil
	case 'h':
		if n == 1 {
			return "3", nil
		}
		return "03", nil
	case 'm':
		if n == 1 {
			return "4", nil
		}
		return "04", nil
	case 's':
		if n == 1 {
			return "5", nil
		}
		return "05", nil
	case 'S':
		return strings.Repeat("0", n), nil
	case 'a':
		return "PM", nil
	case 'E':
		if n >= 4 {
			return "Monday", nil
		}
		return "Mon", nil
	case 'z':
		return "MST", nil
	case 'Z':
		return "-0700", nil
	case 'X':
		switch n {
		case 1:
			return "Z07", nil
		case 2:
			return "Z0700", nil
		default:
			return "Z07:00", nil
		}
	}
	return "", fmt.Errorf("unsupported pattern letter %q", c)
}
