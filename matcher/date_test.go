package matcher

import (
	"testing"

	"github.com/citrusframework/citrus-go/validate/ir"
)

func TestLayout(t *testing.T) {
	for _, tc := range []struct {
		pattern string
		want    string
	}{
		{"yyyy-MM-dd", "2006-01-02"},
		{"dd.MM.yy", "02.01.06"},
		{"yyyy-MM-dd'T'HH:mm:ss", "2006-01-02T15:04:05"},
		{"HH:mm:ss.SSS", "15:04:05.000"},
		{"EEE, d MMM yyyy", "Mon, 2 Jan 2006"},
		{"EEEE MMMM", "Monday January"},
		{"hh:mm a", "03:04 PM"},
		{"yyyy-MM-dd'T'HH:mm:ssXXX", "2006-01-02T15:04:05Z07:00"},
		{"'o''clock' H", "o'clock 15"},
		{"''", "'"},
	} {
		got, err := Layout(tc.pattern)
		if err != nil {
			t.Errorf("Layout(%q): %v", tc.pattern, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Layout(%q) = %q, want %q", tc.pattern, got, tc.want)
		}
	}
	for _, bad := range []string{"yyyy-QQ", "'open", "G"} {
		if _, err := Layout(bad); err == nil {
			t.Errorf("Layout(%q) should fail", bad)
		}
	}
}

func TestDateMatchers(t *testing.T) {
	s := ir.FromString
	runMatchCases(t, []matchCase{
		{"@matchesDatePattern('yyyy-MM-dd')@", s("2024-02-29"), true},
		{"@matchesDatePattern('yyyy-MM-dd')@", s("2023-02-29"), false},
		{"@matchesDatePattern('yyyy-MM-dd')@", s("29.02.2024"), false},
		{"@matchesDatePattern('dd.MM.yyyy HH:mm')@", s("29.02.2024 13:45"), true},
		{"@matchesDatePattern('yyyy')@", ir.FromInt(2024), false},
		{"@isWeekday(MONDAY)@", s("2024-01-01"), true},
		{"@isWeekday('monday')@", s("2024-01-02"), false},
		{"@isWeekday('TUESDAY', 'dd.MM.yyyy')@", s("02.01.2024"), true},
		{"@isWeekday(SUNDAY)@", s("not a date"), false},
		{"@dateRange('01-01-2024', '31-12-2024')@", s("15-06-2024"), true},
		{"@dateRange('01-01-2024', '31-12-2024')@", s("01-01-2024"), true},
		{"@dateRange('01-01-2024', '31-12-2024')@", s("31-12-2024"), true},
		{"@dateRange('01-01-2024', '31-12-2024')@", s("01-01-2025"), false},
		{"@dateRange('2024-01-01', '2024-01-31', 'yyyy-MM-dd')@", s("2024-01-15"), true},
		{"@dateRange('2024-01-01', '2024-01-31', 'yyyy-MM-dd')@", s("15-01-2024"), false},
	})
}
