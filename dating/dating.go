// Package dating provides a day-precision Date value and compact,
// sortable date-string encodings.
package dating

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var ErrDate = errors.New("bad date")

// Date is a calendar day without a time of day or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses an ISO date like "2010-12-24".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %w", ErrDate, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return d.Time().Format(time.DateOnly)
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func UTCNow() time.Time {
	return time.Now().UTC()
}

// UTCAge reports how many whole seconds ago ts was.
func UTCAge(ts time.Time) int {
	return int(time.Since(ts).Seconds())
}

const (
	saraEpoch = 2000
	base36    = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	base62    = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
)

// Sara formats a sara-style short date: year A=2010 .. L=2021, month
// 1-9ABC with C=December, then a 2-digit day. Sortable, 60% shorter
// in print: 2021-11-16 becomes "LB16".
func Sara(d Date) (string, error) {
	if d.Year < saraEpoch {
		return "", fmt.Errorf("%w: year must be >= %d, got %d", ErrDate, saraEpoch, d.Year)
	}
	if d.Year-saraEpoch >= len(base36) {
		return "", fmt.Errorf("%w: year %d beyond sara range", ErrDate, d.Year)
	}
	return fmt.Sprintf("%c%c%02d", base36[d.Year-saraEpoch], base36[int(d.Month)], d.Day), nil
}

// SaraMinute is Sara with the time of day appended: "LB16-0706".
func SaraMinute(t time.Time) (string, error) {
	day, err := Sara(DateOf(t))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%02d%02d", day, t.Hour(), t.Minute()), nil
}

// FromSara converts a sara-style short date back to a Date. A trailing
// "-HHMM" part is ignored.
func FromSara(sd string) (Date, error) {
	if len(sd) < 4 {
		return Date{}, fmt.Errorf("%w: sara date too short: %q", ErrDate, sd)
	}
	yr := strings.IndexByte(base36, sd[0])
	mnth := strings.IndexByte(base36, sd[1])
	if yr == -1 || mnth == -1 || mnth < 1 || mnth > 12 {
		return Date{}, fmt.Errorf("%w: bad sara date %q", ErrDate, sd)
	}
	day, err := strconv.Atoi(sd[2:4])
	if err != nil {
		return Date{}, fmt.Errorf("%w: bad sara day in %q", ErrDate, sd)
	}
	return Date{Year: saraEpoch + yr, Month: time.Month(mnth), Day: day}, nil
}

var isoDateRx = regexp.MustCompile(`^[12][0-9]{3}-[0-9]{2}-[0-9]{2}$`)

// CheckDate reports whether s is a YYYY-MM-DD date in the 19xx/20xx range.
func CheckDate(s string) bool {
	return isoDateRx.MatchString(s) && (s[:2] == "19" || s[:2] == "20")
}

// Number62 renders n in base 62, zero-padded to pad digits. The
// representation is strictly ascending in n; pad=3 covers day counts
// from Jan 1, 1900 for a few centuries. Negative n has no ascending
// encoding and is an error.
func Number62(n int, pad int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: no base-62 code for negative %d", ErrDate, n)
	}
	if n == 0 {
		return strings.Repeat("0", pad), nil
	}
	var digits []byte
	for n > 0 {
		digits = append(digits, base62[n%62])
		n /= 62
	}
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	s := string(digits)
	if len(s) < pad {
		s = strings.Repeat("0", pad-len(s)) + s
	}
	return s, nil
}

// Date62 renders a date as the base-62 count of days since Jan 1, 1900:
// a very short, strictly ascending 3-character code.
func Date62(d Date) (string, error) {
	days := int(d.Time().Sub(time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)).Hours() / 24)
	if days < 0 {
		return "", fmt.Errorf("%w: %s is before 1900-01-01", ErrDate, d)
	}
	return Number62(days, 3)
}

// SplitSeconds renders a duration like "5d 10m 3.5s", dropping zero
// parts; durations under 0.1s render as "no time".
func SplitSeconds(seconds float64) string {
	secs := math.Mod(seconds, 60)
	whole := int(math.Round(math.Floor(seconds / 60)))
	mins := whole % 60
	whole /= 60
	hrs := whole % 24
	whole /= 24
	days := whole
	var a []string
	if days != 0 {
		a = append(a, fmt.Sprintf("%dd", days))
	}
	if hrs != 0 {
		a = append(a, fmt.Sprintf("%dh", hrs))
	}
	if mins != 0 {
		a = append(a, fmt.Sprintf("%dm", mins))
	}
	if secs >= 0.1 {
		a = append(a, fmt.Sprintf("%0.1fs", secs))
	}
	if len(a) == 0 {
		return "no time"
	}
	return strings.Join(a, " ")
}
