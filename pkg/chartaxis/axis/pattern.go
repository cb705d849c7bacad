package axis

import (
	"strconv"
	"strings"
	"time"
)

// FormatPattern renders t with a custom date pattern in the style of
// "yyyy-MM-dd HH:mm:ss.fff". Recognized letters:
//
//	y   year          (y, yy: two digits; yyy...: zero padded to width)
//	M   month         (M, MM: number; MMM: Jan; MMMM: January)
//	d   day           (d, dd: day of month; ddd: Mon; dddd: Monday)
//	H   hour 0-23     h  hour 1-12
//	m   minute        s  second
//	f   fraction      (f..fffffffff, zero padded)
//	F   fraction      (like f, trailing zeros dropped)
//	t   AM/PM marker  (t: A or P; tt: AM or PM)
//
// Text between single or double quotes and any character after a
// backslash is copied verbatim; every other character is copied as is.
func FormatPattern(t time.Time, pattern string) string {
	var b strings.Builder
	runes := []rune(pattern)
	for i := 0; i < len(runes); {
		c := runes[i]
		switch c {
		case '\'', '"':
			j := i + 1
			for j < len(runes) && runes[j] != c {
				b.WriteRune(runes[j])
				j++
			}
			i = j + 1
			continue
		case '\\':
			if i+1 < len(runes) {
				b.WriteRune(runes[i+1])
			}
			i += 2
			continue
		}

		n := 1
		for i+n < len(runes) && runes[i+n] == c {
			n++
		}
		i += n

		switch c {
		case 'y':
			switch {
			case n <= 2:
				writeNumber(&b, t.Year()%100, n)
			default:
				writeNumber(&b, t.Year(), n)
			}
		case 'M':
			switch {
			case n <= 2:
				writeNumber(&b, int(t.Month()), n)
			case n == 3:
				b.WriteString(t.Month().String()[:3])
			default:
				b.WriteString(t.Month().String())
			}
		case 'd':
			switch {
			case n <= 2:
				writeNumber(&b, t.Day(), n)
			case n == 3:
				b.WriteString(t.Weekday().String()[:3])
			default:
				b.WriteString(t.Weekday().String())
			}
		case 'H':
			writeNumber(&b, t.Hour(), min(n, 2))
		case 'h':
			h := t.Hour() % 12
			if h == 0 {
				h = 12
			}
			writeNumber(&b, h, min(n, 2))
		case 'm':
			writeNumber(&b, t.Minute(), min(n, 2))
		case 's':
			writeNumber(&b, t.Second(), min(n, 2))
		case 'f', 'F':
			n = min(n, 9)
			frac := t.Nanosecond()
			for range 9 - n {
				frac /= 10
			}
			digits := strconv.Itoa(frac)
			digits = strings.Repeat("0", n-len(digits)) + digits
			if c == 'F' {
				digits = strings.TrimRight(digits, "0")
			}
			b.WriteString(digits)
		case 't':
			marker := "AM"
			if t.Hour() >= 12 {
				marker = "PM"
			}
			if n == 1 {
				marker = marker[:1]
			}
			b.WriteString(marker)
		default:
			for range n {
				b.WriteRune(c)
			}
		}
	}
	return b.String()
}

// writeNumber writes v zero padded to width digits.
func writeNumber(b *strings.Builder, v, width int) {
	s := strconv.Itoa(v)
	if v < 0 {
		b.WriteByte('-')
		s = s[1:]
	}
	for range width - len(s) {
		b.WriteByte('0')
	}
	b.WriteString(s)
}
