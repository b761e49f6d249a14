package gomap

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OffsetTime is a time which is always written with its numeric UTC offset,
// as yyyy-MM-ddTHH:mm:ss.fffffff+hh:mm.
type OffsetTime struct {
	time.Time
}

var (
	timeType        = reflect.TypeFor[time.Time]()
	offsetTimeType  = reflect.TypeFor[OffsetTime]()
	durationType    = reflect.TypeFor[time.Duration]()
	uuidType        = reflect.TypeFor[uuid.UUID]()
	reflectTypeType = reflect.TypeFor[reflect.Type]()
)

const (
	roundTripUTC    = "2006-01-02T15:04:05.0000000Z"
	roundTripOffset = "2006-01-02T15:04:05.0000000-07:00"
	roundTripLocal  = "2006-01-02T15:04:05.9999999"
)

// isWellKnown reports whether t is written as a string by a fixed rule.
func isWellKnown(t reflect.Type) bool {
	switch t {
	case timeType, offsetTimeType, durationType, uuidType:
		return true
	}
	return false
}

// FormatTime writes t in round trip form: 7 fractional digits, and 'Z' for UTC
// or the numeric offset otherwise.
func FormatTime(t time.Time) string {
	if t.Location() == time.UTC {
		return t.Format(roundTripUTC)
	}
	return t.Format(roundTripOffset)
}

// ParseTime reads round trip text. Text ending in 'Z' always gives a UTC time.
// Text without an offset is read in the local time zone.
func ParseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		var lerr error
		t, lerr = time.ParseInLocation(roundTripLocal, s, time.Local)
		if lerr != nil {
			return time.Time{}, err
		}
	}
	if strings.HasSuffix(s, "Z") && t.Location() != time.UTC {
		t = t.UTC()
	}
	return t, nil
}

func FormatOffsetTime(t OffsetTime) string {
	return t.Format(roundTripOffset)
}

func ParseOffsetTime(s string) (OffsetTime, error) {
	t, err := time.Parse(roundTripOffset, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return OffsetTime{}, err
		}
	}
	return OffsetTime{Time: t}, nil
}

const (
	ticksPerSecond = int64(time.Second / 100)
	ticksPerDay    = 86400 * ticksPerSecond
	maxDays        = math.MaxInt64 / int64(24*time.Hour)
)

// FormatDuration writes d as [-][d.]hh:mm:ss[.fffffff], with a resolution of
// 100ns.
func FormatDuration(d time.Duration) string {
	ticks := int64(d / 100)
	neg := ticks < 0
	if neg {
		ticks = -ticks
	}
	days := ticks / ticksPerDay
	ticks %= ticksPerDay
	h := ticks / (3600 * ticksPerSecond)
	ticks %= 3600 * ticksPerSecond
	m := ticks / (60 * ticksPerSecond)
	ticks %= 60 * ticksPerSecond
	s := ticks / ticksPerSecond
	frac := ticks % ticksPerSecond

	b := &strings.Builder{}
	if neg {
		b.WriteByte('-')
	}
	if days != 0 {
		fmt.Fprintf(b, "%d.", days)
	}
	fmt.Fprintf(b, "%02d:%02d:%02d", h, m, s)
	if frac != 0 {
		fmt.Fprintf(b, ".%07d", frac)
	}
	return b.String()
}

// ParseDuration reads text written by FormatDuration. It also accepts hh:mm
// and a bare number of days.
func ParseDuration(s string) (time.Duration, error) {
	orig := s
	bad := func(msg string) (time.Duration, error) {
		return 0, fmt.Errorf("invalid duration %q: %s", orig, msg)
	}
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	parts := strings.Split(s, ":")
	var days, h, m, sec, frac int64
	var err error
	switch len(parts) {
	case 1:
		days, err = strconv.ParseInt(parts[0], 10, 64)
		if err != nil || days < 0 {
			return bad("expected days")
		}
	case 2, 3:
		hpart := parts[0]
		if i := strings.IndexByte(hpart, '.'); i != -1 {
			days, err = strconv.ParseInt(hpart[:i], 10, 64)
			if err != nil || days < 0 {
				return bad("bad days")
			}
			hpart = hpart[i+1:]
		}
		if h, err = parseUnit(hpart, 24); err != nil {
			return bad("bad hours")
		}
		if m, err = parseUnit(parts[1], 60); err != nil {
			return bad("bad minutes")
		}
		if len(parts) == 3 {
			spart := parts[2]
			if i := strings.IndexByte(spart, '.'); i != -1 {
				fs := spart[i+1:]
				if len(fs) == 0 || len(fs) > 7 {
					return bad("fraction must have 1 to 7 digits")
				}
				frac, err = strconv.ParseInt(fs+strings.Repeat("0", 7-len(fs)), 10, 64)
				if err != nil || frac < 0 {
					return bad("bad fraction")
				}
				spart = spart[:i]
			}
			if sec, err = parseUnit(spart, 60); err != nil {
				return bad("bad seconds")
			}
		}
	default:
		return bad("too many ':'")
	}
	if days > maxDays {
		return bad(strconv.ErrRange.Error())
	}
	ticks := ((days*24+h)*60+m)*60*ticksPerSecond + sec*ticksPerSecond + frac
	if ticks > math.MaxInt64/100 {
		return bad(strconv.ErrRange.Error())
	}
	d := time.Duration(ticks * 100)
	if neg {
		d = -d
	}
	return d, nil
}

func parseUnit(s string, lim int64) (int64, error) {
	if len(s) == 0 || len(s) > 2 {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 || v >= lim {
		return 0, strconv.ErrRange
	}
	return v, nil
}

// formatWellKnown returns the string form of v, whose type satisfies
// isWellKnown.
func formatWellKnown(v reflect.Value) string {
	switch v.Type() {
	case timeType:
		return FormatTime(v.Interface().(time.Time))
	case offsetTimeType:
		return FormatOffsetTime(v.Interface().(OffsetTime))
	case durationType:
		return FormatDuration(time.Duration(v.Int()))
	case uuidType:
		return v.Interface().(uuid.UUID).String()
	}
	panic("not well known: " + v.Type().String())
}

// parseWellKnown parses s into a value of type t, which satisfies isWellKnown.
func parseWellKnown(s string, t reflect.Type) (reflect.Value, error) {
	var x any
	var err error
	switch t {
	case timeType:
		x, err = ParseTime(s)
	case offsetTimeType:
		x, err = ParseOffsetTime(s)
	case durationType:
		x, err = ParseDuration(s)
	case uuidType:
		x, err = uuid.Parse(s)
	default:
		panic("not well known: " + t.String())
	}
	if err != nil {
		return reflect.Value{}, err
	}
	return reflect.ValueOf(x), nil
}
