package geodesy

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidDMS is returned for malformed or out-of-range degrees-minutes-seconds values.
var ErrInvalidDMS = errors.New("invalid DMS coordinate")

// DMS is an angle written as degrees, minutes and seconds with an optional
// hemisphere letter (N, S, E or W). A zero Direction is read as positive.
type DMS struct {
	Degrees   int
	Minutes   int
	Seconds   float64
	Direction byte
}

const (
	minutesPerDegree = 60
	secondsPerDegree = 3600
	maxLatitudeDeg   = 90
	maxLongitudeDeg  = 180
)

// ToDecimal converts d into decimal degrees. Southern and western values are negative.
func (d DMS) ToDecimal() (float64, error) {
	if d.Degrees < 0 || d.Minutes < 0 || d.Minutes >= minutesPerDegree ||
		d.Seconds < 0 || d.Seconds >= minutesPerDegree {
		return 0, fmt.Errorf("%w: %s", ErrInvalidDMS, d)
	}

	limit := maxLongitudeDeg
	sign := 1.0

	switch d.Direction {
	case 'N':
		limit = maxLatitudeDeg
	case 'S':
		limit = maxLatitudeDeg
		sign = -1
	case 'W':
		sign = -1
	case 'E', 0:
	default:
		return 0, fmt.Errorf("%w: unknown direction %q", ErrInvalidDMS, d.Direction)
	}

	value := float64(d.Degrees) + float64(d.Minutes)/minutesPerDegree + d.Seconds/secondsPerDegree
	if value > float64(limit) {
		return 0, fmt.Errorf("%w: %s exceeds %d degrees", ErrInvalidDMS, d, limit)
	}

	return sign * value, nil
}

// String formats d as 52°30'27.15"N.
func (d DMS) String() string {
	s := fmt.Sprintf("%d°%d'%s\"", d.Degrees, d.Minutes, strconv.FormatFloat(d.Seconds, 'f', -1, 64))
	if d.Direction != 0 {
		s += string(d.Direction)
	}

	return s
}

// ParseDMS parses strings such as `52°30'27.15"N`, `13 25 30.5 E` or `52 30 N`.
// Minutes and seconds may be omitted.
func ParseDMS(s string) (DMS, error) {
	const maxFields = 3

	var d DMS

	fields := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(`°'"′″`, r)
	})
	if len(fields) == 0 {
		return DMS{}, fmt.Errorf("%w: empty input", ErrInvalidDMS)
	}

	// the hemisphere letter may be glued to the last number
	last := fields[len(fields)-1]
	if dir := unicode.ToUpper(rune(last[len(last)-1])); strings.ContainsRune("NSEW", dir) {
		d.Direction = byte(dir)
		last = strings.TrimSpace(last[:len(last)-1])
		if last == "" {
			fields = fields[:len(fields)-1]
		} else {
			fields[len(fields)-1] = last
		}
	}

	if len(fields) == 0 || len(fields) > maxFields {
		return DMS{}, fmt.Errorf("%w: %q", ErrInvalidDMS, s)
	}

	var err error
	if d.Degrees, err = strconv.Atoi(fields[0]); err != nil {
		return DMS{}, fmt.Errorf("%w: degrees %q", ErrInvalidDMS, fields[0])
	}
	if len(fields) > 1 {
		if d.Minutes, err = strconv.Atoi(fields[1]); err != nil {
			return DMS{}, fmt.Errorf("%w: minutes %q", ErrInvalidDMS, fields[1])
		}
	}
	if len(fields) > 2 {
		if d.Seconds, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return DMS{}, fmt.Errorf("%w: seconds %q", ErrInvalidDMS, fields[2])
		}
	}

	if _, err = d.ToDecimal(); err != nil {
		return DMS{}, err
	}

	return d, nil
}
