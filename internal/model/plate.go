package model

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	currentPlateRe = regexp.MustCompile(`^(\d{4})[A-Z]{3}$`)
	specialPlateRe = regexp.MustCompile(`^[ER](\d{4})[A-Z]{3}$`)
)

// DeduceYearFromPlate estimates the registration year of a Spanish plate
// (post-2000 format: 4 digits + 3 letters; E/R prefix for tractors and
// trailers). Falls back to the current year when the plate is not parseable.
func DeduceYearFromPlate(plate string, now time.Time) int {
	cleaned := strings.ToUpper(strings.ReplaceAll(plate, " ", ""))

	if m := currentPlateRe.FindStringSubmatch(cleaned); m != nil {
		n, _ := strconv.Atoi(m[1])
		// the counter rolled over roughly once per thousand per year
		return 2000 + n/1000
	}
	if m := specialPlateRe.FindStringSubmatch(cleaned); m != nil {
		n, _ := strconv.Atoi(m[1])
		switch {
		case n <= 3000:
			return 2010
		case n <= 6000:
			return 2015
		case n <= 9000:
			return 2020
		}
		// serials past 9000 carry no usable band
	}
	return now.Year()
}
