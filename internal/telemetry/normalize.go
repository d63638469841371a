package telemetry

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/flotilla-app/fleet-service/internal/model"
)

// The feed's payload shape drifted across provider versions; the array may
// sit at the top level or under one of several keys.
func pickArray(payload any) []map[string]any {
	toMaps := func(arr []any) []map[string]any {
		out := make([]map[string]any, 0, len(arr))
		for _, v := range arr {
			if m, ok := v.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	}

	if arr, ok := payload.([]any); ok {
		return toMaps(arr)
	}
	obj, ok := payload.(map[string]any)
	if !ok {
		return nil
	}
	for _, key := range []string{"data", "items", "devices", "result"} {
		if arr, ok := obj[key].([]any); ok {
			return toMaps(arr)
		}
	}
	return nil
}

func num(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil
	}
	return 0, false
}

func firstNum(m map[string]any, keys ...string) (float64, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if f, ok := num(v); ok {
				return f, true
			}
		}
	}
	return 0, false
}

func firstStr(m map[string]any, keys ...string) (string, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			s := strings.TrimSpace(fmt.Sprint(v))
			if s != "" {
				return s, true
			}
		}
	}
	return "", false
}

// epochToTime accepts seconds or milliseconds since the epoch.
func epochToTime(ts float64) time.Time {
	ms := int64(ts)
	if ms < 1e12 {
		ms *= 1000
	}
	return time.UnixMilli(ms).UTC()
}

var (
	brTagRe        = regexp.MustCompile(`(?i)</?br\s*/?>`)
	spacesRe       = regexp.MustCompile(`\s+`)
	velocityTimeRe = regexp.MustCompile(`(\d{1,2}):(\d{2})\s+(\d{1,2})/(\d{1,2})/(\d{4})`)
)

// parseVelocityTime parses the provider's human-facing "HH:MM D/M/YYYY"
// field, which sometimes arrives with embedded <br> markup.
func parseVelocityTime(v string) (time.Time, bool) {
	s := spacesRe.ReplaceAllString(brTagRe.ReplaceAllString(v, " "), " ")
	m := velocityTimeRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return time.Time{}, false
	}
	hh, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	dd, _ := strconv.Atoi(m[3])
	mo, _ := strconv.Atoi(m[4])
	yyyy, _ := strconv.Atoi(m[5])
	return time.Date(yyyy, time.Month(mo), dd, hh, mm, 0, 0, time.UTC), true
}

// normalizeItem maps one raw feed row onto a position. Plate and coordinates
// are mandatory; everything else is optional.
func normalizeItem(it map[string]any, now time.Time) (model.VehiclePosition, bool) {
	lat, okLat := firstNum(it, "lat", "latitude")
	lon, okLon := firstNum(it, "lon", "lng", "longitude")
	reg, okReg := firstStr(it, "vehicle_registration", "registration", "plate", "vehicle")
	if !okLat || !okLon || !okReg {
		return model.VehiclePosition{}, false
	}

	p := model.VehiclePosition{
		Registration: reg,
		Lat:          lat,
		Lon:          lon,
		RecordedAt:   now,
	}
	if ts, ok := firstNum(it, "timestamp", "timeStamp", "ts"); ok {
		p.RecordedAt = epochToTime(ts)
	} else if raw, ok := firstStr(it, "time"); ok {
		if t, ok := parseVelocityTime(raw); ok {
			p.RecordedAt = t
		}
	}

	if id, ok := firstNum(it, "id", "device_id", "deviceId"); ok {
		deviceID := int64(id)
		p.DeviceID = &deviceID
	}
	if speed, ok := firstNum(it, "speed"); ok {
		p.Speed = &speed
	}
	if dir, ok := firstNum(it, "direction", "heading"); ok {
		p.Direction = &dir
	}
	if ign, ok := firstStr(it, "ignition"); ok {
		p.Ignition = &ign
	}
	if v, ok := firstStr(it, "street"); ok {
		p.Street = &v
	}
	if v, ok := firstStr(it, "town", "city"); ok {
		p.Town = &v
	}
	if v, ok := firstStr(it, "post_code"); ok {
		p.PostCode = &v
	}
	if v, ok := firstStr(it, "country"); ok {
		p.Country = &v
	}
	return p, true
}
