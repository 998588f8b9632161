package assemble

import "time"

// fastParseDate parses "YYYY-MM-DD" without layout parsing.
// Returns zero time and false on invalid input.
func fastParseDate(s string) (time.Time, bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return time.Time{}, false
	}
	for _, i := range [8]int{0, 1, 2, 3, 5, 6, 8, 9} {
		if s[i] < '0' || s[i] > '9' {
			return time.Time{}, false
		}
	}
	y := int(s[0]-'0')*1000 + int(s[1]-'0')*100 + int(s[2]-'0')*10 + int(s[3]-'0')
	m := time.Month(int(s[5]-'0')*10 + int(s[6]-'0'))
	d := int(s[8]-'0')*10 + int(s[9]-'0')
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
}

// IsMinor reports whether a person born on birthDate is under 18 at now.
// Anniversary-aware: the year difference is decremented when the birthday
// has not yet occurred this year. Unparseable dates count as adult.
func IsMinor(birthDate string, now time.Time) bool {
	birth, ok := fastParseDate(birthDate)
	if !ok {
		return false
	}
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age < 18
}
