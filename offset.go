package chronofmt

import "fmt"

// Offset is a fixed offset from UTC, in seconds east, within ±18 hours.
type Offset int

// UTC is the zero offset.
const UTC Offset = 0

const maxOffsetSeconds = 18 * 60 * 60

// OffsetOf builds an offset from hour, minute and second components.
// The components must agree in sign and the total must stay within
// ±18:00; anything else is a programming error and panics.
func OffsetOf(hours, minutes, seconds int) Offset {
	if (hours > 0 && (minutes < 0 || seconds < 0)) ||
		(hours < 0 && (minutes > 0 || seconds > 0)) ||
		(minutes > 0 && seconds < 0) || (minutes < 0 && seconds > 0) {
		panic("chronofmt: offset components differ in sign")
	}
	if minutes < -59 || minutes > 59 || seconds < -59 || seconds > 59 {
		panic(fmt.Sprintf("chronofmt: offset minutes/seconds out of range: %d/%d", minutes, seconds))
	}
	return OffsetSeconds(hours*3600 + minutes*60 + seconds)
}

// OffsetSeconds builds an offset from a total number of seconds.
// Panics when the total leaves ±18:00.
func OffsetSeconds(secs int) Offset {
	if secs < -maxOffsetSeconds || secs > maxOffsetSeconds {
		panic(fmt.Sprintf("chronofmt: offset %d s outside ±18:00", secs))
	}
	return Offset(secs)
}

// Seconds returns the total offset in seconds east of UTC.
func (o Offset) Seconds() int {
	return int(o)
}

// ID returns the canonical identifier of the offset: "Z" for UTC, else
// "±HH:MM" or "±HH:MM:SS" when a seconds component is present.
func (o Offset) ID() string {
	if o == 0 {
		return "Z"
	}
	total := int(o)
	sign := byte('+')
	if total < 0 {
		sign = '-'
		total = -total
	}
	hh, mm, ss := total/3600, (total/60)%60, total%60
	if ss == 0 {
		return fmt.Sprintf("%c%02d:%02d", sign, hh, mm)
	}
	return fmt.Sprintf("%c%02d:%02d:%02d", sign, hh, mm, ss)
}

func (o Offset) String() string {
	return o.ID()
}
