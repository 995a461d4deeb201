package chronofmt

import (
	"fmt"
	"sync"
)

// ValueRange describes the legal value range of a field rule. Min may be
// negative (proleptic years). For some fields the upper bound depends on
// context the engine cannot see — day-of-month runs to 28, 29, 30 or 31
// depending on the month — which is why a range additionally carries the
// smallest maximum ever valid.
type ValueRange struct {
	Min         int64
	Max         int64 // largest maximum
	SmallestMax int64 // smallest maximum; equals Max for fixed ranges
}

// Contains reports whether v lies within the largest legal range.
func (vr ValueRange) Contains(v int64) bool {
	return v >= vr.Min && v <= vr.Max
}

// Fixed reports whether the range is the same in every context.
// Fractional representation is only defined for fixed ranges.
func (vr ValueRange) Fixed() bool {
	return vr.SmallestMax == vr.Max
}

// Span is the number of distinct values in the range.
func (vr ValueRange) Span() int64 {
	return vr.Max - vr.Min + 1
}

// A FieldRule identifies a calendrical quantity, e.g. day-of-month or
// nano-of-second. Rules are compared by identity: two rules are the same
// field if and only if they are the same *FieldRule. The engine never
// validates parsed values against the rule's range; ranges are metadata
// consulted for derived representations (fractions, text fallbacks).
type FieldRule struct {
	name string
	rng  ValueRange
}

// Name returns the rule's identifier, e.g. "DayOfMonth".
func (f *FieldRule) Name() string {
	return f.name
}

// Range returns the rule's value range metadata.
func (f *FieldRule) Range() ValueRange {
	return f.rng
}

func (f *FieldRule) String() string {
	return f.name
}

var ruleRegistry = struct {
	sync.RWMutex
	m map[string]*FieldRule
}{m: make(map[string]*FieldRule)}

// NewFieldRule creates and registers a field rule with a fixed value
// range. The name must be non-empty and unique; violating either, or
// passing min > max, is a programming error and panics.
func NewFieldRule(name string, min, max int64) *FieldRule {
	return newRule(name, min, max, max)
}

// NewVariableFieldRule creates and registers a field rule whose maximum
// depends on context, like day-of-month. smallestMax is the smallest
// maximum ever valid, max the largest.
func NewVariableFieldRule(name string, min, smallestMax, max int64) *FieldRule {
	return newRule(name, min, smallestMax, max)
}

func newRule(name string, min, smallestMax, max int64) *FieldRule {
	if name == "" {
		panic("chronofmt: field rule name must not be empty")
	}
	if min > smallestMax || smallestMax > max {
		panic(fmt.Sprintf("chronofmt: illegal range %d / %d / %d for field rule %q",
			min, smallestMax, max, name))
	}
	f := &FieldRule{name: name, rng: ValueRange{Min: min, Max: max, SmallestMax: smallestMax}}
	ruleRegistry.Lock()
	defer ruleRegistry.Unlock()
	if _, ok := ruleRegistry.m[name]; ok {
		panic(fmt.Sprintf("chronofmt: field rule %q registered twice", name))
	}
	ruleRegistry.m[name] = f
	return f
}

// RuleByName looks up a registered field rule. Used by the description
// pattern compiler to resolve names such as "DayOfMonth".
func RuleByName(name string) (*FieldRule, bool) {
	ruleRegistry.RLock()
	defer ruleRegistry.RUnlock()
	f, ok := ruleRegistry.m[name]
	return f, ok
}

// The standard ISO field rules. Day-of-week follows ISO-8601 numbering,
// Monday = 1. AM = 0 and PM = 1.
var (
	Era             = NewFieldRule("Era", 0, 1)
	Year            = NewFieldRule("Year", -999999999, 999999999)
	QuarterOfYear   = NewFieldRule("QuarterOfYear", 1, 4)
	MonthOfYear     = NewFieldRule("MonthOfYear", 1, 12)
	WeekOfYear      = NewVariableFieldRule("WeekOfYear", 1, 52, 53)
	DayOfYear       = NewVariableFieldRule("DayOfYear", 1, 365, 366)
	DayOfMonth      = NewVariableFieldRule("DayOfMonth", 1, 28, 31)
	DayOfWeek       = NewFieldRule("DayOfWeek", 1, 7)
	AMPMOfDay       = NewFieldRule("AMPMOfDay", 0, 1)
	HourOfDay       = NewFieldRule("HourOfDay", 0, 23)
	ClockHourOfDay  = NewFieldRule("ClockHourOfDay", 1, 24)
	HourOfAMPM      = NewFieldRule("HourOfAMPM", 0, 11)
	ClockHourOfAMPM = NewFieldRule("ClockHourOfAMPM", 1, 12)
	MinuteOfHour    = NewFieldRule("MinuteOfHour", 0, 59)
	SecondOfMinute  = NewFieldRule("SecondOfMinute", 0, 59)
	MilliOfSecond   = NewFieldRule("MilliOfSecond", 0, 999)
	NanoOfSecond    = NewFieldRule("NanoOfSecond", 0, 999999999)
)

// A FieldSource supplies field values to the printing side of a
// formatter. Callers typically use a FieldMap or Calendrical, but any
// value holder may implement the interface.
type FieldSource interface {
	HasField(f *FieldRule) bool
	Field(f *FieldRule) int64 // panics if the field is absent
}

// FieldMap is the simplest FieldSource, and also the shape in which
// parsed field values are handed back to callers.
type FieldMap map[*FieldRule]int64

// HasField is part of interface FieldSource.
func (m FieldMap) HasField(f *FieldRule) bool {
	_, ok := m[f]
	return ok
}

// Field is part of interface FieldSource. It panics if f has no value;
// use HasField to probe.
func (m FieldMap) Field(f *FieldRule) int64 {
	v, ok := m[f]
	if !ok {
		panic(fmt.Sprintf("chronofmt: no value for field %s", f.Name()))
	}
	return v
}

// An OffsetProvider is a FieldSource which additionally carries a UTC
// offset. Offset elements of a formatter require their source to
// implement it.
type OffsetProvider interface {
	Offset() (Offset, bool)
}

// A ZoneProvider is a FieldSource which additionally carries a timezone
// identifier. Zone elements of a formatter require their source to
// implement it.
type ZoneProvider interface {
	ZoneID() (string, bool)
}

// Calendrical bundles field values with an optional offset and zone.
// It is a convenience implementation of FieldSource, OffsetProvider and
// ZoneProvider.
type Calendrical struct {
	FieldMap
	Off  *Offset // nil when no offset is present
	Zone string  // empty when no zone is present
}

// Offset is part of interface OffsetProvider.
func (c *Calendrical) Offset() (Offset, bool) {
	if c.Off == nil {
		return 0, false
	}
	return *c.Off, true
}

// ZoneID is part of interface ZoneProvider.
func (c *Calendrical) ZoneID() (string, bool) {
	return c.Zone, c.Zone != ""
}
