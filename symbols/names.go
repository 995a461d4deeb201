package symbols

import (
	"sync"

	"github.com/npillmayer/chronofmt"
	"golang.org/x/text/language"
)

// Style selects between the full and the abbreviated form of a
// localized field name ("January" vs "Jan").
type Style int8

// Text styles for localized field names.
const (
	Full Style = iota
	Short
)

func (s Style) String() string {
	if s == Short {
		return "SHORT"
	}
	return "FULL"
}

// ValueText associates one field value with its localized text.
type ValueText struct {
	Value int64
	Text  string
}

// FieldNames holds the localized texts of field values for one locale.
// Candidate lists are kept longest-first, which is the order a parser
// wants to try them in.
type FieldNames struct {
	tag   language.Tag
	texts map[*chronofmt.FieldRule]map[Style][]ValueText
}

// NewFieldNames creates an empty name table for a locale.
func NewFieldNames(tag language.Tag) *FieldNames {
	return &FieldNames{
		tag:   tag,
		texts: make(map[*chronofmt.FieldRule]map[Style][]ValueText),
	}
}

// Tag returns the locale this table was built for.
func (n *FieldNames) Tag() language.Tag {
	return n.tag
}

// Set adds or replaces the text for one field value and style.
func (n *FieldNames) Set(f *chronofmt.FieldRule, style Style, value int64, text string) {
	styles, ok := n.texts[f]
	if !ok {
		styles = make(map[Style][]ValueText)
		n.texts[f] = styles
	}
	list := styles[style]
	for i, vt := range list {
		if vt.Value == value {
			list[i].Text = text
			styles[style] = sortLongestFirst(list)
			return
		}
	}
	styles[style] = sortLongestFirst(append(list, ValueText{Value: value, Text: text}))
}

func sortLongestFirst(list []ValueText) []ValueText {
	// insertion sort; the lists are tiny
	for i := 1; i < len(list); i++ {
		for j := i; j > 0 && len(list[j].Text) > len(list[j-1].Text); j-- {
			list[j], list[j-1] = list[j-1], list[j]
		}
	}
	return list
}

// Text returns the localized text for a field value in the given style.
func (n *FieldNames) Text(f *chronofmt.FieldRule, style Style, value int64) (string, bool) {
	for _, vt := range n.texts[f][style] {
		if vt.Value == value {
			return vt.Text, true
		}
	}
	return "", false
}

// Candidates returns all texts for a field in the given style, longest
// first. The returned slice is shared and must not be modified.
func (n *FieldNames) Candidates(f *chronofmt.FieldRule, style Style) []ValueText {
	return n.texts[f][style]
}

// --- Locale registry -------------------------------------------------------

var namesReg = struct {
	sync.RWMutex
	tags  []language.Tag
	names []*FieldNames
	match language.Matcher
}{}

func init() {
	namesReg.tags = []language.Tag{language.English, language.French}
	namesReg.names = []*FieldNames{englishNames(), frenchNames()}
	namesReg.match = language.NewMatcher(namesReg.tags)
}

// RegisterNames publishes a name table for its locale, making it
// available to formatters via Names. Re-registering a locale replaces
// the earlier table.
func RegisterNames(n *FieldNames) {
	namesReg.Lock()
	defer namesReg.Unlock()
	for i, tag := range namesReg.tags {
		if tag == n.tag {
			namesReg.names[i] = n
			return
		}
	}
	namesReg.tags = append(namesReg.tags, n.tag)
	namesReg.names = append(namesReg.names, n)
	namesReg.match = language.NewMatcher(namesReg.tags)
}

// Names returns the name table for a locale. Unsupported locales
// resolve to the closest registered one, ultimately to English.
func Names(tag language.Tag) *FieldNames {
	namesReg.RLock()
	defer namesReg.RUnlock()
	_, index, _ := namesReg.match.Match(tag)
	return namesReg.names[index]
}

// DefaultNames returns the name table for the OS environment's locale.
func DefaultNames() *FieldNames {
	return Names(DefaultTag())
}

// --- Built-in locale data --------------------------------------------------

func englishNames() *FieldNames {
	n := NewFieldNames(language.English)
	months := []string{"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December"}
	monthsShort := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	for i, m := range months {
		n.Set(chronofmt.MonthOfYear, Full, int64(i+1), m)
		n.Set(chronofmt.MonthOfYear, Short, int64(i+1), monthsShort[i])
	}
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday",
		"Saturday", "Sunday"}
	daysShort := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	for i, d := range days {
		n.Set(chronofmt.DayOfWeek, Full, int64(i+1), d)
		n.Set(chronofmt.DayOfWeek, Short, int64(i+1), daysShort[i])
	}
	n.Set(chronofmt.AMPMOfDay, Full, 0, "AM")
	n.Set(chronofmt.AMPMOfDay, Full, 1, "PM")
	n.Set(chronofmt.AMPMOfDay, Short, 0, "AM")
	n.Set(chronofmt.AMPMOfDay, Short, 1, "PM")
	n.Set(chronofmt.Era, Full, 0, "BC")
	n.Set(chronofmt.Era, Full, 1, "AD")
	n.Set(chronofmt.Era, Short, 0, "BC")
	n.Set(chronofmt.Era, Short, 1, "AD")
	return n
}

func frenchNames() *FieldNames {
	n := NewFieldNames(language.French)
	months := []string{"janvier", "février", "mars", "avril", "mai", "juin",
		"juillet", "août", "septembre", "octobre", "novembre", "décembre"}
	monthsShort := []string{"janv.", "févr.", "mars", "avr.", "mai", "juin",
		"juil.", "août", "sept.", "oct.", "nov.", "déc."}
	for i, m := range months {
		n.Set(chronofmt.MonthOfYear, Full, int64(i+1), m)
		n.Set(chronofmt.MonthOfYear, Short, int64(i+1), monthsShort[i])
	}
	days := []string{"lundi", "mardi", "mercredi", "jeudi", "vendredi",
		"samedi", "dimanche"}
	daysShort := []string{"lun.", "mar.", "mer.", "jeu.", "ven.", "sam.", "dim."}
	for i, d := range days {
		n.Set(chronofmt.DayOfWeek, Full, int64(i+1), d)
		n.Set(chronofmt.DayOfWeek, Short, int64(i+1), daysShort[i])
	}
	n.Set(chronofmt.AMPMOfDay, Full, 0, "AM")
	n.Set(chronofmt.AMPMOfDay, Full, 1, "PM")
	n.Set(chronofmt.AMPMOfDay, Short, 0, "AM")
	n.Set(chronofmt.AMPMOfDay, Short, 1, "PM")
	return n
}
