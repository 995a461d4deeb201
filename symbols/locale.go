package symbols

import (
	"sync"

	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

var defaultTag language.Tag
var defaultTagOnce sync.Once

// DefaultTag returns the locale detected from the OS environment,
// falling back to en-US when detection fails. Detection runs once per
// process.
func DefaultTag() language.Tag {
	defaultTagOnce.Do(func() {
		userLocale, err := jj.DetectIETF()
		if err != nil {
			T().Errorf(err.Error())
			userLocale = "en-US"
			T().Infof("symbols sets default user locale %v", userLocale)
		} else {
			T().Infof("symbols detected user locale %v", userLocale)
		}
		defaultTag = language.Make(userLocale)
	})
	return defaultTag
}
