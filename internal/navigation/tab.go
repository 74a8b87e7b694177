package navigation

import (
	"net/url"
	"strings"

	"github.com/webb-inc/webb/internal/content"
)

// Tab is a top-level view the viewer can navigate to.
type Tab string

const (
	TabLanding    Tab = "LANDING"
	TabCommercial Tab = "COMMERCIAL"
	TabMV         Tab = "MV"
	TabJamesWebb  Tab = "JAMES_WEBB"
	TabAbout      Tab = "ABOUT"
)

// Tabs lists every valid tab in menu order.
var Tabs = []Tab{TabLanding, TabCommercial, TabMV, TabJamesWebb, TabAbout}

// ParseTab accepts only the exact enumerated names.
func ParseTab(s string) (Tab, bool) {
	for _, t := range Tabs {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Valid reports whether t is one of the enumerated tabs.
func (t Tab) Valid() bool {
	_, ok := ParseTab(string(t))
	return ok
}

// Label is the menu caption for the tab.
func (t Tab) Label() string {
	switch t {
	case TabLanding:
		return "TOP"
	case TabAbout:
		return "ABOUT US"
	default:
		return strings.ReplaceAll(string(t), "_", " ")
	}
}

// Category maps grid tabs to the content category they display.
func (t Tab) Category() (content.Category, bool) {
	switch t {
	case TabCommercial:
		return content.CategoryCommercial, true
	case TabMV:
		return content.CategoryMV, true
	case TabJamesWebb:
		return content.CategoryJamesWebb, true
	default:
		return "", false
	}
}

// URL is the location a history entry for the tab carries.
func (t Tab) URL() string {
	if t == TabLanding {
		return "/"
	}
	return "/?view=" + url.QueryEscape(string(t))
}

// TabFromLocation reads the view query parameter of a location such as
// "/?view=MV". It reports false when the parameter is missing or invalid.
func TabFromLocation(location string) (Tab, bool) {
	u, err := url.Parse(location)
	if err != nil {
		return "", false
	}
	return ParseTab(u.Query().Get("view"))
}
