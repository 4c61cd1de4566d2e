// ABOUTME: RSS 1.0 syndication module extension describing update schedules
// ABOUTME: Update frequency is validated against its closed domain on the way in

// Package syndication implements the RSS 1.0 syndication module as an
// attachable extension. It describes how often a resource is expected to
// change.
package syndication

import (
	"strconv"
	"time"

	"github.com/antchfx/xmlquery"
	"github.com/beevik/etree"

	"syndikit/core/adapter"
	"syndikit/core/codec"
	"syndikit/core/domain"
	"syndikit/core/errors"
	"syndikit/pkg/utils/parse"
	timeutil "syndikit/pkg/utils/time"
	"syndikit/pkg/xmlns"
)

// UpdatePeriod is the unit of time over which update frequency is measured.
type UpdatePeriod int

const (
	// PeriodUnspecified indicates no update period was declared
	PeriodUnspecified UpdatePeriod = iota

	// PeriodHourly measures updates per hour
	PeriodHourly

	// PeriodDaily measures updates per day
	PeriodDaily

	// PeriodWeekly measures updates per week
	PeriodWeekly

	// PeriodMonthly measures updates per month
	PeriodMonthly

	// PeriodYearly measures updates per year
	PeriodYearly
)

var updatePeriodCodec = codec.New("update-period", []codec.Entry[UpdatePeriod]{
	{Value: PeriodUnspecified, Token: "", Display: "Unspecified"},
	{Value: PeriodHourly, Token: "hourly", Display: "Hourly"},
	{Value: PeriodDaily, Token: "daily", Display: "Daily"},
	{Value: PeriodWeekly, Token: "weekly", Display: "Weekly"},
	{Value: PeriodMonthly, Token: "monthly", Display: "Monthly"},
	{Value: PeriodYearly, Token: "yearly", Display: "Yearly"},
})

// ParseUpdatePeriod decodes a wire token, returning PeriodUnspecified for
// unrecognized tokens.
func ParseUpdatePeriod(token string) UpdatePeriod {
	return updatePeriodCodec.Decode(token)
}

// Token returns the period's wire token. PeriodUnspecified has no token and
// is omitted from serialized output.
func (p UpdatePeriod) Token() string {
	return updatePeriodCodec.Encode(p)
}

// String returns the period's display name.
func (p UpdatePeriod) String() string {
	return updatePeriodCodec.Display(p)
}

// Extension carries a resource's update schedule. Frequency counts updates
// per period and must be at least one when set.
type Extension struct {
	// Period is the unit the frequency is measured over
	Period UpdatePeriod

	// Base is the instant the schedule is calculated from (zero means unset)
	Base time.Time

	frequency int
}

// New constructs an empty syndication schedule extension. Its signature
// matches domain.ExtensionFactory.
func New() domain.Extension {
	return &Extension{}
}

// Name returns the extension's human-readable name.
func (e *Extension) Name() string {
	return "Syndication Schedule"
}

// Prefix returns the conventional sy prefix.
func (e *Extension) Prefix() string {
	return xmlns.PrefixFor(xmlns.Syndication)
}

// Namespace returns the RSS 1.0 syndication module namespace URI.
func (e *Extension) Namespace() string {
	return xmlns.Syndication
}

// Frequency returns how many updates occur per period, or zero when unset.
func (e *Extension) Frequency() int {
	return e.frequency
}

// SetFrequency records how many updates occur per period. Values below one
// are outside the module's domain and rejected.
func (e *Extension) SetFrequency(n int) error {
	if n < 1 {
		return &errors.OutOfRangeError{
			Field:   "updateFrequency",
			Value:   n,
			Message: "must be a positive integer",
		}
	}
	e.frequency = n
	return nil
}

// Load reads the module's elements among node's direct children and reports
// whether any matched. A frequency below one is skipped, leaving the field
// unset.
func (e *Extension) Load(node *xmlquery.Node) (bool, error) {
	matched := false
	for _, child := range adapter.ChildrenInNamespace(node, xmlns.Syndication) {
		value := adapter.InnerText(child)

		switch child.Data {
		case "updatePeriod":
			e.Period = ParseUpdatePeriod(value)
		case "updateFrequency":
			if n := parse.IntOrZero(value); n >= 1 {
				e.frequency = n
			}
		case "updateBase":
			e.Base = timeutil.ParseFlexibleTime(value)
		default:
			continue
		}
		matched = true
	}
	return matched, nil
}

// WriteTo appends the module's elements beneath parent, omitting unset
// fields.
func (e *Extension) WriteTo(parent *etree.Element) error {
	prefix := e.Prefix()

	if token := e.Period.Token(); token != "" {
		parent.CreateElement(prefix + ":updatePeriod").SetText(token)
	}
	if e.frequency >= 1 {
		parent.CreateElement(prefix + ":updateFrequency").SetText(strconv.Itoa(e.frequency))
	}
	if !e.Base.IsZero() {
		parent.CreateElement(prefix + ":updateBase").SetText(timeutil.FormatWire(e.Base))
	}
	return nil
}
