package bountylabel

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Price and time labels follow the repository labeling convention:
//
//	Price: 100 USD
//	Time: <1 Hour | <1 Day | <1 Week | <2 Weeks | <1 Month
//
// A task qualifies for funding only when both kinds are present.

var (
	priceRe = regexp.MustCompile(`^Price:\s*([0-9]+(?:\.[0-9]+)?)\s*(?:USD)?$`)
	timeRe  = regexp.MustCompile(`^Time:\s*<?\s*([0-9]+)\s*(Hour|Day|Week|Month)s?$`)
)

// Price returns the price encoded in the label set.
func Price(labels []string) (decimal.Decimal, bool) {
	for _, label := range labels {
		m := priceRe.FindStringSubmatch(strings.TrimSpace(label))
		if m == nil {
			continue
		}
		price, err := decimal.NewFromString(m[1])
		if err != nil {
			continue
		}
		return price, true
	}
	return decimal.Zero, false
}

// Duration returns the task duration encoded in the time label.
func Duration(labels []string) (time.Duration, bool) {
	for _, label := range labels {
		m := timeRe.FindStringSubmatch(strings.TrimSpace(label))
		if m == nil {
			continue
		}
		amount, err := decimal.NewFromString(m[1])
		if err != nil {
			continue
		}
		n := amount.IntPart()
		switch m[2] {
		case "Hour":
			return time.Duration(n) * time.Hour, true
		case "Day":
			return time.Duration(n) * 24 * time.Hour, true
		case "Week":
			return time.Duration(n) * 7 * 24 * time.Hour, true
		case "Month":
			return time.Duration(n) * 30 * 24 * time.Hour, true
		}
	}
	return 0, false
}

// Deadline computes the assignment deadline from the time label.
func Deadline(labels []string, now time.Time) (time.Time, bool) {
	d, ok := Duration(labels)
	if !ok {
		return time.Time{}, false
	}
	return now.Add(d), true
}

// Qualified reports whether the label set carries the required
// price/duration pair.
func Qualified(labels []string) bool {
	_, hasPrice := Price(labels)
	_, hasTime := Duration(labels)
	return hasPrice && hasTime
}
