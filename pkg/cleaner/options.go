package cleaner

import (
	"strings"

	"github.com/pkg/errors"
)

type (
	// Mode selects how tables are emptied.
	Mode string

	// UnknownOrderPolicy decides what happens to Order entries that the
	// catalog did not return.
	UnknownOrderPolicy string

	// Options controls a single Clean call.
	Options struct {
		// Mode is ModeTruncate (the default) or ModeDelete
		Mode Mode

		// IgnoreTables are never cleaned. They are filtered out by the catalog.
		IgnoreTables []string

		// Order lists tables that must come first, in this order. Tables not
		// mentioned follow in catalog order. Nil means no required order.
		Order []string

		// UnknownOrder applies to Order entries missing from the catalog
		UnknownOrder UnknownOrderPolicy
	}
)

const (
	// ModeTruncate empties tables with the dialect's truncate plan.
	ModeTruncate Mode = "truncate"

	// ModeDelete empties tables with an unconditional DELETE per table.
	ModeDelete Mode = "delete"

	// UnknownOrderKeep leaves unknown entries in place. Cleaning then fails
	// when the statement for the missing table is rejected by the database.
	UnknownOrderKeep UnknownOrderPolicy = "keep"

	// UnknownOrderSkip drops unknown entries and logs a warning for each.
	UnknownOrderSkip UnknownOrderPolicy = "skip"
)

// Defaults are merged under the options passed to Clean.
var Defaults = Options{
	Mode:         ModeTruncate,
	UnknownOrder: UnknownOrderKeep,
}

// ParseMode converts a configuration string into a Mode. The empty string
// yields the default mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return Defaults.Mode, nil
	case ModeTruncate, ModeDelete:
		return m, nil
	default:
		return "", errors.Wrapf(ErrInvalidMode, "%q", s)
	}
}

// ParseUnknownOrder converts a configuration string into an
// UnknownOrderPolicy. The empty string yields the default policy.
func ParseUnknownOrder(s string) (UnknownOrderPolicy, error) {
	switch p := UnknownOrderPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return Defaults.UnknownOrder, nil
	case UnknownOrderKeep, UnknownOrderSkip:
		return p, nil
	default:
		return "", errors.Wrapf(ErrInvalidUnknownOrder, "%q", s)
	}
}

// normalize fills unset fields from Defaults and canonicalizes Mode and
// UnknownOrder, so "DELETE" and "delete" mean the same thing.
func (o Options) normalize() (Options, error) {
	o = o.withDefaults()

	var err error
	if o.Mode, err = ParseMode(string(o.Mode)); err != nil {
		return o, err
	}

	if o.UnknownOrder, err = ParseUnknownOrder(string(o.UnknownOrder)); err != nil {
		return o, err
	}

	return o, nil
}

// withDefaults fills unset fields from Defaults.
func (o Options) withDefaults() Options {
	if o.Mode == "" {
		o.Mode = Defaults.Mode
	}

	if o.UnknownOrder == "" {
		o.UnknownOrder = Defaults.UnknownOrder
	}

	if o.IgnoreTables == nil {
		o.IgnoreTables = Defaults.IgnoreTables
	}

	if o.Order == nil {
		o.Order = Defaults.Order
	}

	return o
}
