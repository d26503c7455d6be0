package paramfile

import (
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// truthyTokens is the fixed vocabulary of affirmative boolean values. A
// present key whose value is not in this set means false; only an absent
// key keeps the fallback.
var truthyTokens = map[string]bool{
	"t": true, "true": true, "yes": true, "on": true, "1": true, ".true.": true,
}

// tagOptions are the per-field modifiers carried on the `amps` struct tag.
type tagOptions struct {
	lower    bool // normalize the string value to lowercase
	positive bool // numeric list: keep only positive entries
}

// parseTag splits an `amps` tag into the keyword and its options.
func parseTag(tag string) (string, tagOptions) {
	parts := strings.Split(tag, ",")
	var opts tagOptions
	for _, p := range parts[1:] {
		switch p {
		case "lower":
			opts.lower = true
		case "positive":
			opts.positive = true
		}
	}
	return parts[0], opts
}

// coerceInto converts a raw keyword value into the target struct field. The
// coercion kind follows the field's Go type. It reports whether the field
// was set; on any parse failure the field is left untouched so the caller's
// fallback value survives.
func coerceInto(raw string, field reflect.Value, opts tagOptions) bool {
	switch field.Kind() {
	case reflect.Float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
		return fromCty(cty.NumberFloatVal(f), field)

	case reflect.Int:
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return false
		}
		return fromCty(cty.NumberIntVal(n), field)

	case reflect.String:
		v := raw
		if opts.lower {
			v = strings.ToLower(strings.TrimSpace(v))
		}
		return fromCty(cty.StringVal(v), field)

	case reflect.Bool:
		return fromCty(cty.BoolVal(truthyTokens[strings.ToLower(strings.TrimSpace(raw))]), field)

	case reflect.Slice:
		return coerceNumberList(raw, field, opts)
	}
	return false
}

// coerceNumberList splits the raw value on whitespace and keeps the finite
// tokens passing the field's filter. An empty result leaves the existing
// list untouched.
func coerceNumberList(raw string, field reflect.Value, opts tagOptions) bool {
	var vals []cty.Value
	for _, tok := range strings.Fields(raw) {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		if opts.positive && f <= 0 {
			continue
		}
		vals = append(vals, cty.NumberFloatVal(f))
	}
	if len(vals) == 0 {
		return false
	}
	return fromCty(cty.ListVal(vals), field)
}

// fromCty decodes a cty value into the addressable struct field.
func fromCty(val cty.Value, field reflect.Value) bool {
	return gocty.FromCtyValue(val, field.Addr().Interface()) == nil
}
