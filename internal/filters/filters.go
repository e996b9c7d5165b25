// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

// Package filters selects cavern rows with --filter clauses such as
// "out>0,region=exit".
package filters

import (
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"
)

// A clause is key, an optional '!', one operator rune and the target.
var clause = regexp.MustCompile(`^(.*?)(!?)([=^~<>@/])(.*)$`)

// Filter is one parsed clause. Key is a gjson path into the row.
type Filter struct {
	Key    string
	Negate bool
	Op     string
	Target string
}

// Parse splits spec on CAVEGEN_FILTER_DELIM, "," by default. Malformed
// clauses are logged and dropped.
func Parse(spec string) []Filter {
	if spec == "" {
		return nil
	}

	delim := ","
	if d, ok := os.LookupEnv("CAVEGEN_FILTER_DELIM"); ok && d != "" {
		delim = d
	}

	var out []Filter
	for _, c := range strings.Split(spec, delim) {
		m := clause.FindStringSubmatch(c)
		if m == nil {
			log.Errorf("invalid filter: %s", c)
			continue
		}
		out = append(out, Filter{Key: m[1], Negate: m[2] == "!", Op: m[3], Target: m[4]})
	}
	return out
}

// Rows returns the objects of the JSON array rows that satisfy every clause
// in spec.
func Rows(rows gjson.Result, spec string) []map[string]any {
	fs := Parse(spec)

	var out []map[string]any
	for _, row := range rows.Array() {
		if !Match(row, fs) {
			continue
		}
		obj, ok := row.Value().(map[string]any)
		if !ok {
			log.Debugf("skipping non-object row: %s", row.Raw)
			continue
		}
		out = append(out, obj)
	}
	return out
}

// Match reports whether row satisfies every filter. A key the row lacks is
// logged and does not count against it.
func Match(row gjson.Result, fs []Filter) bool {
	for _, f := range fs {
		v := row.Get(f.Key)
		if !v.Exists() {
			log.Warnf("filter key not found: %s", f.Key)
			continue
		}
		if !f.test(v) {
			return false
		}
	}
	return true
}

func (f Filter) test(v gjson.Result) bool {
	switch {
	case v.Type == gjson.Null:
		return false
	case v.Type == gjson.Number:
		return f.number(v.Num)
	case v.IsArray():
		return f.member(v)
	case v.IsObject():
		if f.Op != "@" {
			return false
		}
		return v.Get(gjson.Escape(f.Target)).Exists() != f.Negate
	default:
		// strings and booleans compare as text
		return f.text(v.String())
	}
}

func (f Filter) member(v gjson.Result) bool {
	if f.Op != "@" {
		return false
	}
	for _, item := range v.Array() {
		if item.String() == f.Target {
			return !f.Negate
		}
	}
	return f.Negate
}

func (f Filter) number(n float64) bool {
	target, err := strconv.ParseFloat(strings.TrimSpace(f.Target), 64)
	if err != nil {
		log.Errorf("invalid numeric target: %s", f.Target)
		return false
	}

	var ok bool
	switch f.Op {
	case "=":
		ok = n == target
	case "<":
		ok = n < target
	case ">":
		ok = n > target
	default:
		log.Errorf("operator %s does not apply to numbers", f.Op)
		return false
	}
	return ok != f.Negate
}

func (f Filter) text(s string) bool {
	var ok bool
	switch f.Op {
	case "=":
		ok = s == f.Target
	case "~":
		ok = strings.EqualFold(s, f.Target)
	case "^":
		ok = strings.HasPrefix(s, f.Target)
	case "<":
		ok = s < f.Target
	case ">":
		ok = s > f.Target
	case "@":
		ok = strings.Contains(s, f.Target)
	case "/":
		re, err := regexp.Compile(f.Target)
		if err != nil {
			log.Errorf("invalid regex: %s", f.Target)
			return false
		}
		ok = re.MatchString(s)
	}
	return ok != f.Negate
}
