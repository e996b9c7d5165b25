// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"sort"
	"strings"
)

// SortDataset orders data in place by a comma-separated list of keys. A
// leading '-' sorts descending and a leading '!' compares strings case
// sensitively. Numbers compare numerically. The sort is stable.
func SortDataset(data []map[string]interface{}, spec string) {
	if spec == "" {
		return
	}

	type key struct {
		name      string
		desc      bool
		sensitive bool
	}

	var keys []key
	for _, part := range strings.Split(spec, ",") {
		k := key{name: strings.TrimSpace(part)}
		for len(k.name) > 0 && (k.name[0] == '-' || k.name[0] == '!') {
			if k.name[0] == '-' {
				k.desc = true
			} else {
				k.sensitive = true
			}
			k.name = k.name[1:]
		}
		if k.name != "" {
			keys = append(keys, k)
		}
	}

	sort.SliceStable(data, func(i, j int) bool {
		for _, k := range keys {
			c := compare(data[i][k.name], data[j][k.name], k.sensitive)
			if c == 0 {
				continue
			}
			if k.desc {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

// compare orders two values, numbers before strings and nil last.
func compare(a, b interface{}, sensitive bool) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return 1
		default:
			return -1
		}
	}

	fa, aNum := toFloat(a)
	fb, bNum := toFloat(b)
	switch {
	case aNum && bNum:
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	case aNum:
		return -1
	case bNum:
		return 1
	}

	sa, sb := InterfaceToString(a), InterfaceToString(b)
	if !sensitive {
		sa, sb = strings.ToLower(sa), strings.ToLower(sb)
	}
	return strings.Compare(sa, sb)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
