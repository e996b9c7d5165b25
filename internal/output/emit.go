// Copyright (c) 2025 The ai-pathfinder Authors.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strconv"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v2"

	"github.com/mitom/ai-pathfinder/internal/config"
	"github.com/mitom/ai-pathfinder/internal/filters"
)

// Formats accepted by Emit.
var Formats = []string{"text", "json", "yaml", "raw"}

// Options control Emit.
type Options struct {
	Format string
	Filter string
	Sort   string
	Query  string
	Color  bool
	Titles bool
}

// Emit filters and sorts the cavern rows of doc and renders it to w. The
// raw format is handled by the caller, which owns the encoded bytes.
func Emit(w io.Writer, doc Document, opts Options) error {
	rows, err := FilterRows(doc.Caverns, opts.Filter)
	if err != nil {
		return err
	}
	SortDataset(rows, opts.Sort)
	if doc.Caverns != nil {
		doc.Caverns = rows
	}

	switch opts.Format {
	case "json":
		b, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal json: %w", err)
		}
		if opts.Query != "" {
			res := gjson.GetBytes(b, opts.Query)
			if !res.Exists() {
				return fmt.Errorf("query %q matched nothing", opts.Query)
			}
			b = []byte(res.Raw)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		b, err := yaml.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	case "text", "":
		SummaryWriter(doc.Summary, w)
		if doc.Caverns != nil {
			fmt.Fprintln(w)
			TableWriter(doc.Caverns, RowKeys, opts, w)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", opts.Format)
	}
}

// FilterRows applies a --filter spec to rows. The rows round-trip through
// JSON so that filter keys are gjson paths.
func FilterRows(rows []map[string]interface{}, spec string) ([]map[string]interface{}, error) {
	if spec == "" || len(rows) == 0 {
		return rows, nil
	}
	b, err := json.Marshal(rows)
	if err != nil {
		return nil, err
	}
	filtered := filters.Rows(gjson.ParseBytes(b), spec)
	log.Debugf("filter %q kept %d of %d rows", spec, len(filtered), len(rows))
	if filtered == nil {
		filtered = []map[string]interface{}{}
	}
	return filtered, nil
}

// SummaryWriter renders s as an aligned two-column listing.
func SummaryWriter(s Summary, w io.Writer) {
	rows := [][]string{
		{"caverns", humanize.Comma(int64(s.Caverns))},
		{"passages", humanize.Comma(int64(s.Passages))},
		{"symmetric", strconv.FormatBool(s.Symmetric)},
		{"isolated", humanize.Comma(int64(s.Isolated))},
		{"mean out", strconv.FormatFloat(s.MeanOut, 'f', 2, 64)},
		{"x range", fmt.Sprintf("%d..%d", s.MinX, s.MaxX)},
		{"y range", fmt.Sprintf("%d..%d", s.MinY, s.MaxY)},
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		Headers().
		Rows(rows...)

	fmt.Fprintln(w, t)
}

// TableWriter renders the result set in a tabular form honoring color and
// titles options.
func TableWriter(resultSet []map[string]interface{}, keys []string, opts Options, w io.Writer) {
	if len(resultSet) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Right)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(lipgloss.Color(headerColor))
		evenRowStyle = evenRowStyle.Foreground(lipgloss.Color(evenColor))
		oddRowStyle = oddRowStyle.Foreground(lipgloss.Color(oddColor))
	}

	pad, _ := config.GetInt("padding", 1)

	var rows [][]string
	for _, result := range resultSet {
		row := make([]string, 0, len(keys))
		for _, k := range keys {
			row = append(row, InterfaceToString(result[k], "0"))
		}
		rows = append(rows, row)
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(keys...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// getColors returns configured color values for table rendering.
func getColors(key string) (header string, even string, odd string) {
	header, _ = config.GetString(fmt.Sprintf("%s.title", key), "#f6be00")
	even, _ = config.GetString(fmt.Sprintf("%s.even", key), "#ffffff")
	odd, _ = config.GetString(fmt.Sprintf("%s.odd", key), "#00c8f0")
	return
}

// GeneratedLine is the one-line report printed after a generation.
func GeneratedLine(path string, size int, s Summary, seed int64) string {
	return fmt.Sprintf("wrote %s caverns, %s passages to %s (%s, seed %d)",
		humanize.Comma(int64(s.Caverns)), humanize.Comma(int64(s.Passages)),
		path, humanize.Bytes(uint64(size)), seed)
}

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		// Row values are integral; JSON round trips turn them into float64.
		return fmt.Sprintf("%.0f", value)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}
