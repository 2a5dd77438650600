// Package output renders command results as JSON, YAML or a table.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"text/tabwriter"

	units "github.com/docker/go-units"
	"gopkg.in/yaml.v3"

	"github.com/projecteru2/vboxctl/types"
)

// Format represents an output format type.
type Format string

const (
	// FormatJSON is the default, machine-consumable format.
	FormatJSON Format = "json"
	// FormatYAML mirrors the JSON shape in YAML.
	FormatYAML Format = "yaml"
	// FormatTable is a human-readable table. Values without a table layout
	// fall back to JSON.
	FormatTable Format = "table"
)

// ValidateFormat checks if a format string is valid.
func ValidateFormat(format string) error {
	switch Format(format) {
	case FormatJSON, FormatYAML, FormatTable:
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid formats: json, yaml, table)", format)
	}
}

// Write renders v to w in the given format.
func Write(w io.Writer, format Format, v any) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2) //nolint:mnd
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTable:
		return writeTable(w, v)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// Sprint renders v and returns it as a string.
func Sprint(format Format, v any) (string, error) {
	var buf bytes.Buffer
	if err := Write(&buf, format, v); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeTable(w io.Writer, v any) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0) //nolint:mnd
	switch t := v.(type) {
	case []*types.VMSummary:
		if len(t) == 0 {
			_, _ = fmt.Fprintln(w, "No VMs found.")
			return nil
		}
		_, _ = fmt.Fprintln(tw, "NAME\tUUID")
		for _, vm := range t {
			_, _ = fmt.Fprintf(tw, "%s\t%s\n", vm.Name, vm.UUID)
		}
	case types.VMInfo:
		_, _ = fmt.Fprintln(tw, "KEY\tVALUE")
		for _, k := range slices.Sorted(maps.Keys(t)) {
			_, _ = fmt.Fprintf(tw, "%s\t%s\n", k, infoValue(k, t[k]))
		}
	case *types.WaitOutcome:
		_, _ = fmt.Fprintln(tw, "VM\tSTATE\tSTATUS")
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", t.VM, t.State, t.Status)
	default:
		return Write(w, FormatJSON, v)
	}
	return tw.Flush()
}

// sizeKeys are machine-readable keys VBoxManage reports in megabytes.
var sizeKeys = map[string]bool{"memory": true, "vram": true}

// infoValue renders megabyte sizes as human-readable bytes; everything else
// is printed as reported.
func infoValue(key, value string) string {
	if !sizeKeys[key] {
		return value
	}
	mb, err := strconv.ParseInt(value, 10, 64)
	if err != nil || mb < 0 {
		return value
	}
	return units.BytesSize(float64(mb * units.MiB))
}
