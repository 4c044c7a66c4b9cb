// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ironcore-dev/inventory-probe/internal/api/inventory"
	"k8s.io/utils/ptr"
)

const gibibyte = 1 << 30

// diskRecord is one element of
// `Get-CimInstance Win32_DiskDrive | Select-Object Model, Size, MediaType | ConvertTo-Json`.
type diskRecord struct {
	Model     json.RawMessage `json:"Model"`
	Size      json.RawMessage `json:"Size"`
	MediaType *string         `json:"MediaType"`
}

// ParseMemoryGB converts a raw byte count into whole gigabytes, rounding to
// the nearest value with ties to even. Anything but a plain decimal number
// yields an unavailable field.
func ParseMemoryGB(raw string) inventory.Field[int] {
	if !isDigits(raw) {
		return inventory.Unavailable[int](fmt.Errorf("%w: memory capacity %q", ErrMalformedOutput, raw))
	}
	total, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return inventory.Unavailable[int](fmt.Errorf("%w: memory capacity %q: %w", ErrMalformedOutput, raw, err))
	}
	return inventory.Available(roundGB(total))
}

func roundGB(b uint64) int {
	return int(math.RoundToEven(float64(b) / gibibyte))
}

func isDigits(s string) bool {
	return s != "" && strings.Trim(s, "0123456789") == ""
}

// ParseDisks decodes the serialized disk list. A single object is treated as
// a one-element list. Any problem with the input fails the whole list; only
// Size and MediaType have defaults.
func ParseDisks(raw string) ([]inventory.DiskEntry, error) {
	data := bytes.TrimSpace([]byte(raw))
	if len(data) == 0 {
		return nil, ErrEmptyOutput
	}

	var records []diskRecord
	if data[0] == '{' {
		var single diskRecord
		if err := json.Unmarshal(data, &single); err != nil {
			return nil, fmt.Errorf("failed to decode disk: %w", err)
		}
		records = []diskRecord{single}
	} else {
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("failed to decode disk list: %w", err)
		}
		if records == nil {
			return nil, fmt.Errorf("%w: disk list is null", ErrMalformedOutput)
		}
	}

	disks := make([]inventory.DiskEntry, 0, len(records))
	for i, r := range records {
		model, err := parseModel(r.Model)
		if err != nil {
			return nil, fmt.Errorf("disk %d: %w", i, err)
		}
		disks = append(disks, inventory.DiskEntry{
			Model:     model,
			SizeGB:    parseSize(r.Size) / gibibyte,
			MediaType: mediaType(ptr.Deref(r.MediaType, "")),
		})
	}
	return disks, nil
}

// parseModel requires the Model key to be present. A null model is kept and
// rendered as inventory.NotAvailable.
func parseModel(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", fmt.Errorf("%w: no model", ErrMalformedOutput)
	}
	if string(raw) == "null" {
		return inventory.NotAvailable, nil
	}
	var model string
	if err := json.Unmarshal(raw, &model); err != nil {
		return "", fmt.Errorf("%w: model: %w", ErrMalformedOutput, err)
	}
	return model, nil
}

// parseSize accepts the size as a JSON number or a numeric string. Missing or
// unparseable sizes count as 0 bytes.
func parseSize(raw json.RawMessage) uint64 {
	if len(raw) == 0 || string(raw) == "null" {
		return 0
	}
	s := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
	}
	size, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}
	return size
}

func mediaType(s string) string {
	if s = strings.TrimSpace(s); s == "" || strings.EqualFold(s, "unknown") {
		return inventory.UnknownMediaType
	}
	return s
}

// FirstValue returns the first non-empty line of a possibly multi-valued
// query result.
func FirstValue(raw string) (string, bool) {
	for line := range strings.Lines(raw) {
		if v := strings.TrimSpace(line); v != "" {
			return v, true
		}
	}
	return "", false
}
