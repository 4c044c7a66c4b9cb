// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package inventory

import "fmt"

const (
	// UnknownMediaType is used for disks that do not report a media type.
	UnknownMediaType = "Unknown"
	// DiskErrorPlaceholder replaces the whole disk list when it cannot be enumerated.
	DiskErrorPlaceholder = "Error al obtener discos"
)

// Inventory is everything gathered during a single run.
type Inventory struct {
	Identity SystemIdentity
	Hardware HardwareSummary
	Network  NetworkSummary
}

// SystemIdentity names the host and the installed operating system.
type SystemIdentity struct {
	Hostname        string
	SerialNumber    Field[string]
	OperatingSystem string
}

// HardwareSummary holds the processor, memory, board and disk details.
type HardwareSummary struct {
	CPU               Field[string]
	MemoryGB          Field[int]
	BoardManufacturer Field[string]
	BoardModel        Field[string]
	Disks             Field[[]DiskEntry]
}

// DiskEntry is a single physical drive, in the order the system reported it.
type DiskEntry struct {
	Model     string
	SizeGB    uint64
	MediaType string
}

// String formats the disk as "<model> (<size>GB) - <media type>".
func (d DiskEntry) String() string {
	return fmt.Sprintf("%s (%dGB) - %s", d.Model, d.SizeGB, d.MediaType)
}

// NetworkSummary holds the local address and the primary adapter MAC.
type NetworkSummary struct {
	IPAddress  Field[string]
	MACAddress Field[string]
}

// DiskLines returns one line per disk, or the single placeholder line if the
// disk list could not be obtained.
func (h HardwareSummary) DiskLines() []string {
	if !h.Disks.Ok() {
		return []string{DiskErrorPlaceholder}
	}
	lines := make([]string, 0, len(h.Disks.Value))
	for _, d := range h.Disks.Value {
		lines = append(lines, d.String())
	}
	return lines
}

// Board joins manufacturer and model the way the asset form expects them.
func (h HardwareSummary) Board() string {
	return h.BoardManufacturer.String() + " " + h.BoardModel.String()
}
