// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-logr/logr"
	"github.com/ironcore-dev/inventory-probe/internal/api/inventory"
	"github.com/jaypipes/ghw"
	"github.com/siderolabs/go-smbios/smbios"
)

// NativeSource answers field queries through typed system-management APIs
// instead of shell command strings.
type NativeSource struct {
	log logr.Logger
}

// NewNativeSource creates a NativeSource.
func NewNativeSource(log logr.Logger) *NativeSource {
	return &NativeSource{log: log}
}

// SerialNumber returns the BIOS serial number.
func (s *NativeSource) SerialNumber(_ context.Context) inventory.Field[string] {
	serial, err := biosSerialNumber()
	if err != nil {
		return unavailable[string](s.log, "serialNumber", err)
	}
	return s.known("serialNumber", serial)
}

// CPU returns the processor name.
func (s *NativeSource) CPU(_ context.Context) inventory.Field[string] {
	cpuInfo, err := ghw.CPU()
	if err != nil {
		return unavailable[string](s.log, "cpu", fmt.Errorf("failed to get CPU info: %w", err))
	}
	if len(cpuInfo.Processors) == 0 {
		return unavailable[string](s.log, "cpu", ErrEmptyOutput)
	}
	return s.known("cpu", cpuInfo.Processors[0].Model)
}

// MemoryGB sums the installed memory devices reported by SMBIOS.
func (s *NativeSource) MemoryGB(_ context.Context) inventory.Field[int] {
	sm, err := smbios.New()
	if err != nil {
		return unavailable[int](s.log, "memory", fmt.Errorf("failed to read SMBIOS: %w", err))
	}
	var total uint64
	for _, m := range sm.MemoryDevices {
		if m.Size == 0 {
			continue
		}
		total += uint64(m.Size.Megabytes()) * 1024 * 1024
	}
	if total == 0 {
		return unavailable[int](s.log, "memory", ErrEmptyOutput)
	}
	return inventory.Available(roundGB(total))
}

// BoardManufacturer returns the baseboard manufacturer.
func (s *NativeSource) BoardManufacturer(_ context.Context) inventory.Field[string] {
	baseboard, err := ghw.Baseboard()
	if err != nil {
		return unavailable[string](s.log, "boardManufacturer", fmt.Errorf("failed to get baseboard info: %w", err))
	}
	return s.known("boardManufacturer", baseboard.Vendor)
}

// BoardModel returns the baseboard product name.
func (s *NativeSource) BoardModel(_ context.Context) inventory.Field[string] {
	baseboard, err := ghw.Baseboard()
	if err != nil {
		return unavailable[string](s.log, "boardModel", fmt.Errorf("failed to get baseboard info: %w", err))
	}
	return s.known("boardModel", baseboard.Product)
}

// Disks returns the physical drives in enumeration order.
func (s *NativeSource) Disks(_ context.Context) inventory.Field[[]inventory.DiskEntry] {
	blockStorage, err := ghw.Block()
	if err != nil {
		return unavailable[[]inventory.DiskEntry](s.log, "disks", fmt.Errorf("failed to get block devices: %w", err))
	}
	return inventory.Available(disksFromBlock(blockStorage))
}

// MACAddress returns the MAC of the first IP-enabled adapter.
func (s *NativeSource) MACAddress(_ context.Context) inventory.Field[string] {
	macs, err := adapterMACAddresses()
	if err != nil {
		return unavailable[string](s.log, "macAddress", err)
	}
	if len(macs) == 0 {
		return unavailable[string](s.log, "macAddress", ErrEmptyOutput)
	}
	return inventory.Available(macs[0])
}

// known drops the placeholder ghw uses for values the firmware left blank.
func (s *NativeSource) known(field, value string) inventory.Field[string] {
	value = strings.TrimSpace(value)
	if value == "" || strings.EqualFold(value, "unknown") {
		return unavailable[string](s.log, field, ErrEmptyOutput)
	}
	return inventory.Available(value)
}

func disksFromBlock(info *ghw.BlockInfo) []inventory.DiskEntry {
	disks := make([]inventory.DiskEntry, 0, len(info.Disks))
	for _, d := range info.Disks {
		disks = append(disks, inventory.DiskEntry{
			Model:     d.Model,
			SizeGB:    d.SizeBytes / gibibyte,
			MediaType: mediaType(d.DriveType.String()),
		})
	}
	return disks
}
