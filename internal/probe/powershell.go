// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/ironcore-dev/inventory-probe/internal/api/inventory"
)

const (
	querySerialNumber      = "(Get-CimInstance Win32_Bios).SerialNumber"
	queryCPU               = "(Get-CimInstance Win32_Processor).Name"
	queryMemory            = "(Get-CimInstance Win32_PhysicalMemory | Measure-Object -Property Capacity -Sum).Sum"
	queryBoardManufacturer = "(Get-CimInstance Win32_BaseBoard).Manufacturer"
	queryBoardModel        = "(Get-CimInstance Win32_BaseBoard).Product"
	queryDisks             = "Get-CimInstance Win32_DiskDrive | Select-Object Model, Size, MediaType | ConvertTo-Json"
	queryMACAddress        = "(Get-CimInstance Win32_NetworkAdapterConfiguration | Where-Object {$_.IPEnabled -eq $true}).MACAddress"
)

// PowerShellSource answers field queries with CIM one-liners run through a
// management shell. None of the query strings take external input.
type PowerShellSource struct {
	shell *Shell
	log   logr.Logger
}

// NewPowerShellSource creates a PowerShellSource running its queries on shell.
func NewPowerShellSource(log logr.Logger, shell *Shell) *PowerShellSource {
	return &PowerShellSource{
		shell: shell,
		log:   log,
	}
}

// SerialNumber returns the BIOS serial number.
func (s *PowerShellSource) SerialNumber(ctx context.Context) inventory.Field[string] {
	return s.scalar(ctx, "serialNumber", querySerialNumber)
}

// CPU returns the processor name.
func (s *PowerShellSource) CPU(ctx context.Context) inventory.Field[string] {
	return s.scalar(ctx, "cpu", queryCPU)
}

// MemoryGB returns the installed memory in whole gigabytes.
func (s *PowerShellSource) MemoryGB(ctx context.Context) inventory.Field[int] {
	out := s.shell.Query(ctx, queryMemory)
	if !out.Ok() {
		return inventory.Unavailable[int](out.Err)
	}
	ram := ParseMemoryGB(out.Value)
	if !ram.Ok() {
		return unavailable[int](s.log, "memory", ram.Err)
	}
	return ram
}

// BoardManufacturer returns the baseboard manufacturer.
func (s *PowerShellSource) BoardManufacturer(ctx context.Context) inventory.Field[string] {
	return s.scalar(ctx, "boardManufacturer", queryBoardManufacturer)
}

// BoardModel returns the baseboard product name.
func (s *PowerShellSource) BoardModel(ctx context.Context) inventory.Field[string] {
	return s.scalar(ctx, "boardModel", queryBoardModel)
}

// Disks returns the physical drives in enumeration order.
func (s *PowerShellSource) Disks(ctx context.Context) inventory.Field[[]inventory.DiskEntry] {
	out := s.shell.Query(ctx, queryDisks)
	if !out.Ok() {
		return inventory.Unavailable[[]inventory.DiskEntry](out.Err)
	}
	disks, err := ParseDisks(out.Value)
	if err != nil {
		return unavailable[[]inventory.DiskEntry](s.log, "disks", err)
	}
	return inventory.Available(disks)
}

// MACAddress returns the MAC of the first IP-enabled adapter.
func (s *PowerShellSource) MACAddress(ctx context.Context) inventory.Field[string] {
	out := s.shell.Query(ctx, queryMACAddress)
	if !out.Ok() {
		return out
	}
	mac, ok := FirstValue(out.Value)
	if !ok {
		return unavailable[string](s.log, "macAddress", ErrEmptyOutput)
	}
	return inventory.Available(mac)
}

func (s *PowerShellSource) scalar(ctx context.Context, field, query string) inventory.Field[string] {
	out := s.shell.Query(ctx, query)
	if out.Ok() && out.Value == "" {
		return unavailable[string](s.log, field, ErrEmptyOutput)
	}
	return out
}
