// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/ironcore-dev/inventory-probe/internal/api/inventory"
)

const (
	// SourcePowerShell queries CIM classes through powershell one-liners.
	SourcePowerShell = "powershell"
	// SourceNative queries the same data through typed system APIs.
	SourceNative = "native"
)

var (
	ErrEmptyOutput     = errors.New("query returned no output")
	ErrMalformedOutput = errors.New("malformed query output")
	ErrUnsupported     = errors.New("not supported on this platform")
)

// Source answers the per-field hardware and network queries. Every method is
// best effort: failures come back as unavailable fields, never as errors.
type Source interface {
	SerialNumber(ctx context.Context) inventory.Field[string]
	CPU(ctx context.Context) inventory.Field[string]
	MemoryGB(ctx context.Context) inventory.Field[int]
	BoardManufacturer(ctx context.Context) inventory.Field[string]
	BoardModel(ctx context.Context) inventory.Field[string]
	Disks(ctx context.Context) inventory.Field[[]inventory.DiskEntry]
	MACAddress(ctx context.Context) inventory.Field[string]
}

// SourceNames lists the values accepted by NewSource.
func SourceNames() []string {
	return []string{SourcePowerShell, SourceNative}
}

// NewSource creates the named Source.
func NewSource(log logr.Logger, name string) (Source, error) {
	switch name {
	case SourcePowerShell:
		return NewPowerShellSource(log, NewPowerShell(log, NewExecRunner())), nil
	case SourceNative:
		return NewNativeSource(log), nil
	default:
		return nil, fmt.Errorf("unknown source %q, must be one of %v", name, SourceNames())
	}
}

// unavailable logs why a field could not be filled and returns it empty.
func unavailable[T any](log logr.Logger, field string, err error) inventory.Field[T] {
	log.V(1).Info("Field not available", "field", field, "error", err.Error())
	return inventory.Unavailable[T](err)
}
