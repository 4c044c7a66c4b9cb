// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"context"
	"fmt"
	"net"
	"os"

	"github.com/go-logr/logr"
	"github.com/ironcore-dev/inventory-probe/internal/api/inventory"
)

// Probe gathers the inventory of the host it runs on.
type Probe struct {
	Source   Source
	Resolver Resolver
	// Hostname and OperatingSystem are the identity lookups. They are not
	// expected to fail on a supported host, so their errors abort Collect.
	Hostname        func() (string, error)
	OperatingSystem func() (string, error)
	log             logr.Logger
}

// NewProbe creates a Probe that reads hardware fields from source.
func NewProbe(log logr.Logger, source Source) *Probe {
	return &Probe{
		Source:          source,
		Resolver:        net.DefaultResolver,
		Hostname:        os.Hostname,
		OperatingSystem: OperatingSystem,
		log:             log,
	}
}

// Collect runs every query once, in order: identity, hardware, disks,
// network. Only an identity failure is returned as an error; all other
// failures are recorded in the affected field.
func (p *Probe) Collect(ctx context.Context) (*inventory.Inventory, error) {
	hostname, err := p.Hostname()
	if err != nil {
		return nil, fmt.Errorf("failed to get hostname: %w", err)
	}
	osName, err := p.OperatingSystem()
	if err != nil {
		return nil, fmt.Errorf("failed to get operating system: %w", err)
	}

	inv := &inventory.Inventory{
		Identity: inventory.SystemIdentity{
			Hostname:        hostname,
			SerialNumber:    p.Source.SerialNumber(ctx),
			OperatingSystem: osName,
		},
	}

	inv.Hardware = inventory.HardwareSummary{
		CPU:               p.Source.CPU(ctx),
		MemoryGB:          p.Source.MemoryGB(ctx),
		BoardManufacturer: p.Source.BoardManufacturer(ctx),
		BoardModel:        p.Source.BoardModel(ctx),
	}
	inv.Hardware.Disks = p.Source.Disks(ctx)

	inv.Network = inventory.NetworkSummary{
		IPAddress:  LocalIPAddress(ctx, p.Resolver, hostname),
		MACAddress: p.Source.MACAddress(ctx),
	}
	if !inv.Network.IPAddress.Ok() {
		p.log.V(1).Info("Field not available", "field", "ipAddress", "error", inv.Network.IPAddress.Err.Error())
	}

	p.log.V(1).Info("Collected inventory", "hostname", hostname, "disks", len(inv.Hardware.DiskLines()))
	return inv, nil
}
