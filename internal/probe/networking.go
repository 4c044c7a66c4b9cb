// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"context"
	"fmt"
	"net"

	"github.com/ironcore-dev/inventory-probe/internal/api/inventory"
)

// Resolver resolves host names to addresses. *net.Resolver implements it.
type Resolver interface {
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

// LocalIPAddress resolves hostname and returns its first IPv4 address, or
// the first address of any family if there is no IPv4 one.
func LocalIPAddress(ctx context.Context, resolver Resolver, hostname string) inventory.Field[string] {
	addrs, err := resolver.LookupIPAddr(ctx, hostname)
	if err != nil {
		return inventory.Unavailable[string](fmt.Errorf("failed to resolve %s: %w", hostname, err))
	}
	if len(addrs) == 0 {
		return inventory.Unavailable[string](ErrEmptyOutput)
	}
	for _, addr := range addrs {
		if addr.IP.To4() != nil {
			return inventory.Available(addr.IP.String())
		}
	}
	return inventory.Available(addrs[0].IP.String())
}
