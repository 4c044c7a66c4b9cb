// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

//go:build !windows

package probe

import "fmt"

func biosSerialNumber() (string, error) {
	return "", fmt.Errorf("BIOS serial number: %w", ErrUnsupported)
}

func adapterMACAddresses() ([]string, error) {
	return nil, fmt.Errorf("adapter MAC addresses: %w", ErrUnsupported)
}
