// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package probe

import (
	"fmt"

	"github.com/yusufpapurcu/wmi"
	"k8s.io/utils/ptr"
)

type win32BIOS struct {
	SerialNumber string
}

type win32NetworkAdapterConfiguration struct {
	MACAddress *string
}

func biosSerialNumber() (string, error) {
	var bios []win32BIOS
	if err := wmi.Query("SELECT SerialNumber FROM Win32_BIOS", &bios); err != nil {
		return "", fmt.Errorf("failed to query Win32_BIOS: %w", err)
	}
	if len(bios) == 0 {
		return "", ErrEmptyOutput
	}
	return bios[0].SerialNumber, nil
}

// adapterMACAddresses returns the MACs of all IP-enabled adapters in WMI order.
func adapterMACAddresses() ([]string, error) {
	var adapters []win32NetworkAdapterConfiguration
	if err := wmi.Query("SELECT MACAddress FROM Win32_NetworkAdapterConfiguration WHERE IPEnabled = TRUE", &adapters); err != nil {
		return nil, fmt.Errorf("failed to query Win32_NetworkAdapterConfiguration: %w", err)
	}
	macs := make([]string, 0, len(adapters))
	for _, a := range adapters {
		if mac := ptr.Deref(a.MACAddress, ""); mac != "" {
			macs = append(macs, mac)
		}
	}
	return macs, nil
}
