// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

//go:build windows

package probe

import "golang.org/x/sys/windows"

// OperatingSystem describes the running OS as "Windows <release> (Build <version>)".
func OperatingSystem() (string, error) {
	v := windows.RtlGetVersion()
	return describeWindows(v.MajorVersion, v.MinorVersion, v.BuildNumber), nil
}
