// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

//go:build !windows

package probe

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// OperatingSystem describes the running OS as "<system> <release> (Build <version>)".
func OperatingSystem() (string, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return "", fmt.Errorf("failed to get uname: %w", err)
	}
	return fmt.Sprintf("%s %s (Build %s)",
		unix.ByteSliceToString(u.Sysname[:]),
		unix.ByteSliceToString(u.Release[:]),
		unix.ByteSliceToString(u.Version[:]),
	), nil
}
