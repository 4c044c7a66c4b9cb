// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"fmt"
	"strconv"
)

// Windows 11 still reports major version 10; it is told apart by build number.
const firstWindows11Build = 22000

func describeWindows(major, minor, build uint32) string {
	release := strconv.FormatUint(uint64(major), 10)
	if major == 10 && build >= firstWindows11Build {
		release = "11"
	}
	return fmt.Sprintf("Windows %s (Build %d.%d.%d)", release, major, minor, build)
}
