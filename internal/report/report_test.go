// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package report_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing/iotest"

	"github.com/ironcore-dev/inventory-probe/internal/api/inventory"
	"github.com/ironcore-dev/inventory-probe/internal/report"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/types"
)

var errBoom = errors.New("boom")

// sayLine matches s literally, after whatever was matched before.
func sayLine(s string) types.GomegaMatcher {
	return gbytes.Say(regexp.QuoteMeta(s))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errBoom
}

var _ = Describe("Report", func() {
	var (
		full *inventory.Inventory
		buf  *gbytes.Buffer
	)

	BeforeEach(func() {
		buf = gbytes.NewBuffer()
		full = &inventory.Inventory{
			Identity: inventory.SystemIdentity{
				Hostname:        "PC-OFICINA-07",
				SerialNumber:    inventory.Available("MXL1234ABC"),
				OperatingSystem: "Windows 10 (Build 10.0.19045)",
			},
			Hardware: inventory.HardwareSummary{
				CPU:               inventory.Available("Intel(R) Core(TM) i5-8400 CPU @ 2.80GHz"),
				MemoryGB:          inventory.Available(16),
				BoardManufacturer: inventory.Available("ASUSTeK COMPUTER INC."),
				BoardModel:        inventory.Available("PRIME B360M-A"),
				Disks: inventory.Available([]inventory.DiskEntry{
					{Model: "Samsung SSD 860 EVO 500GB", SizeGB: 465, MediaType: "Fixed hard disk media"},
					{Model: "WDC WD10EZEX-08WN4A0", SizeGB: 931, MediaType: inventory.UnknownMediaType},
				}),
			},
			Network: inventory.NetworkSummary{
				IPAddress:  inventory.Available("192.168.10.47"),
				MACAddress: inventory.Available("00:1A:2B:3C:4D:5E"),
			},
		}
	})

	Describe("Header", func() {
		It("prints the banner and the wait notice", func() {
			Expect(report.Header(buf)).To(Succeed())
			rule := strings.Repeat("=", 60)
			Expect(string(buf.Contents())).To(Equal(rule + "\n" +
				" " + report.Title + "\n" +
				rule + "\n" +
				"Obteniendo datos del sistema... por favor espere.\n"))
		})
	})

	Describe("Render", func() {
		It("prints every section in form order", func() {
			Expect(report.Render(buf, full)).To(Succeed())

			Expect(buf).To(sayLine(" IDENTIFICACIÓN\n"))
			Expect(buf).To(sayLine(" Nombre Equipo:   PC-OFICINA-07\n"))
			Expect(buf).To(sayLine(" Etiqueta/Serial: MXL1234ABC\n"))
			Expect(buf).To(sayLine(" S.O.:            Windows 10 (Build 10.0.19045)\n"))
			Expect(buf).To(sayLine(" ESPECIFICACIONES (Pestaña Ficha Técnica)\n"))
			Expect(buf).To(sayLine(" Procesador:      Intel(R) Core(TM) i5-8400 CPU @ 2.80GHz\n"))
			Expect(buf).To(sayLine(" Memoria RAM:     16 GB\n"))
			Expect(buf).To(sayLine(" Placa Base:      ASUSTeK COMPUTER INC. PRIME B360M-A\n"))
			Expect(buf).To(sayLine(" DISCOS:\n"))
			Expect(buf).To(sayLine(" - Samsung SSD 860 EVO 500GB (465GB) - Fixed hard disk media\n"))
			Expect(buf).To(sayLine(" - WDC WD10EZEX-08WN4A0 (931GB) - Unknown\n"))
			Expect(buf).To(sayLine(" RED (Pestaña Red/Periféricos)\n"))
			Expect(buf).To(sayLine(" IP Local:        192.168.10.47\n"))
			Expect(buf).To(sayLine(" MAC Address:     00:1A:2B:3C:4D:5E\n"))
			Expect(buf).To(sayLine(strings.Repeat("-", 60) + "\n"))
			Expect(buf).To(sayLine(report.Footer + "\n"))
		})

		It("prints N/A for every unavailable field", func() {
			inv := &inventory.Inventory{
				Identity: inventory.SystemIdentity{
					Hostname:        "PC-01",
					SerialNumber:    inventory.Unavailable[string](errBoom),
					OperatingSystem: "Windows 11 (Build 10.0.22631)",
				},
				Hardware: inventory.HardwareSummary{
					CPU:               inventory.Unavailable[string](errBoom),
					MemoryGB:          inventory.Unavailable[int](errBoom),
					BoardManufacturer: inventory.Unavailable[string](errBoom),
					BoardModel:        inventory.Unavailable[string](errBoom),
					Disks:             inventory.Unavailable[[]inventory.DiskEntry](errBoom),
				},
				Network: inventory.NetworkSummary{
					IPAddress:  inventory.Unavailable[string](errBoom),
					MACAddress: inventory.Unavailable[string](errBoom),
				},
			}
			Expect(report.Render(buf, inv)).To(Succeed())

			Expect(buf).To(sayLine(" Etiqueta/Serial: N/A\n"))
			Expect(buf).To(sayLine(" Procesador:      N/A\n"))
			Expect(buf).To(sayLine(" Memoria RAM:     N/A\n"))
			Expect(buf).To(sayLine(" Placa Base:      N/A N/A\n"))
			Expect(buf).To(sayLine(" DISCOS:\n - " + inventory.DiskErrorPlaceholder + "\n\n"))
			Expect(buf).To(sayLine(" IP Local:        N/A\n"))
			Expect(buf).To(sayLine(" MAC Address:     N/A\n"))
		})

		It("prints an empty disk section when there are no disks", func() {
			full.Hardware.Disks = inventory.Available([]inventory.DiskEntry{})
			Expect(report.Render(buf, full)).To(Succeed())
			Expect(buf).To(sayLine(" DISCOS:\n\n RED"))
		})

		It("returns the first write error", func() {
			Expect(report.Render(failingWriter{}, full)).To(MatchError(errBoom))
		})
	})

	Describe("Pause", func() {
		var ctx context.Context

		BeforeEach(func() {
			ctx = context.Background()
		})

		It("waits for a line after printing the prompt", func() {
			Expect(report.Pause(ctx, strings.NewReader("\n"), buf)).To(Succeed())
			Expect(string(buf.Contents())).To(Equal("\n" + report.Prompt))
		})

		It("returns at end of input", func() {
			Expect(report.Pause(ctx, strings.NewReader(""), buf)).To(Succeed())
		})

		It("fails when input cannot be read", func() {
			Expect(report.Pause(ctx, iotest.ErrReader(errBoom), &bytes.Buffer{})).To(MatchError(errBoom))
		})

		It("stops waiting when the context is cancelled", func() {
			pr, pw := io.Pipe()
			DeferCleanup(pw.Close)
			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			Expect(report.Pause(cancelled, pr, buf)).To(MatchError(context.Canceled))
			Expect(buf).To(sayLine(report.Prompt))
		})

		It("fails when the prompt cannot be written", func() {
			Expect(report.Pause(ctx, strings.NewReader("\n"), failingWriter{})).To(MatchError(errBoom))
		})
	})
})
