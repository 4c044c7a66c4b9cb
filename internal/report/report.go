// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

// Package report renders an inventory in the layout of the asset form.
package report

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ironcore-dev/inventory-probe/internal/api/inventory"
)

const (
	Title  = "GALPE - EXTRACTOR DE INFORMACIÓN TÉCNICA (WINDOWS)"
	Footer = "Copia estos datos en la Ficha Técnica de la aplicación."
	Prompt = "Presiona Enter para salir..."

	ruleWidth = 60
)

// printer remembers the first write error so a report can be written
// without checking every line.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) field(label, value string) {
	p.printf(" %-17s%s\n", label+":", value)
}

// Header prints the banner shown while the inventory is being collected.
func Header(w io.Writer) error {
	p := &printer{w: w}
	p.printf("%s\n", strings.Repeat("=", ruleWidth))
	p.printf(" %s\n", Title)
	p.printf("%s\n", strings.Repeat("=", ruleWidth))
	p.printf("Obteniendo datos del sistema... por favor espere.\n")
	return p.err
}

// Render prints the identification, hardware, disk and network sections
// followed by the transcription instruction.
func Render(w io.Writer, inv *inventory.Inventory) error {
	p := &printer{w: w}
	rule := strings.Repeat("-", ruleWidth)

	p.printf("\n%s\n", rule)
	p.printf(" IDENTIFICACIÓN\n")
	p.field("Nombre Equipo", inv.Identity.Hostname)
	p.field("Etiqueta/Serial", inv.Identity.SerialNumber.String())
	p.field("S.O.", inv.Identity.OperatingSystem)

	p.printf("\n ESPECIFICACIONES (Pestaña Ficha Técnica)\n")
	p.field("Procesador", inv.Hardware.CPU.String())
	p.field("Memoria RAM", memory(inv.Hardware.MemoryGB))
	p.field("Placa Base", inv.Hardware.Board())

	p.printf("\n DISCOS:\n")
	for _, line := range inv.Hardware.DiskLines() {
		p.printf(" - %s\n", line)
	}

	p.printf("\n RED (Pestaña Red/Periféricos)\n")
	p.field("IP Local", inv.Network.IPAddress.String())
	p.field("MAC Address", inv.Network.MACAddress.String())
	p.printf("%s\n", rule)
	p.printf("\n%s\n", Footer)
	return p.err
}

func memory(f inventory.Field[int]) string {
	if !f.Ok() {
		return inventory.NotAvailable
	}
	return fmt.Sprintf("%d GB", f.Value)
}

// Pause prints Prompt and blocks until a line or EOF is read from r, or until
// ctx is done. The read is not interrupted on cancellation; the process is
// expected to exit.
func Pause(ctx context.Context, r io.Reader, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "\n%s", Prompt); err != nil {
		return err
	}
	read := make(chan error, 1)
	go func() {
		_, err := bufio.NewReader(r).ReadString('\n')
		read <- err
	}()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-read:
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read acknowledgment: %w", err)
		}
		return nil
	}
}
