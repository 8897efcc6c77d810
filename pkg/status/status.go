// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package status renders the user-facing output of a sync run: one line
// per copy, skip or dry-run intention, plus the final summary block.
package status

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

// 🖨️ Printer serialises user-facing lines from concurrently running
// pipeline stages onto a single stream
type Printer struct {
	mu      sync.Mutex
	out     io.Writer
	copied  *pterm.PrefixPrinter
	skipped *pterm.PrefixPrinter
	intent  *pterm.PrefixPrinter
}

// 🏭 NewPrinter creates a printer writing to out
func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out:     out,
		copied:  pterm.Success.WithPrefix(pterm.Prefix{Text: "✓"}).WithWriter(out),
		skipped: pterm.Info.WithPrefix(pterm.Prefix{Text: "-"}).WithWriter(out),
		intent:  pterm.Info.WithPrefix(pterm.Prefix{Text: "…"}).WithWriter(out),
	}
}

// WouldCopy reports a dry-run intention.
func (p *Printer) WouldCopy(src, dest string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.intent.Printfln("would copy %s to %s", src, dest)
}

// Copied reports one completed copy.
func (p *Printer) Copied(src, dest string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.copied.Printfln("copied %s to %s", src, dest)
}

// Skipped reports a document that already exists on the device.
func (p *Printer) Skipped(dest string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.skipped.Printfln("%s already exists on the device; not copying", dest)
}

// Summary prints the final counts for a completed run. The documents
// directory labels are joined with " and ", matching found documents
// against the skipped and copied outcomes.
func (p *Printer) Summary(documentsDirs []string, found, skipped, copied int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	labels := strings.Join(documentsDirs, " and ")
	fmt.Fprintf(p.out,
		"\nFound documents in documents directories at %s: %s\n"+
			"Documents not copied because they already exist on the device: %s\n"+
			"Documents copied: %s\n",
		labels,
		color.CyanString("%d", found),
		color.HiBlackString("%d", skipped),
		color.GreenString("%d", copied),
	)
}
