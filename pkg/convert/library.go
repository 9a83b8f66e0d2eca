package convert

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/OpenTraceLab/orcad2kicad/pkg/orcad"
)

// LibraryVersion is the KiCad 6.0 symbol library format version
const LibraryVersion = 20211014

// Draw writes the complete symbol: header, properties and one unit per
// physical gate. Within a unit primitives are written rectangles first,
// then lines, polygons, arcs, ellipses, texts and pins.
func (s *Symbol) Draw(b *bytes.Buffer, opts Options) error {
	if len(s.Parts) == 0 {
		return &orcad.AttrError{Node: "Package", Attr: "LibPart", Err: orcad.ErrMissingAttribute}
	}
	first := s.Parts[0]

	fmt.Fprintf(b, "  (symbol %s", quote(s.Name))
	if !first.PinNumbersVisible {
		b.WriteString(" (pin_numbers hide)")
	}
	if !first.PinNamesVisible {
		b.WriteString(" (pin_names hide)")
	}
	b.WriteString(" (in_bom yes) (on_board yes)\n")

	if err := PlaceProperties(b, s, opts); err != nil {
		return err
	}

	for i := 0; i < s.Units(); i++ {
		if err := s.drawUnit(b, i, opts); err != nil {
			return fmt.Errorf("unit %d: %w", i+1, err)
		}
	}

	b.WriteString("  )\n")
	return nil
}

func (s *Symbol) drawUnit(b *bytes.Buffer, i int, opts Options) error {
	lp, pp := s.UnitPart(i)

	fmt.Fprintf(b, "    (symbol %s\n", quote(fmt.Sprintf("%s_%d_1", s.Name, i+1)))

	for _, r := range lp.Rects {
		r.Draw(b)
	}
	for _, l := range lp.Lines {
		l.Draw(b)
	}
	for _, p := range lp.Polygons {
		p.Draw(b)
	}
	for _, a := range lp.Arcs {
		a.Draw(b)
	}
	for _, e := range lp.Ellipses {
		e.Draw(b)
	}
	for _, t := range lp.Texts {
		t.Draw(b)
	}
	for j, p := range lp.Pins {
		number, ok := pp.Pad(p.Position)
		if !ok {
			return &PrimitiveError{
				Kind:  "pin",
				Index: j,
				Err:   fmt.Errorf("%w: position %q", ErrUnknownPad, p.Position),
			}
		}
		p.Draw(b, number, opts)
	}

	b.WriteString("    )\n")
	return nil
}

// Summary lists the outcome of a library conversion
type Summary struct {
	Converted []string // Symbol names, in output order
	Skipped   []error  // Symbols dropped because of SkipInvalid
}

// WriteLibrary writes a complete symbol library. Each symbol is rendered
// into its own buffer and copied to w only when it rendered completely.
// A failing symbol aborts the library unless opts.SkipInvalid is set.
func WriteLibrary(w io.Writer, symbols []*Symbol, opts Options) (*Summary, error) {
	return writeLibrary(w, symbols, nil, opts)
}

func writeLibrary(w io.Writer, symbols []*Symbol, buildErrs []error, opts Options) (*Summary, error) {
	log := Logger()
	sum := &Summary{Skipped: buildErrs}

	var out bytes.Buffer
	fmt.Fprintf(&out, "(kicad_symbol_lib (version %d) (generator %s)\n", LibraryVersion, opts.Generator)
	if _, err := w.Write(out.Bytes()); err != nil {
		return sum, fmt.Errorf("failed to write library: %w", err)
	}

	var buf bytes.Buffer
	for _, s := range symbols {
		buf.Reset()
		if err := s.Draw(&buf, opts); err != nil {
			serr := &SymbolError{Symbol: s.Name, Err: err}
			if !opts.SkipInvalid {
				return sum, serr
			}
			log.Warn("skipping symbol", "symbol", s.Name, "error", err)
			sum.Skipped = append(sum.Skipped, serr)
			continue
		}

		if _, err := w.Write(buf.Bytes()); err != nil {
			return sum, fmt.Errorf("failed to write library: %w", err)
		}
		log.Debug("converted symbol", "symbol", s.Name, "units", s.Units(), "bytes", buf.Len())
		sum.Converted = append(sum.Converted, s.Name)
	}

	if _, err := io.WriteString(w, ")\n"); err != nil {
		return sum, fmt.Errorf("failed to write library: %w", err)
	}
	return sum, nil
}

// BuildSymbols reads every Package below root. With skipInvalid, packages
// that fail are returned as errors next to the symbols that succeeded;
// otherwise the first failure is returned.
func BuildSymbols(root *orcad.Node, skipInvalid bool) ([]*Symbol, []error, error) {
	var symbols []*Symbol
	var failed []error

	for i, pkg := range orcad.Packages(root) {
		s, err := SymbolFromPackage(pkg)
		if err != nil {
			var serr *SymbolError
			if !errors.As(err, &serr) {
				err = &SymbolError{Symbol: fmt.Sprintf("package #%d", i+1), Err: err}
			}
			if !skipInvalid {
				return nil, nil, err
			}
			Logger().Warn("skipping package", "error", err)
			failed = append(failed, err)
			continue
		}
		symbols = append(symbols, s)
	}

	return symbols, failed, nil
}

// Convert reads an OrCAD XML export from r and writes a KiCad symbol
// library to w
func Convert(r io.Reader, w io.Writer, opts Options) (*Summary, error) {
	root, err := orcad.Parse(r)
	if err != nil {
		return nil, err
	}

	symbols, failed, err := BuildSymbols(root, opts.SkipInvalid)
	if err != nil {
		return nil, err
	}

	return writeLibrary(w, symbols, failed, opts)
}
