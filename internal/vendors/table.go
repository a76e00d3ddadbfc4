package vendors

import (
	"errors"
	"fmt"
)

//go:generate go run ../../cmd/ouigen -registry http://standards-oui.ieee.org/oui.txt -dataset ../../datasets/logs-conexion.csv -out snapshot_gen.go

var ErrUnknownVendor = errors.New("unknown vendor id")

// OUI is a 24-bit organizationally unique identifier, the vendor part of a MAC-like id.
type OUI uint32

// ParseOUI packs six uppercase hex characters into an OUI. Lowercase does not parse.
func ParseOUI(b []byte) (OUI, bool) {
	if len(b) != 6 {
		return 0, false
	}
	var v OUI
	for _, c := range b {
		var d byte
		switch {
		case c >= '0' && c <= '9':
			d = c - '0'
		case c >= 'A' && c <= 'F':
			d = c - 'A' + 10
		default:
			return 0, false
		}
		v = v<<4 | OUI(d)
	}
	return v, true
}

func (o OUI) String() string {
	return fmt.Sprintf("%06X", uint32(o))
}

type Entry struct {
	OUI    OUI
	Vendor string
}

// Table resolves vendor ids to vendor names. It is immutable once built and safe for concurrent
// readers.
type Table struct {
	names map[OUI]string
}

// NewTable indexes entries. When an OUI repeats, the later entry wins.
func NewTable(entries []Entry) *Table {
	names := make(map[OUI]string, len(entries))
	for _, e := range entries {
		names[e.OUI] = e.Vendor
	}
	return &Table{names: names}
}

// NewSnapshotTable returns the table baked into the binary by ouigen.
func NewSnapshotTable() *Table {
	return NewTable(snapshot[:])
}

// Lookup resolves the six hex characters of a vendor id.
func (t *Table) Lookup(vendorID []byte) (string, bool) {
	oui, ok := ParseOUI(vendorID)
	if !ok {
		return "", false
	}
	name, ok := t.names[oui]
	return name, ok
}

// Resolve is Lookup with an error that names the missing id.
func (t *Table) Resolve(vendorID []byte) (string, error) {
	name, ok := t.Lookup(vendorID)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownVendor, vendorID)
	}
	return name, nil
}

func (t *Table) Len() int {
	return len(t.names)
}

// Entries returns the table sorted by OUI.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.names))
	for oui, name := range t.names {
		entries = append(entries, Entry{OUI: oui, Vendor: name})
	}
	sortEntries(entries)
	return entries
}
