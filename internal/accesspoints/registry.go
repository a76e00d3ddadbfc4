package accesspoints

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
)

const (
	idStart       = 0
	idEnd         = 15
	buildingStart = 16
	buildingEnd   = 19
)

var (
	ErrUnknownAccessPoint = errors.New("unknown access point")
	ErrShortLine          = errors.New("access point line too short")
)

// Registry maps access-point ids to the building they are installed in. Read-only after Load.
type Registry struct {
	buildings map[string]string
}

// Load reads a registry file: a header line, then one row per access point with the id at bytes
// [0,15) and the building at [16,19). A repeated id keeps its last row.
func Load(r io.Reader) (*Registry, error) {
	sc := bufio.NewScanner(r)
	buildings := make(map[string]string)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if lineNo == 1 {
			continue
		}
		line := bytes.TrimSuffix(sc.Bytes(), []byte{'\r'})
		if len(line) < buildingEnd {
			return nil, fmt.Errorf("line %d: %w: got %d bytes, need %d", lineNo, ErrShortLine, len(line), buildingEnd)
		}
		buildings[string(line[idStart:idEnd])] = string(line[buildingStart:buildingEnd])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read access points line %d: %w", lineNo+1, err)
	}
	return &Registry{buildings: buildings}, nil
}

func (r *Registry) Building(accessPointID []byte) (string, bool) {
	building, ok := r.buildings[string(accessPointID)]
	return building, ok
}

// Resolve is Building with an error that names the missing id.
func (r *Registry) Resolve(accessPointID []byte) (string, error) {
	building, ok := r.Building(accessPointID)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAccessPoint, accessPointID)
	}
	return building, nil
}

func (r *Registry) Len() int {
	return len(r.buildings)
}
