package aggregators

import (
	"wifi-analytics/internal/models"
	"wifi-analytics/internal/records"
)

// CubeFolder accumulates log records into a ByteCube. A folder remembers the last calendar date
// it computed, so each goroutine folding records needs its own.
//
//go:generate mockgen -source=cube_folder.go -destination=./mocks/cube_folder_mock.go -package=mocks
type CubeFolder interface {
	Fold(cube models.ByteCube, rec records.Record) error
}

type cubeFolder struct {
	dates models.DateCache
}

func NewCubeFolder() CubeFolder {
	return &cubeFolder{}
}

func (f *cubeFolder) Fold(cube models.ByteCube, rec records.Record) error {
	ts, err := rec.Timestamp()
	if err != nil {
		return err
	}
	n, err := rec.ByteCount()
	if err != nil {
		return err
	}
	return cube.Add(f.dates.Date(ts), rec.AccessPointID(), rec.Direction(), n)
}
