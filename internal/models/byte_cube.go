package models

import (
	"errors"
	"fmt"
	"sort"
)

var ErrCounterOverflow = errors.New("byte counter overflow")

// ByteCube holds the bytes transferred per calendar date, access point and direction.
//
// Example JSON:
//
//	{
//	  "2020-12-05": {
//	    "40A6E8:6C:5B:05": {
//	      "received": 1500,
//	      "sent": 320
//	    }
//	  }
//	}
//
// A cube is built fresh per query and owned by a single goroutine until it is handed to a rolluper.
type ByteCube map[string]map[string]map[Direction]uint64

// ByteCubeRow is one leaf of a ByteCube.
type ByteCubeRow struct {
	Date          string    `json:"date" parquet:"date,dict"`
	AccessPointID string    `json:"access_point_id" parquet:"access_point_id,dict"`
	Direction     Direction `json:"direction" parquet:"direction,dict"`
	Bytes         uint64    `json:"bytes" parquet:"bytes"`
}

func NewByteCube() ByteCube {
	return make(ByteCube)
}

// Add accumulates n bytes into the leaf (date, accessPointID, direction). accessPointID may point
// into a reused read buffer: it is only copied when the access point is new for that date.
func (c ByteCube) Add(date string, accessPointID []byte, direction Direction, n uint64) error {
	byAccessPoint, ok := c[date]
	if !ok {
		byAccessPoint = make(map[string]map[Direction]uint64)
		c[date] = byAccessPoint
	}
	byDirection, ok := byAccessPoint[string(accessPointID)]
	if !ok {
		byDirection = make(map[Direction]uint64, 2)
		byAccessPoint[string(accessPointID)] = byDirection
	}
	sum := byDirection[direction] + n
	if sum < n {
		return fmt.Errorf("%w: %s/%s/%s", ErrCounterOverflow, date, accessPointID, direction)
	}
	byDirection[direction] = sum
	return nil
}

// Total returns the accumulated bytes of one leaf, zero when absent.
func (c ByteCube) Total(date, accessPointID string, direction Direction) uint64 {
	return c[date][accessPointID][direction]
}

// Dates returns the cube's dates in ascending order.
func (c ByteCube) Dates() []string {
	dates := make([]string, 0, len(c))
	for date := range c {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}

// Rows flattens the cube, sorted by date, access point and direction.
func (c ByteCube) Rows() []ByteCubeRow {
	var rows []ByteCubeRow
	for date, byAccessPoint := range c {
		for accessPointID, byDirection := range byAccessPoint {
			for direction, n := range byDirection {
				rows = append(rows, ByteCubeRow{
					Date:          date,
					AccessPointID: accessPointID,
					Direction:     direction,
					Bytes:         n,
				})
			}
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.AccessPointID != b.AccessPointID {
			return a.AccessPointID < b.AccessPointID
		}
		return a.Direction < b.Direction
	})
	return rows
}
