package events

// LineChunkEvent carries a run of whole access-log rows from the chunk producer to a cube
// consumer. Data always ends on a row boundary, except for the last chunk of a file that has no
// trailing newline.
//
// Example:
//
//	{
//	  "seq": 3,
//	  "firstLine": 52431,
//	  "data": "1607173201 4C3C16:46:65:62 40A6E8:6C:5B:05 000500 upload\n..."
//	}
//
// In this example:
//   - The chunk is the fourth one read from the file
//   - Its first row is physical line 52431, so errors found while folding it can be reported
//     against the right line
//   - The consumer owns Data once the event is received; the producer never writes to it again
type LineChunkEvent struct {
	Seq       int    `json:"seq"`
	FirstLine int    `json:"firstLine"`
	Data      []byte `json:"data"`
}
