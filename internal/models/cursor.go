package models

// Cursor tracks a position over the latest fetched snapshot of movies.
//
// Position ranges over [0, len]; position == len means a record is being
// created that is not yet in the snapshot (New mode). The cursor never talks
// to the store: callers fetch and hand the result to Reset.
type Cursor struct {
	records  []Movie
	position int
}

func NewCursor() *Cursor {
	return &Cursor{}
}

// Reset replaces the snapshot and re-clamps the previous position into it.
func (c *Cursor) Reset(records []Movie) {
	snapshot := make([]Movie, len(records))
	copy(snapshot, records)
	c.records = snapshot
	c.JumpTo(c.position)
}

// Current returns the record under the cursor, or false in New mode or on an
// empty snapshot.
func (c *Cursor) Current() (Movie, bool) {
	if c.position < 0 || c.position >= len(c.records) {
		return Movie{}, false
	}
	return c.records[c.position], true
}

// Next advances one record, stopping at the last one.
func (c *Cursor) Next() {
	if len(c.records) == 0 {
		return
	}
	c.position = min(c.position+1, len(c.records)-1)
}

// Prev steps back one record, stopping at the first one.
func (c *Cursor) Prev() {
	c.position = max(0, c.position-1)
}

// JumpTo moves to index i clamped to the last record, or 0 on an empty snapshot.
func (c *Cursor) JumpTo(i int) {
	if len(c.records) == 0 {
		c.position = 0
		return
	}
	c.position = max(0, min(i, len(c.records)-1))
}

func (c *Cursor) EnterNewMode() {
	c.position = len(c.records)
}

func (c *Cursor) IsNewMode() bool {
	return c.position >= len(c.records)
}

func (c *Cursor) Position() int {
	return c.position
}

func (c *Cursor) Len() int {
	return len(c.records)
}

// Records returns a copy of the snapshot.
func (c *Cursor) Records() []Movie {
	out := make([]Movie, len(c.records))
	copy(out, c.records)
	return out
}
