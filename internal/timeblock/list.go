package timeblock

// List helpers. These are free functions rather than methods on a named
// slice type so callers can keep using plain []*Timeblock / []int64 values.

// InsertAt returns blocks with tb inserted at index i.
// An index past the end appends.
func InsertAt(blocks []*Timeblock, i int, tb *Timeblock) []*Timeblock {
	if i < 0 {
		i = 0
	}
	if i >= len(blocks) {
		return append(blocks, tb)
	}
	blocks = append(blocks, nil)
	copy(blocks[i+1:], blocks[i:])
	blocks[i] = tb
	return blocks
}

// RemoveID returns blocks without the block whose ID is id.
func RemoveID(blocks []*Timeblock, id int64) []*Timeblock {
	out := make([]*Timeblock, 0, len(blocks))
	for _, tb := range blocks {
		if tb.ID != id {
			out = append(out, tb)
		}
	}
	return out
}

// IndexOf returns the position of the block with the given id, or -1.
func IndexOf(blocks []*Timeblock, id int64) int {
	for i, tb := range blocks {
		if tb.ID == id {
			return i
		}
	}
	return -1
}

// InsertIDAt returns ids with id inserted at index i.
func InsertIDAt(ids []int64, i int, id int64) []int64 {
	if i < 0 {
		i = 0
	}
	if i >= len(ids) {
		return append(ids, id)
	}
	ids = append(ids, 0)
	copy(ids[i+1:], ids[i:])
	ids[i] = id
	return ids
}

// RemoveFirstID returns ids without the first occurrence of id.
func RemoveFirstID(ids []int64, id int64) []int64 {
	for i, v := range ids {
		if v == id {
			return append(append([]int64{}, ids[:i]...), ids[i+1:]...)
		}
	}
	return ids
}
