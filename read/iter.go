package read

import "iter"

// TableIter walks a level of siblings via each table's sibling stride.
type TableIter = iter.Seq[TableView]

// ChunkIter walks one table's contiguous run of chunks.
type ChunkIter = iter.Seq[ChunkView]

// DepthFirstIter walks every table in file order, pairing each with its
// depth in the tree.
type DepthFirstIter = iter.Seq2[int, TableView]

// newTableIter starts a sibling walk at index start.
func newTableIter(hff *Hff, start int) TableIter {
	return func(yield func(TableView) bool) {
		if start < 0 || start >= len(hff.tables) {
			return
		}

		index := start
		for {
			if !yield(TableView{hff: hff, index: index}) {
				return
			}

			stride := int(hff.tables[index].SiblingStride)
			if stride == 0 || index+stride >= len(hff.tables) {
				return
			}
			index += stride
		}
	}
}

// newEmptyTableIter is a TableIter that yields nothing.
func newEmptyTableIter(hff *Hff) TableIter {
	return func(func(TableView) bool) {}
}

// newChunkIter walks count chunks starting at index start.
func newChunkIter(hff *Hff, start, count int) ChunkIter {
	return func(yield func(ChunkView) bool) {
		for i := 0; i < count; i++ {
			if !yield(ChunkView{hff: hff, index: start + i}) {
				return
			}
		}
	}
}

// newDepthFirstIter walks every table in file order, maintaining a stack
// of remaining-sibling counts per depth: the top is decremented (popping
// exhausted frames first) before recording the current depth, then a new
// frame is pushed if the current table has children.
func newDepthFirstIter(hff *Hff) DepthFirstIter {
	return func(yield func(int, TableView) bool) {
		stack := make([]int, 0, 8)

		for index := 0; index < len(hff.tables); index++ {
			table := hff.tables[index]

			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top > 0 {
					stack[len(stack)-1] = top - 1
					break
				}
				stack = stack[:len(stack)-1]
			}

			depth := len(stack)

			if table.ChildCount > 0 {
				stack = append(stack, int(table.ChildCount))
			}

			if !yield(depth, TableView{hff: hff, index: index}) {
				return
			}
		}
	}
}
