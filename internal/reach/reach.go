// Package reach computes basic-block reachability over a TIR code object
// structurally, from opcode positions and the catch table, rather than
// during generation. The generator's addBasicBlock/addConnectedBasicBlock
// only append blocks; this package is what actually decides which of them
// execution can reach.
package reach

import "github.com/inko-lang/corec/internal/tir"

// Analyze marks every block of co reachable from its entry block, and
// recurses into every child code object co owns (a block's own body is
// analyzed independently of its parent's reachability). It mutates
// Reachable on each *tir.BasicBlock in place and returns the set of
// reachable block IDs for the top-level call's convenience.
func Analyze(co *tir.CodeObject) map[int]bool {
	reachable := analyzeOne(co)
	for _, child := range co.Children {
		Analyze(child)
	}
	return reachable
}

// analyzeOne runs the worklist over a single code object's blocks, without
// descending into children (SetBlock/RunBlock child code objects are
// entered independently — a block being unreachable doesn't make the
// closure it captures unreachable, since the closure can be called later).
func analyzeOne(co *tir.CodeObject) map[int]bool {
	visited := make(map[int]bool)
	if len(co.Blocks) == 0 {
		return visited
	}

	worklist := []int{0}
	visited[0] = true

	for len(worklist) > 0 {
		id := worklist[0]
		worklist = worklist[1:]

		for _, succ := range successors(co, id) {
			if succ < 0 || succ >= len(co.Blocks) || visited[succ] {
				continue
			}
			visited[succ] = true
			worklist = append(worklist, succ)
		}
	}

	for _, bb := range co.Blocks {
		bb.Reachable = visited[bb.ID]
	}
	return visited
}

// successors returns the block IDs directly reachable from block id's end,
// per the fixed opcode-to-control-flow rules:
//
//   - Return, Throw, Panic: no fallthrough successor.
//   - GotoNextBlockIfTrue: two successors, id+1 (false branch, fallthrough)
//     and id+2 (true branch, the skip target).
//   - SkipNextBlock: one successor, id+2.
//   - any other (non-terminating) last instruction, or an empty block:
//     falls through to id+1.
//
// A catch-table entry whose TryBlock is id additionally makes its
// ElseBlock a successor, since a throw inside the try block can transfer
// control there regardless of how the try block itself ends.
func successors(co *tir.CodeObject, id int) []int {
	bb := co.Blocks[id]
	var succs []int

	if len(bb.Instructions) == 0 {
		succs = append(succs, id+1)
	} else {
		switch last := bb.Instructions[len(bb.Instructions)-1].Op; last {
		case tir.Return, tir.Throw, tir.Panic:
			// no fallthrough
		case tir.GotoNextBlockIfTrue:
			succs = append(succs, id+1, id+2)
		case tir.SkipNextBlock:
			succs = append(succs, id+2)
		default:
			succs = append(succs, id+1)
		}
	}

	for _, entry := range co.CatchTable {
		if entry.TryBlock == id {
			succs = append(succs, entry.ElseBlock)
		}
	}

	return succs
}
