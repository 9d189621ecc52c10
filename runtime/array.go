package runtime

import (
	"io"

	"circlelang/ast"
	"circlelang/circular"
	"circlelang/diag"
	"circlelang/number"
)

// Array is the runtime circular array: gca itself and every nested
// array literal are one of these. Cells are populated exclusively
// through Insert (§5: "all mutation paths go through Array::insert");
// a miss on Index reads back the default Number(1) sentinel rather than
// ever consulting elements.
//
// elements holds the literal AST children this array was built from and
// backs the execution loop directly: Execute re-evaluates elements[0]
// fresh on every pass, which is what lets an Assign buried in the body
// change the loop condition (see the brainfuck `[`/`]` emission in
// §4.8, whose condition cell is re-read every iteration rather than
// cached from construction).
type Array struct {
	length   int64
	elements []ast.Node
	buckets  map[uint64][]cellEntry
}

type cellEntry struct {
	idx circular.Index
	obj Object
}

// NewArray builds an empty-celled runtime Array over elements, the AST
// children a circle-lang array literal (or the top-level program) was
// written with.
func NewArray(elements []ast.Node) *Array {
	return &Array{
		length:   int64(len(elements)),
		elements: elements,
		buckets:  make(map[uint64][]cellEntry),
	}
}

// NewOpaqueArray builds a runtime Array with no backing AST, sized
// length with every cell initially a miss — used for arrays std_decompose
// synthesises rather than ones the parser produced.
func NewOpaqueArray(length int64) *Array {
	return &Array{length: length, buckets: make(map[uint64][]cellEntry)}
}

// Length returns the ring size cells are hashed against.
func (a *Array) Length() int64 { return a.length }

// Index looks up v among this array's cells, returning the default
// Number(1) sentinel on a miss.
func (a *Array) Index(v number.Value) Object {
	key := circular.New(v, a.length)
	for _, c := range a.buckets[key.Hash()] {
		if c.idx.Equal(key) {
			return c.obj
		}
	}
	return &Number{Value: number.Truthy()}
}

// Insert writes obj at key v, inserting a fresh cell or replacing an
// existing one — the single-level terminal step of the general
// path-insert §4.6 describes; multi-level paths are walked by
// InsertPath.
func (a *Array) Insert(v number.Value, obj Object) {
	key := circular.New(v, a.length)
	bucket := a.buckets[key.Hash()]
	for i, c := range bucket {
		if c.idx.Equal(key) {
			bucket[i].obj = obj
			return
		}
	}
	a.buckets[key.Hash()] = append(bucket, cellEntry{idx: key, obj: obj})
}

// InsertPath descends path[0..len-2], demanding an Array at each step
// (else "Attempting to index non array object" at r), and inserts obj
// at the final key — Assign's write path, and intrinsics writing
// multi-level slots.
func (a *Array) InsertPath(path []number.Value, obj Object, r diag.Range) error {
	cur := a
	for _, v := range path[:len(path)-1] {
		next := cur.Index(v)
		arr, ok := next.(*Array)
		if !ok {
			return newRuntimeError(r, "Attempting to index non array object")
		}
		cur = arr
	}
	cur.Insert(path[len(path)-1], obj)
	return nil
}

// Clone deep-clones this array's cells (§4.6: "Array::clone() deep-clones
// its map"); elements is shared since it is immutable source structure.
func (a *Array) Clone() *Array {
	out := &Array{length: a.length, elements: a.elements, buckets: make(map[uint64][]cellEntry, len(a.buckets))}
	for h, bucket := range a.buckets {
		cp := make([]cellEntry, len(bucket))
		for i, c := range bucket {
			obj := c.obj
			switch o := obj.(type) {
			case *Array:
				obj = o.Clone()
			case *Number:
				obj = &Number{Value: o.Value}
			}
			cp[i] = cellEntry{idx: c.idx, obj: obj}
		}
		out.buckets[h] = cp
	}
	return out
}

// Evaluate returns the array itself; once realised, an Array object is
// already its own value.
func (a *Array) Evaluate(gca *Array) (Object, error) {
	return a, nil
}

// Execute runs the loop (§4.6): evaluate element 0, terminate only when
// it yields the exact Number zero, otherwise execute elements 1..length-1
// in order and re-test. A non-Number condition never terminates the loop.
// currentDepth tracks this array's nesting level for the duration of the
// loop so an attached Hook (§4.9's debugger) can report it.
func (a *Array) Execute(gca *Array, in io.Reader, out io.Writer) error {
	if len(a.elements) == 0 {
		return nil
	}
	currentDepth++
	defer func() { currentDepth-- }()
	for {
		cond, err := Evaluate(a.elements[0], gca)
		if err != nil {
			return err
		}
		if n, ok := cond.(*Number); ok && !n.Value.IsTruthy() {
			return nil
		}
		for _, child := range a.elements[1:] {
			if activeHook != nil {
				if err := activeHook.BeforeExecute(child, currentDepth); err != nil {
					return err
				}
			}
			if err := Execute(child, gca, in, out); err != nil {
				return err
			}
		}
	}
}

// CellView exposes one populated cell for the debugger's "g" dump
// command (§4.9); Array otherwise keeps its cells private to enforce
// Insert as the sole mutation path (§5).
type CellView struct {
	Key circular.Index
	Obj Object
}

// Cells returns every populated cell of a, in no particular order.
func (a *Array) Cells() []CellView {
	var out []CellView
	for _, bucket := range a.buckets {
		for _, c := range bucket {
			out = append(out, CellView{Key: c.idx, Obj: c.obj})
		}
	}
	return out
}
