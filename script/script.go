// Package script drives a piece.Text from Lua.
//
// A Runner installs a global table named text:
//
//	text.insert(off, s)      insert s at byte offset off
//	text.delete(off1, off2)  delete [off1, off2)
//	text.append(s)
//	text.len()               length in bytes
//	text.bytes()             content as a raw Lua string
//	text.string()            content, raising an error unless it is UTF-8
//	text.pieces()            array of {start = n, len = n} tables
//
// Offsets are 0-based byte offsets, as in package piece. Offsets out of
// range raise a Lua error rather than panicking the host.
package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/bgrundmann/piece"
)

// Runner executes Lua code against a Text. It is not safe for concurrent
// use; neither the Lua state nor the Text are.
type Runner struct {
	L    *lua.LState
	text *piece.Text
}

// New returns a Runner editing t. Only the base, table, string and math
// libraries are available to scripts.
func New(t *piece.Text) *Runner {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	r := &Runner{L: L, text: t}
	r.register()
	return r
}

func (r *Runner) register() {
	L := r.L
	mod := L.NewTable()
	L.SetField(mod, "insert", L.NewFunction(r.insert))
	L.SetField(mod, "delete", L.NewFunction(r.deleteRange))
	L.SetField(mod, "append", L.NewFunction(r.appendString))
	L.SetField(mod, "len", L.NewFunction(r.length))
	L.SetField(mod, "bytes", L.NewFunction(r.contentBytes))
	L.SetField(mod, "string", L.NewFunction(r.contentString))
	L.SetField(mod, "pieces", L.NewFunction(r.pieces))
	L.SetGlobal("text", mod)
}

// DoString runs the Lua chunk src.
func (r *Runner) DoString(src string) error {
	if err := r.L.DoString(src); err != nil {
		return fmt.Errorf("script: %w", err)
	}
	return nil
}

// DoFile runs the Lua file at path.
func (r *Runner) DoFile(path string) error {
	if err := r.L.DoFile(path); err != nil {
		return fmt.Errorf("script %s: %w", path, err)
	}
	return nil
}

// Close releases the Lua state. The Text is left as the script made it.
func (r *Runner) Close() {
	r.L.Close()
}

// checkOffset returns argument n as an offset in [0, text.Len()].
func (r *Runner) checkOffset(n int) int {
	off := r.L.CheckInt(n)
	if off < 0 || off > r.text.Len() {
		r.L.ArgError(n, fmt.Sprintf("offset %d out of range [0, %d]", off, r.text.Len()))
	}
	return off
}

// insert(off, s)
func (r *Runner) insert(L *lua.LState) int {
	off := r.checkOffset(1)
	s := L.CheckString(2)
	r.text.InsertString(off, s)
	return 0
}

// delete(off1, off2)
// An inverted range is accepted and does nothing, as in piece.Text.
func (r *Runner) deleteRange(L *lua.LState) int {
	off1 := L.CheckInt(1)
	off2 := L.CheckInt(2)
	if off2 > off1 {
		r.checkOffset(1)
		r.checkOffset(2)
	}
	r.text.Delete(off1, off2)
	return 0
}

// append(s)
func (r *Runner) appendString(L *lua.LState) int {
	r.text.AppendString(L.CheckString(1))
	return 0
}

// len() -> number
func (r *Runner) length(L *lua.LState) int {
	L.Push(lua.LNumber(r.text.Len()))
	return 1
}

// bytes() -> string
// Lua strings hold arbitrary bytes so this never fails.
func (r *Runner) contentBytes(L *lua.LState) int {
	L.Push(lua.LString(r.text.String()))
	return 1
}

// string() -> string
func (r *Runner) contentString(L *lua.LState) int {
	s, err := r.text.TextString()
	if err != nil {
		L.RaiseError("string: %v", err)
		return 0
	}
	L.Push(lua.LString(s))
	return 1
}

// pieces() -> {{start = n, len = n}, ...}
func (r *Runner) pieces(L *lua.LState) int {
	tbl := L.NewTable()
	it := r.text.Pieces()
	for {
		start, p, ok := it.Next()
		if !ok {
			break
		}
		entry := L.NewTable()
		L.SetField(entry, "start", lua.LNumber(start))
		L.SetField(entry, "len", lua.LNumber(r.text.Span(p).Len()))
		tbl.Append(entry)
	}
	L.Push(tbl)
	return 1
}
