package classify

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/prism/internal/document"
)

// classifyFn is the global function a classifier script must define.
const classifyFn = "classify_at"

// Lua is a classifier backed by a user script. The script must define
//
//	function classify_at(offset) ... end
//
// taking a 1-based rune offset and returning either nil (no
// classification) or three values: category, start, end with start and
// end 1-based and inclusive, Lua string style.
//
// The script sees three globals: text (document content), mime
// (document MIME type) and len (document length in runes). Note that
// Lua's string library is byte-based; scripts working on non-ASCII
// documents must account for that themselves.
//
// gopher-lua states are not goroutine-safe; a mutex serializes calls.
type Lua struct {
	mu     sync.Mutex
	state  *lua.LState
	closed bool
}

// NewLua builds a Lua classifier from script source.
func NewLua(script string, doc *document.Snapshot) (*Lua, error) {
	L := newLuaState(doc)
	return finishLua(L, L.DoString(script))
}

// NewLuaFromFile builds a Lua classifier from a script file.
func NewLuaFromFile(path string, doc *document.Snapshot) (*Lua, error) {
	L := newLuaState(doc)
	return finishLua(L, L.DoFile(path))
}

// newLuaState builds a sandboxed state with the document globals set.
func newLuaState(doc *document.Snapshot) *lua.LState {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)

	L.SetGlobal("text", lua.LString(doc.Text()))
	L.SetGlobal("mime", lua.LString(doc.MimeType()))
	L.SetGlobal("len", lua.LNumber(doc.Len()))
	return L
}

// finishLua checks the script loaded and defined the entry point,
// closing the state on failure.
func finishLua(L *lua.LState, loadErr error) (*Lua, error) {
	if loadErr != nil {
		L.Close()
		return nil, fmt.Errorf("load classifier script: %w", loadErr)
	}
	if L.GetGlobal(classifyFn).Type() != lua.LTFunction {
		L.Close()
		return nil, ErrNoClassifyFunc
	}
	return &Lua{state: L}, nil
}

// openSafeLibraries opens only side-effect-free Lua standard libraries.
// io, os, debug and package stay closed.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
}

// ClassifyAt implements Classifier. Script errors are treated as "no
// classification"; a classifier must never abort a scan.
func (c *Lua) ClassifyAt(offset int) (Classification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return Classification{}, false
	}

	result, ok := c.call(offset)
	if !ok {
		return Classification{}, false
	}
	return result, true
}

func (c *Lua) call(offset int) (result Classification, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			result, ok = Classification{}, false
		}
	}()

	L := c.state
	err := L.CallByParam(lua.P{
		Fn:      L.GetGlobal(classifyFn),
		NRet:    3,
		Protect: true,
	}, lua.LNumber(offset+1))
	if err != nil {
		return Classification{}, false
	}

	third := L.Get(-1)
	second := L.Get(-2)
	first := L.Get(-3)
	L.Pop(3)

	cat, isStr := first.(lua.LString)
	if !isStr || cat == "" {
		return Classification{}, false
	}
	start, isNum := second.(lua.LNumber)
	if !isNum {
		return Classification{}, false
	}
	end, isNum := third.(lua.LNumber)
	if !isNum {
		return Classification{}, false
	}

	// 1-based inclusive [start, end] becomes 0-based exclusive [start-1, end).
	cls := Classification{
		Category: string(cat),
		Start:    int(start) - 1,
		End:      int(end),
	}
	if cls.Start < 0 || cls.End <= cls.Start {
		return Classification{}, false
	}
	return cls, true
}

// Close releases the Lua state. Subsequent calls report no match.
// Safe to call more than once.
func (c *Lua) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.state.Close()
	return nil
}
