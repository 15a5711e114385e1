package registry

import (
	"math"
	"sync"
	"testing"

	"github.com/alecthomas/assert/v2"

	cmn "github.com/SkEditorPlus/skparse/parser/parsercommon"
)

var (
	core   = Addon{ID: "core", Name: "Core", Version: "1.0"}
	plugin = Addon{ID: "plugin", Name: "Plugin"}
)

func TestOrderedByPriorityDescending(t *testing.T) {
	r := New[string]()
	r.Register("five", 5, core)
	r.Register("ten", 10, core)
	r.Register("one", 1, plugin)

	assert.Equal(t, []string{"ten", "five", "one"}, r.Ordered())
}

func TestOrderedWithExtremePriorities(t *testing.T) {
	r := New[string]()
	r.Register("max", math.MaxInt, core)
	r.Register("neg", -1, core)
	r.Register("min", math.MinInt, plugin)
	r.Register("zero", 0, plugin)

	assert.Equal(t, []string{"max", "zero", "neg", "min"}, r.Ordered())
}

func TestSamePriorityIsLastRegisteredFirst(t *testing.T) {
	r := New[string]()
	r.Register("a", 0, core)
	r.Register("b", 0, core)
	r.Register("high", 3, plugin)
	r.Register("c", 0, plugin)

	assert.Equal(t, []string{"high", "c", "b", "a"}, r.Ordered())
}

func TestUnloadRemovesOwnerEntries(t *testing.T) {
	r := New[string]()
	r.Register("a", 0, core)
	r.Register("b", 0, plugin)
	r.Register("c", 2, plugin)

	assert.Equal(t, 2, r.Unload(plugin))
	assert.Equal(t, []string{"a"}, r.Ordered())
	assert.Equal(t, 0, r.Unload(plugin))
	assert.Equal(t, 1, r.Len())
}

func TestEntriesAreSnapshots(t *testing.T) {
	r := New[string]()
	r.Register("a", 0, core)

	snapshot := r.Entries()
	r.Unload(core)

	assert.Equal(t, 1, len(snapshot))
	assert.Equal(t, core, snapshot[0].Owner)
	assert.Equal(t, 0, r.Len())
}

func TestConcurrentRegistration(t *testing.T) {
	r := New[int]()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)

		go func() {
			defer wg.Done()
			r.Register(i, i%3, core)
			_ = r.Ordered()
		}()
	}

	wg.Wait()
	assert.Equal(t, 50, r.Len())
}

func TestRegistries(t *testing.T) {
	regs := NewRegistries()
	regs.ParserWarnings.Register(cmn.NewParserWarning("custom", "Custom"), 0, plugin)
	regs.ParserElements.Register(cmn.Recognizer{Name: "low"}, 1, core)
	regs.ParserElements.Register(cmn.Recognizer{Name: "high"}, 9, plugin)

	w, ok := regs.Warning("custom")
	assert.True(t, ok)
	assert.Equal(t, "Custom", w.Template)

	ctx := regs.NewParsingContext()
	names := []string{}
	for _, rec := range ctx.Recognizers() {
		names = append(names, rec.Name)
	}
	assert.Equal(t, []string{"high", "low"}, names)

	regs.Unload(plugin)

	_, ok = regs.Warning("custom")
	assert.False(t, ok)
	assert.Equal(t, 1, regs.ParserElements.Len())
	// contexts keep the recognizers they were created with
	assert.Equal(t, 2, len(ctx.Recognizers()))
	assert.Equal(t, "Core 1.0", core.String())
}
