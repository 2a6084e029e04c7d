package tools_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/voxa-labs/voxa/tools"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := tools.NewRegistry()

	if err := r.Register(tools.NewWebSearch()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	tool, ok := r.Get(tools.ToolWebSearch)
	if !ok {
		t.Fatal("Get() did not find registered tool")
	}
	if tool.Name() != tools.ToolWebSearch {
		t.Errorf("Name() = %q, want %q", tool.Name(), tools.ToolWebSearch)
	}
}

func TestRegistry_RegisterDuplicate(t *testing.T) {
	r := tools.NewRegistry()

	if err := r.Register(tools.NewSummarize()); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	err := r.Register(tools.NewSummarize())
	if !errors.Is(err, tools.ErrAlreadyExists) {
		t.Errorf("Register() duplicate error = %v, want ErrAlreadyExists", err)
	}
}

func TestRegistry_RegisterNil(t *testing.T) {
	r := tools.NewRegistry()

	if err := r.Register(nil); !errors.Is(err, tools.ErrEmptyName) {
		t.Errorf("Register(nil) error = %v, want ErrEmptyName", err)
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := tools.NewRegistry()

	if _, ok := r.Get("no_such_tool"); ok {
		t.Error("Get() found an unregistered tool")
	}
}

func TestNewDefaultRegistry(t *testing.T) {
	r := tools.NewDefaultRegistry()

	names := r.Names()
	sort.Strings(names)

	want := []string{tools.ToolEmotionDetect, tools.ToolSummarize, tools.ToolWebSearch}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], name)
		}
	}
}
