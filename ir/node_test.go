package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKeyUniqueness(t *testing.T) {
	c := NewCollection()
	c.Set("a", FromString("1"))
	c.Set("a", FromString("2"))
	if c.KeyCount() != 1 {
		t.Errorf("key count %d", c.KeyCount())
	}
	if got := c.GetString("a", ""); got != "2" {
		t.Errorf("got %q, want 2", got)
	}
}

func TestCollectionAccessors(t *testing.T) {
	c := NewCollection()
	c.Set("b", FromString("x"))
	c.Set("a", FromString("y"))
	c.Append(FromString("0"))
	c.Append(FromString("1"))
	c.Append(FromString("2"))

	if diff := cmp.Diff([]string{"a", "b"}, c.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if !c.Has("a") || c.Has("z") {
		t.Error("Has")
	}
	if c.Len() != 3 || c.Index(1).String != "1" {
		t.Errorf("list %v", c.Values)
	}
	if c.Index(3) != nil || c.Index(-1) != nil {
		t.Error("out of range index")
	}
	if !c.SetIndex(1, FromString("one")) || c.Index(1).String != "one" {
		t.Error("SetIndex")
	}
	if c.SetIndex(3, FromString("x")) {
		t.Error("SetIndex out of range")
	}
	if !c.RemoveIndex(0) || c.Len() != 2 || c.Index(0).String != "one" {
		t.Error("RemoveIndex")
	}
	if c.RemoveIndex(5) {
		t.Error("RemoveIndex out of range")
	}
	if !c.Delete("a") || c.Delete("a") || c.KeyCount() != 1 {
		t.Error("Delete")
	}
}

func TestValueAsCollection(t *testing.T) {
	v := FromString("x")
	if v.Set("a", FromString("b")) || v.Append(FromString("c")) {
		t.Error("mutating a value node")
	}
	if v.Get("a") != nil || v.KeyCount() != 0 || v.Len() != 0 || v.Keys() != nil {
		t.Error("value node has children")
	}
	if v.Delete("a") || v.RemoveIndex(0) || v.SetIndex(0, FromString("d")) {
		t.Error("mutating a value node")
	}
	var nilNode *Node
	if nilNode.Get("a") != nil || nilNode.GetInt("a", 3) != 3 {
		t.Error("nil node")
	}
}

func TestClone(t *testing.T) {
	c := NewCollection()
	sub := FromSlice([]*Node{FromString("a")})
	sub.Compact = true
	c.Set("s", sub)
	c.Line = 4
	d := c.Clone()
	if !Equal(c, d) {
		t.Fatal("clone differs")
	}
	if !d.Get("s").Compact || d.Line != 4 {
		t.Error("clone lost layout")
	}
	d.Get("s").Append(FromString("b"))
	if c.Get("s").Len() != 1 {
		t.Error("clone shares children")
	}
}

func TestVisit(t *testing.T) {
	c := NewCollection()
	c.Set("b", FromString("2"))
	c.Set("a", FromSlice([]*Node{FromString("x")}))
	c.Append(FromString("3"))
	var pre, post []string
	err := c.Visit(func(y *Node, isPost bool) (bool, error) {
		s := y.Type.String()
		if y.IsValue() {
			s = y.String
		}
		if isPost {
			post = append(post, s)
		} else {
			pre = append(pre, s)
		}
		return true, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Collection", "Collection", "x", "2", "3"}
	if diff := cmp.Diff(want, pre); diff != "" {
		t.Errorf("pre (-want +got):\n%s", diff)
	}
	if len(post) != len(pre) || post[len(post)-1] != "Collection" {
		t.Errorf("post %v", post)
	}
}

func TestTypeText(t *testing.T) {
	for _, ty := range Types() {
		d, _ := ty.MarshalText()
		var back Type
		if err := back.UnmarshalText(d); err != nil || back != ty {
			t.Errorf("%s: %v %v", ty, back, err)
		}
	}
	var bad Type
	if err := bad.UnmarshalText([]byte("Object")); err == nil {
		t.Error("expected error")
	}
}
