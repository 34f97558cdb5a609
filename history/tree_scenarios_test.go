package history

import (
	"strconv"
	"strings"
	"testing"
)

func levelOf(version string) int {
	n, _ := strconv.Atoi(strings.SplitN(version, "@", 2)[0])
	return n
}

func producerFor(t *testing.T) Producer[payload] {
	return func(n int, versions []string) []payload {
		out := make([]payload, n)
		for k := 1; k <= n; k++ {
			level := levelOf(versions[k-1])
			out[k-1] = payload{V: level*10 + k}
		}
		return out
	}
}

func TestBranchRandomDeterministicShape(t *testing.T) {
	r := &fixedRand{seq: []int{0, 1, 1, 1, 2, 2, 0, 0, 0}}
	tr := NewWithRand(payload{V: 0}, r)
	produce := producerFor(t)

	if _, err := tr.BranchRandom(produce); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.BranchRandom(produce); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.BranchRandom(produce); err != nil {
		t.Fatal(err)
	}

	if tr.MaxLevel() != 3 {
		t.Fatalf("expected maxLevel 3, got %d", tr.MaxLevel())
	}
	if tr.current != "3@1" {
		t.Fatalf("expected current 3@1, got %s", tr.current)
	}

	root := tr.root
	if len(root.Children) != 2 || root.Children[0].Version != "1@1" || root.Children[1].Version != "1@2" {
		t.Fatalf("unexpected root children: %+v", root.Children)
	}

	branch2 := root.Children[1]
	if len(branch2.Children) != 3 {
		t.Fatalf("expected 3 children under 1@2, got %d", len(branch2.Children))
	}
	wantVersions := []string{"2@1", "2@2", "2@3"}
	wantData := []int{21, 22, 23}
	for i, c := range branch2.Children {
		if c.Version != wantVersions[i] || c.Data.V != wantData[i] {
			t.Errorf("child %d: got version=%s data=%d, want version=%s data=%d", i, c.Version, c.Data.V, wantVersions[i], wantData[i])
		}
	}

	leaf := branch2.Children[0]
	if len(leaf.Children) != 1 || leaf.Children[0].Version != "3@1" || leaf.Children[0].Data.V != 31 {
		t.Fatalf("unexpected leaf children under 2@1: %+v", leaf.Children)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	r := &fixedRand{seq: []int{0, 1, 1, 1, 2, 2, 0, 0, 0}}
	tr := NewWithRand(payload{V: 0}, r)
	produce := producerFor(t)
	for i := 0; i < 3; i++ {
		if _, err := tr.BranchRandom(produce); err != nil {
			t.Fatal(err)
		}
	}

	saved, err := tr.Save()
	if err != nil {
		t.Fatal(err)
	}

	loaded, err := Load[payload](saved)
	if err != nil {
		t.Fatal(err)
	}

	resaved, err := loaded.Save()
	if err != nil {
		t.Fatal(err)
	}
	if saved != resaved {
		t.Errorf("save/load round trip is not byte-for-byte:\noriginal: %s\nreloaded: %s", saved, resaved)
	}
	if loaded.current != tr.current {
		t.Errorf("current version not preserved: got %s want %s", loaded.current, tr.current)
	}
	if loaded.MaxLevel() != tr.MaxLevel() {
		t.Errorf("max level not preserved: got %d want %d", loaded.MaxLevel(), tr.MaxLevel())
	}
}

func TestUpdateCurrentMutatesInPlace(t *testing.T) {
	tr := New(payload{V: 0})
	if err := tr.UpdateCurrent(payload{V: 99}); err != nil {
		t.Fatal(err)
	}
	if tr.Current().Data.V != 99 {
		t.Errorf("expected current node data updated to 99, got %d", tr.Current().Data.V)
	}
	if tr.Current().Version != "0@1" {
		t.Error("UpdateCurrent must not allocate a new version")
	}
}

func TestBranchRandomProducerReturnsFewerThanRequested(t *testing.T) {
	// n_raw selects 3 (1+Intn(4) with raw value 2 => n=3), but the
	// producer only returns 2 children; current-pointer selection
	// must fall back to modulo the actual count.
	r := &fixedRand{seq: []int{0, 2, 2}}
	tr := NewWithRand(payload{V: 0}, r)

	version, err := tr.BranchRandom(func(n int, versions []string) []payload {
		return []payload{{V: 1}, {V: 2}}
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(tr.root.Children) != 2 {
		t.Fatalf("expected only the 2 returned children to be attached, got %d", len(tr.root.Children))
	}
	if version != tr.root.Children[0].Version {
		t.Errorf("expected current-pointer selection 2 mod 2 == 0, got %s", version)
	}
}

func TestPrintMarksCurrentNode(t *testing.T) {
	tr := New(payload{V: 0})
	out := tr.Print()
	if !strings.Contains(out, "* 0@1") {
		t.Errorf("expected root to be marked current in Print output, got %q", out)
	}

	minimal := tr.PrintMinimal()
	if strings.TrimSpace(minimal) != "0@1*" {
		t.Errorf("unexpected PrintMinimal output: %q", minimal)
	}
}
