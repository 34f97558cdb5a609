package history

import "encoding/json"

type treeJSON[T any] struct {
	Root        *Node[T] `json:"root"`
	MaxLevel    int      `json:"maxLevel"`
	CurrentNode *string  `json:"currentNode"`
}

// Save renders the tree to its normative JSON form: {"root", "maxLevel",
// "currentNode"}, preserving structure, payloads, max level and the
// current version.
func (t *Tree[T]) Save() (string, error) {
	cur := t.current
	var curPtr *string
	if cur != "" {
		curPtr = &cur
	}
	raw, err := json.Marshal(treeJSON[T]{
		Root:        t.root,
		MaxLevel:    t.level,
		CurrentNode: curPtr,
	})
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Load parses the normative JSON form produced by Save into a new
// Tree. The returned tree's RandSource is the system default; callers
// that need determinism after a Load should not rely on randomness
// from the restored tree alone.
func Load[T any](data string) (*Tree[T], error) {
	var parsed treeJSON[T]
	if err := json.Unmarshal([]byte(data), &parsed); err != nil {
		return nil, err
	}

	t := &Tree[T]{
		root:  parsed.Root,
		level: parsed.MaxLevel,
		rand:  NewSystemRandSource(),
	}
	if parsed.CurrentNode != nil {
		t.current = *parsed.CurrentNode
	}
	return t, nil
}
