package bintrie

// Get resolves key against the trie rooted at root. It returns ok=false,
// with no error, when the key is absent; a non-nil error only on a
// malformed or missing node encountered while descending.
func Get(s NodeReader, root Hash, key []byte) ([]byte, bool, error) {
	return get(s, root, sliceBits(key, 0, len(key)*8))
}

func get(s NodeReader, root Hash, path bitPath) ([]byte, bool, error) {
	if root == BlankHash {
		return nil, false, nil
	}
	raw, err := loadNode(s, root)
	if err != nil {
		return nil, false, err
	}
	switch n := raw.(type) {
	case *leafNode:
		if bitPathEqual(path, n.Suffix) {
			return n.Value, true, nil
		}
		return nil, false, nil
	case *branchNode:
		next := n.Left
		if path.bitAt(0) != 0 {
			next = n.Right
		}
		return get(s, next, path.dropFirst(1))
	default:
		return nil, false, nil
	}
}

// Put inserts or overwrites key->value under the trie rooted at root,
// returning the new root. The old root (and every node reachable from it)
// remains addressable: Put never deletes or mutates an existing node, only
// writes new ones.
func Put(s NodeStore, root Hash, key, value []byte) (Hash, error) {
	return put(s, root, sliceBits(key, 0, len(key)*8), value)
}

func put(s NodeStore, root Hash, path bitPath, value []byte) (Hash, error) {
	if root == BlankHash {
		return storeLeaf(s, path, value)
	}
	raw, err := loadNode(s, root)
	if err != nil {
		return Hash{}, err
	}
	switch n := raw.(type) {
	case *leafNode:
		if bitPathEqual(path, n.Suffix) {
			return storeLeaf(s, path, value)
		}
		return splitLeaf(s, n, path, value)
	case *branchNode:
		if path.bitAt(0) == 0 {
			newLeft, err := put(s, n.Left, path.dropFirst(1), value)
			if err != nil {
				return Hash{}, err
			}
			return storeBranch(s, newLeft, n.Right)
		}
		newRight, err := put(s, n.Right, path.dropFirst(1), value)
		if err != nil {
			return Hash{}, err
		}
		return storeBranch(s, n.Left, newRight)
	default:
		return Hash{}, ErrCorruptNode
	}
}

// splitLeaf replaces a leaf that diverges from the incoming key with a
// chain of single-bit branches down to the first differing bit, below
// which the two keys each get their own leaf. This is the one place the
// trie grows branch depth beyond one level per bit of actual divergence:
// a literal radix-2 trie has no extension nodes, so two keys sharing a
// long common prefix really do cost one branch node per shared bit.
func splitLeaf(s NodeStore, existing *leafNode, path bitPath, value []byte) (Hash, error) {
	cp := commonPrefixLen(path, existing.Suffix)

	newLeaf, err := storeLeaf(s, path.dropFirst(cp+1), value)
	if err != nil {
		return Hash{}, err
	}
	oldLeaf, err := storeLeaf(s, existing.Suffix.dropFirst(cp+1), existing.Value)
	if err != nil {
		return Hash{}, err
	}

	var cur Hash
	if path.bitAt(cp) == 0 {
		cur, err = storeBranch(s, newLeaf, oldLeaf)
	} else {
		cur, err = storeBranch(s, oldLeaf, newLeaf)
	}
	if err != nil {
		return Hash{}, err
	}

	for i := cp - 1; i >= 0; i-- {
		if path.bitAt(i) == 0 {
			cur, err = storeBranch(s, cur, BlankHash)
		} else {
			cur, err = storeBranch(s, BlankHash, cur)
		}
		if err != nil {
			return Hash{}, err
		}
	}
	return cur, nil
}

// RootExists reports whether root has been persisted: the blank root
// always exists, and any other root exists iff its node encoding is
// resolvable (buffered or committed) without descending further.
func RootExists(s NodeReader, root Hash) (bool, error) {
	if root == BlankHash {
		return true, nil
	}
	data, err := s.GetNode(root)
	if err != nil {
		return false, err
	}
	return data != nil, nil
}
