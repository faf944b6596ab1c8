package stream

import "fmt"

// NodeKind identifies a structural node on the document stack.
type NodeKind int

const (
	NodeRoot NodeKind = iota
	NodeObject
	NodeArray
	NodeKey
	NodeValue
)

func (k NodeKind) String() string {
	switch k {
	case NodeRoot:
		return "Root"
	case NodeObject:
		return "Object"
	case NodeArray:
		return "Array"
	case NodeKey:
		return "Key"
	case NodeValue:
		return "Value"
	default:
		return "Unknown"
	}
}

func (k NodeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *NodeKind) UnmarshalText(d []byte) error {
	v := string(d)
	pk, ok := map[string]NodeKind{
		"Root":   NodeRoot,
		"Object": NodeObject,
		"Array":  NodeArray,
		"Key":    NodeKey,
		"Value":  NodeValue,
	}[v]
	if ok {
		*k = pk
		return nil
	}
	return fmt.Errorf("unknown node kind %q", v)
}
