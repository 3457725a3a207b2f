package issue

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// marshalOrderedObject renders keys in the order they're handed in,
// producing a JSON object whose key order survives round-trips through
// tools that preserve source order (spec §9 "Unique-insertion ordered
// mappings" — encoding/json's map marshaling sorts keys alphabetically,
// which would silently violate the enum-order guarantee).
func marshalOrderedObject[K any](keys []K, kv func(K) (string, interface{})) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for idx, k := range keys {
		name, value := kv(k)
		if idx > 0 {
			buf.WriteByte(',')
		}
		keyBytes, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')
		valBytes, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("marshal value for key %q: %w", name, err)
		}
		buf.Write(valBytes)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// yamlOrderedMap renders as a YAML mapping whose key order matches keys,
// since gopkg.in/yaml.v3 otherwise emits Go map keys in random order.
type yamlOrderedMap struct {
	keys   []Type
	values map[string][]Issue
}

func (m yamlOrderedMap) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, k := range m.keys {
		name := k.String()
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(name); err != nil {
			return nil, err
		}
		valNode := &yaml.Node{}
		if err := valNode.Encode(m.values[name]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}
