package korapay

import (
	"bytes"
	"encoding/json"

	"github.com/piresc/duespay/internal/pkg/money"
	"github.com/piresc/duespay/internal/utils"
	"github.com/shopspring/decimal"
)

// MetadataReferenceKey always carries the merchant reference
const MetadataReferenceKey = "txn_ref"

const (
	bankTransferMaxKeys   = 5
	bankTransferMaxKeyLen = 20
)

// Metadata is an insertion-ordered JSON object sent with charges
type Metadata struct {
	keys   []string
	values map[string]interface{}
}

// NewMetadata creates empty metadata
func NewMetadata() *Metadata {
	return &Metadata{values: make(map[string]interface{})}
}

// Set adds or replaces key. Decimals are stored as two-place strings.
func (m *Metadata) Set(key string, value interface{}) *Metadata {
	switch v := value.(type) {
	case decimal.Decimal:
		value = money.Format2DP(v)
	case *decimal.Decimal:
		if v != nil {
			value = money.Format2DP(*v)
		}
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return m
}

// Get returns the value for key
func (m *Metadata) Get(key string) (interface{}, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Keys returns keys in insertion order
func (m *Metadata) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// Len returns the number of keys
func (m *Metadata) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// withReference returns a copy with txn_ref first, then the caller's keys
func (m *Metadata) withReference(reference string) *Metadata {
	out := NewMetadata().Set(MetadataReferenceKey, reference)
	for _, k := range m.Keys() {
		if k == MetadataReferenceKey {
			continue
		}
		out.Set(k, m.values[k])
	}
	return out
}

// limit keeps the first maxKeys keys with names cut to maxKeyLen. A key whose
// cut name is already taken is dropped; the earlier value wins.
func (m *Metadata) limit(maxKeys, maxKeyLen int) *Metadata {
	out := NewMetadata()
	for _, k := range m.Keys() {
		if out.Len() >= maxKeys {
			break
		}
		short := utils.Truncate(k, maxKeyLen)
		if _, taken := out.values[short]; taken {
			continue
		}
		out.Set(short, m.values[k])
	}
	return out
}

// MarshalJSON writes keys in insertion order
func (m *Metadata) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
