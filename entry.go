package props

import (
	"encoding/xml"
	"strconv"
)

// Entry is one exported value. List members produce one Entry per element
// sharing Key and Group; scalar members produce a single Entry with a nil
// Index.
type Entry struct {
	Key       string `json:"key" xml:"key,attr" yaml:"key" msgpack:"key" bson:"key" toml:"key"`
	Group     string `json:"group,omitempty" xml:"group,attr,omitempty" yaml:"group,omitempty" msgpack:"group,omitempty" bson:"group,omitempty" toml:"group,omitempty"`
	Index     *int   `json:"index,omitempty" xml:"index,attr,omitempty" yaml:"index,omitempty" msgpack:"index,omitempty" bson:"index,omitempty" toml:"index"`
	Value     string `json:"value" xml:",chardata" yaml:"value" msgpack:"value" bson:"value" toml:"value"`
	Sensitive bool   `json:"sensitive,omitempty" xml:"sensitive,attr,omitempty" yaml:"sensitive,omitempty" msgpack:"sensitive,omitempty" bson:"sensitive,omitempty" toml:"sensitive,omitempty"`
}

// Position returns the list index of the entry, or false for scalars.
func (e Entry) Position() (int, bool) {
	if e.Index == nil {
		return 0, false
	}
	return *e.Index, true
}

// String renders the entry with sensitive values redacted.
func (e Entry) String() string {
	return renderEntry(e, DefaultMarker, nil)
}

// label returns Key, with the index appended for list entries.
func (e Entry) label() string {
	if e.Index == nil {
		return e.Key
	}
	return e.Key + "[" + strconv.Itoa(*e.Index) + "]"
}

// Collection is an ordered sequence of entries: schema declaration order,
// then ascending list index.
type Collection []Entry

// Keys returns the distinct keys in order of first appearance.
func (c Collection) Keys() []string {
	seen := make(map[string]bool)
	var keys []string
	for _, e := range c {
		if !seen[e.Key] {
			seen[e.Key] = true
			keys = append(keys, e.Key)
		}
	}
	return keys
}

// Get returns the entries for key in collection order.
func (c Collection) Get(key string) []Entry {
	var out []Entry
	for _, e := range c {
		if e.Key == key {
			out = append(out, e)
		}
	}
	return out
}

// String renders the collection with sensitive values redacted.
func (c Collection) String() string {
	return Render(c)
}

// GoString keeps %#v from printing raw tokens.
func (c Collection) GoString() string {
	return Render(c)
}

// document is the envelope codecs marshal.
type document struct {
	XMLName xml.Name `json:"-" xml:"props" yaml:"-" msgpack:"-" bson:"-" toml:"-"`
	Entries []Entry  `json:"entries" xml:"entry" yaml:"entries" msgpack:"entries" bson:"entries" toml:"entry"`
}

func indexPtr(i int) *int {
	return &i
}
