package storage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

type mockCatalogStore struct {
	records map[string]*mockStoreSpec
}

func (m *mockCatalogStore) Save(id string, o *mockStoreSpec) error {
	m.records[id] = o
	return nil
}

func (m *mockCatalogStore) Get(id string) *mockStoreSpec {
	return m.records[id]
}

func (m *mockCatalogStore) GetAll() map[string]*mockStoreSpec {
	return m.records
}

func TestCatalog_Select(t *testing.T) {
	c := NewCatalog[*mockStoreSpec](&mockCatalogStore{records: map[string]*mockStoreSpec{
		"gamma": {Name: "Gamma"},
		"alpha": {Name: "Alpha"},
		"beta":  {Name: "Beta"},
	}})

	tests := map[string]struct {
		index int
		exp   string
	}{
		"first sorts by label": {index: 1, exp: "alpha"},
		"last":                 {index: 3, exp: "gamma"},
		"zero":                 {index: 0, exp: ""},
		"past the end":         {index: 4, exp: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "id", c.Select(tt.index), tt.exp)
		})
	}
	testutil.AssertEqual(t, "len", c.Len(), 3)
}

func TestCatalog_WriteTo(t *testing.T) {
	tests := map[string]struct {
		records  map[string]*mockStoreSpec
		expLines int
		expIn    []string
	}{
		"empty": {
			records: map[string]*mockStoreSpec{},
		},
		"fits in default rows": {
			records: map[string]*mockStoreSpec{
				"casual": {Name: "Casual"},
				"keys":   {Name: "Keysanity"},
				"hard":   {Name: "Hard"},
			},
			expLines: 3,
			expIn:    []string{" 1. Casual", " 2. Hard", " 3. Keysanity"},
		},
		"wraps into columns": {
			records: map[string]*mockStoreSpec{
				"a": {Name: "A"}, "b": {Name: "B"}, "c": {Name: "C"}, "d": {Name: "D"},
				"e": {Name: "E"}, "f": {Name: "F"}, "g": {Name: "G"},
			},
			expLines: 5,
			expIn:    []string{" 1. A", " 6. F"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			c := NewCatalog[*mockStoreSpec](&mockCatalogStore{records: tt.records})

			var buf bytes.Buffer
			n, err := c.WriteTo(&buf)
			if err != nil {
				t.Fatalf("write: %v", err)
			}
			testutil.AssertEqual(t, "bytes", n, int64(buf.Len()))

			out := strings.TrimSuffix(buf.String(), "\n")
			lines := 0
			if out != "" {
				lines = len(strings.Split(out, "\n"))
			}
			testutil.AssertEqual(t, "lines", lines, tt.expLines)
			for _, s := range tt.expIn {
				testutil.AssertEqual(t, s, strings.Contains(out, s), true)
			}
		})
	}
}
