package storage

import (
	"cmp"
	"fmt"
	"io"
	"slices"
)

const (
	defaultCatalogRowLength = 80
	defaultCatalogRowCount  = 5
)

type validatingSelectable interface {
	ValidatingSpec
	Selector() string
}

// Catalog is a numbered, column-major listing of a store's records,
// ordered by their selector labels.
type Catalog[T validatingSelectable] struct {
	options []option[T]
	output  []string
}

type option[T validatingSelectable] struct {
	id  string
	val T
}

func NewCatalog[T validatingSelectable](st Storer[T]) *Catalog[T] {
	c := &Catalog[T]{}

	for id, val := range st.GetAll() {
		c.options = append(c.options, option[T]{id: id, val: val})
	}
	slices.SortFunc(c.options, func(a, b option[T]) int {
		return cmp.Or(cmp.Compare(a.val.Selector(), b.val.Selector()), cmp.Compare(a.id, b.id))
	})
	c.build()

	return c
}

func (c *Catalog[T]) build() {
	// Calculate column width
	colWidth := 1
	for _, v := range c.options {
		l := len(v.val.Selector()) + 7 // Plus 7 for number and spacing (nn. <val>  )
		if l > colWidth {
			colWidth = l
		}
	}

	// Fill columns first, left to right, adding rows past the default
	// count when the entries don't fit across.
	numCols := max(1, defaultCatalogRowLength/colWidth)
	numRows := max(defaultCatalogRowCount, (len(c.options)+numCols-1)/numCols)

	rows := make([]string, numRows)
	for i, v := range c.options {
		rows[i%numRows] += fmt.Sprintf("%2d. %-*s  ", i+1, colWidth-5, v.val.Selector())
	}

	c.output = rows
}

// WriteTo writes the non-empty rows of the listing.
func (c *Catalog[T]) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, row := range c.output {
		if row == "" {
			continue
		}
		n, err := fmt.Fprintf(w, "%s\n", row)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Select returns the id listed under number i, or "" when out of range.
func (c *Catalog[T]) Select(i int) string {
	if i < 1 || i > len(c.options) {
		return ""
	}
	return c.options[i-1].id
}

func (c *Catalog[T]) Len() int {
	return len(c.options)
}
