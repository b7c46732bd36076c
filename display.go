package chainhashmap

import (
	"fmt"
	"github.com/gostonefire/chainhashmap/internal/chain"
	"github.com/olekukonko/tablewriter"
	"io"
	"strconv"
)

// Display - Writes the contents of all non-empty buckets to w as a table, one row per entry in chain order.
// An empty map writes a single line saying so.
func (C *ChainHashMap) Display(w io.Writer) (err error) {
	if C.size == 0 {
		_, err = fmt.Fprintln(w, "the hash map is empty")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Bucket", "Position", "ID", "Name", "Score"})

	var iter *chain.Iterator
	var node *chain.Node
	var position int

	for i, bucket := range C.buckets {
		if bucket.IsEmpty() {
			continue
		}

		position = 0
		iter = bucket.Iterate(true)
		for iter.HasNext() {
			node, err = iter.Next()
			if err != nil {
				return
			}
			e := node.Entry()
			table.Append([]string{
				strconv.Itoa(i),
				strconv.Itoa(position),
				e.ID(),
				e.Name(),
				strconv.FormatInt(e.Score(), 10),
			})
			position++
		}
	}

	table.Render()

	return
}
