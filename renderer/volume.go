package renderer

import (
	"fmt"
	"strings"

	"github.com/minghua/fundtrade"
	md "github.com/nao1215/markdown"
)

// VolumeMarkdown renders the bucketed trade volumes of one holding to markdown.
func VolumeMarkdown(code string, period fundtrade.Period, buckets []fundtrade.VolumeBucket) string {
	var b strings.Builder

	doc := md.NewMarkdown(&b)
	doc.H1(fmt.Sprintf("Trade Volume %s (%s)", code, period))

	if len(buckets) == 0 {
		doc.PlainText("No trades recorded.")
		doc.Build()
		return b.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Period", "Bought", "Sold"},
	}
	for _, bucket := range buckets {
		table.Rows = append(table.Rows, []string{
			bucket.Date.String(),
			bucket.Bought.String(),
			bucket.Sold.String(),
		})
	}
	doc.Table(table)
	doc.Build()
	return b.String()
}
