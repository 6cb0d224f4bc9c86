package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/minghua/fundtrade"
	md "github.com/nao1215/markdown"
)

// ReportMarkdown renders a point-in-time holding report to markdown.
func ReportMarkdown(code string, r *fundtrade.Report) string {
	var b strings.Builder

	doc := md.NewMarkdown(&b)
	doc.H1(fmt.Sprintf("Holding Report %s", code))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold(fmt.Sprintf("Value on %s", r.Date)),
			md.Bold(r.MarketValue.String()),
		},
		Rows: [][]string{
			{"Net Asset Value", r.NAV.String()},
			{"Shares", r.Shares.String()},
			{"Unit Cost", r.UnitCost.String()},
		},
	})

	doc.H2("Capital")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Total Gain"),
			md.Bold(r.Gain.SignedString()),
		},
		Rows: [][]string{
			{"Invested", r.Invested.String()},
			{"Returned", r.Returned.String()},
			{"Holding Cost", r.HoldingCost.SignedString()},
		},
	})
	doc.Build()

	ConditionalBlock(&b, func(w io.Writer) bool {
		if r.Bottleneck.IsZero() {
			return false
		}
		sub := md.NewMarkdown(w)
		sub.H2("Performance")
		sub.Table(md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
			},
			Header: []string{
				md.Bold("Return on Capital"),
				md.Bold(fmt.Sprintf("%.2f%%", r.ReturnRate*100)),
			},
			Rows: [][]string{
				{"Capital at Risk", r.Bottleneck.String()},
				{"Annualized Turnover", fmt.Sprintf("%.2f", r.Turnover)},
			},
		})
		sub.Build()
		return true
	})

	return b.String()
}
