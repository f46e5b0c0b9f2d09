package cli

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"revise/internal/model"
)

func renderTable(headers []string, rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(row))
		for i, cell := range row {
			r[i] = cell
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, len(headers))
	for i := range headers {
		columnConfigs[i] = table.ColumnConfig{Number: i + 1, AlignHeader: text.AlignLeft}
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

func cardRows(cards []model.Card) [][]string {
	rows := make([][]string, 0, len(cards))
	for _, c := range cards {
		rows = append(rows, []string{
			c.ID,
			c.Subject,
			c.Chapter,
			c.Concept,
			c.Type,
			fmt.Sprintf("%d", c.Difficulty),
			fmt.Sprintf("%.2f", c.RetentionScore),
			c.NextReviewAt.Local().Format("2006-01-02 15:04"),
		})
	}
	return rows
}

var cardHeaders = []string{"ID", "Subject", "Chapter", "Concept", "Type", "Diff", "Retention", "Next Review"}

func printCards(cards []model.Card) {
	if formatFlag == "table" {
		fmt.Println(renderTable(cardHeaders, cardRows(cards)))
		return
	}
	printJSON(cards)
}

func formatDay(t time.Time) string {
	return t.Local().Format("2006-01-02")
}
