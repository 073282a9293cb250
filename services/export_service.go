package services

import (
	"bytes"
	"context"
	"html/template"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ToCSV serializes a header row plus data rows into CSV text. Every cell is
// quoted and embedded quotes doubled, matching what spreadsheet imports
// expect from the venue's reports.
func ToCSV(headers []string, rows [][]string) string {
	var sb strings.Builder
	sb.WriteString(strings.Join(headers, ","))
	for _, row := range rows {
		sb.WriteString("\n")
		for i, cell := range row {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(`"` + strings.ReplaceAll(cell, `"`, `""`) + `"`)
		}
	}
	return sb.String()
}

// RenderReportHTML produces the printable document for a tabular report.
func RenderReportHTML(title string, headers []string, rows [][]string) (string, error) {
	tmpl, err := template.ParseFiles("templates/report.html")
	if err != nil {
		return "", err
	}

	data := struct {
		Title       string
		GeneratedAt string
		Headers     []string
		Rows        [][]string
	}{
		Title:       title,
		GeneratedAt: time.Now().Format("January 2, 2006"),
		Headers:     headers,
		Rows:        rows,
	}

	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, data); err != nil {
		return "", err
	}
	return rendered.String(), nil
}

// PDFFromHTML prints an HTML document to PDF through headless Chrome.
func PDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}
