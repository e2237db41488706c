package generator

import (
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/Feuerlord2/govalorant/internal/models"
)

// plainText drops any markup upstream put into a text field and collapses whitespace.
func plainText(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

func createRichContent(e *models.Entry) string {
	var content strings.Builder

	content.WriteString(fmt.Sprintf("<h3>%s</h3>\n", html.EscapeString(e.FullTitle())))

	if e.ImageURL != "" {
		content.WriteString(fmt.Sprintf("<p><img src=\"%s\" alt=\"%s\" style=\"max-width: 600px;\"></p>\n",
			html.EscapeString(e.ImageURL), html.EscapeString(e.Title)))
	}

	content.WriteString(fmt.Sprintf("<p>%s</p>\n", html.EscapeString(e.FullDescription())))

	if e.PromoImageURL != "" {
		content.WriteString(fmt.Sprintf("<p><img src=\"%s\" alt=\"%s promo\" style=\"max-width: 300px;\"></p>\n",
			html.EscapeString(e.PromoImageURL), html.EscapeString(e.Title)))
	}

	content.WriteString(fmt.Sprintf("<p><a href=\"%s\">Bundle details</a></p>\n", html.EscapeString(e.Link)))

	return content.String()
}
