package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"estate_backend/internal/feature/listingcopy/domain/entity"
)

const promptHeader = `You are an expert real estate copywriter working for a premium property listing platform.
Write a clear, professional property description that helps buyers or tenants quickly understand the value of the property.

Use ONLY the information provided below. Do NOT invent details.

PROPERTY DETAILS:
`

const promptInstructions = `
WRITING INSTRUCTIONS:
- Professional, trustworthy tone; specific and buyer-focused
- No exaggeration, no emojis, no generic phrases like "dream property"
- Do NOT mention missing information and do NOT repeat points

STRUCTURE:
1. Opening paragraph with property type, location and key selling point
2. Property overview: layout, size, bedrooms, bathrooms
3. Features and amenities in sentence form
4. Location and lifestyle, kept realistic
5. A subtle call to action

LENGTH & FORMAT:
- 180 to 300 words
- Plain text only, short paragraphs
- No HTML, markdown, or bullet points

OUTPUT:
Return ONLY the final property description text.
`

// BuildPrompt は与えられた事実だけを列挙したプロンプトを組み立てます。
func BuildPrompt(f entity.Facts) string {
	var b strings.Builder
	b.WriteString(promptHeader)

	line := func(label, value string) {
		if strings.TrimSpace(value) != "" {
			fmt.Fprintf(&b, "%s: %s\n", label, strings.TrimSpace(value))
		}
	}
	num := func(label string, v int, suffix string) {
		if v > 0 {
			fmt.Fprintf(&b, "%s: %d%s\n", label, v, suffix)
		}
	}

	line("Title", f.Title)
	line("Raw Description", f.Description)
	if f.Price > 0 {
		line("Price", groupThousands(f.Price))
	}
	line("Location", f.Location)
	line("Property Type", f.PropertyType)
	num("Bedrooms", f.Bedrooms, "")
	num("Bathrooms", f.Bathrooms, "")
	num("Built-up Area", f.SquareFootage, " sq ft")
	num("Year Built", f.YearBuilt, "")
	line("Amenities", strings.Join(nonEmpty(f.Amenities), ", "))
	line("Additional Features", strings.Join(nonEmpty(f.Features), ", "))

	b.WriteString(promptInstructions)
	return b.String()
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		b.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func nonEmpty(xs []string) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		if x = strings.TrimSpace(x); x != "" {
			out = append(out, x)
		}
	}
	return out
}

var (
	// HTMLドキュメントで返ってきた場合は body の中身だけを残す
	htmlBody = regexp.MustCompile(`(?is)<!DOCTYPE html>.*?<body[^>]*>(.*?)</body>.*?</html>`)
	htmlTag  = regexp.MustCompile(`<[^>]+>`)
)

// CleanText は生成結果からHTMLを取り除き、前後の空白を削ります。
func CleanText(s string) string {
	s = htmlBody.ReplaceAllString(strings.TrimSpace(s), "$1")
	s = htmlTag.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
