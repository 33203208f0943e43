package templates

import (
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/counselflow/intake-api/pkg/form"
)

// priorityColors for the alert banner.
var priorityColors = map[string]string{
	"critical": "#c0392b",
	"high":     "#d35400",
	"medium":   "#2980b9",
	"standard": "#7f8c8d",
}

// RenderInternalAlert builds the notification email sent to the firm for each
// submission: a banner with score and priority, then every form field in a
// table. Fields render in sorted key order so two alerts for the same
// submission are identical.
func RenderInternalAlert(kind string, score int, priority string, f form.Fields) (subject, body string) {
	subject = fmt.Sprintf("[%s] New %s lead - score %d", strings.ToUpper(priority), strings.ReplaceAll(kind, "_", " "), score)

	color, ok := priorityColors[priority]
	if !ok {
		color = priorityColors["standard"]
	}

	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var rows strings.Builder
	for _, k := range keys {
		rows.WriteString(fmt.Sprintf(
			`<tr><td style="padding: 6px 12px; border-bottom: 1px solid #eee; font-weight: bold;">%s</td><td style="padding: 6px 12px; border-bottom: 1px solid #eee;">%s</td></tr>`,
			html.EscapeString(k), html.EscapeString(fmt.Sprintf("%v", f[k]))))
	}

	body = fmt.Sprintf(`
		<html>
		<body style="font-family: Arial, sans-serif; color: #1a1a2e; max-width: 700px; margin: 0 auto;">
			<div style="background-color: %s; color: white; padding: 16px 20px; border-radius: 4px;">
				<h2 style="margin: 0;">New %s submission</h2>
				<p style="margin: 8px 0 0;">Score: <strong>%d</strong> &middot; Priority: <strong>%s</strong></p>
			</div>
			<table style="width: 100%%; border-collapse: collapse; margin-top: 16px;">%s</table>
		</body>
		</html>
	`, color, strings.ReplaceAll(kind, "_", " "), score, priority, rows.String())

	return subject, body
}
