// Package outreach drafts initial contact messages for tracked LPs.
package outreach

import (
	"fmt"
	"strings"

	"github.com/joelkehle/lp-outreach/internal/lpstore"
)

// DraftMessage builds a first-touch email for an LP. When an introduction
// source is known it is referenced; otherwise the opening leans on the LP's
// stated interests.
func DraftMessage(rec lpstore.LPRecord, fundName, valueProp, introSource string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Subject: Exploring Opportunities in %s\n\n", fundName)
	fmt.Fprintf(&b, "Dear %s,\n\n", rec.Name)
	if introSource != "" {
		fmt.Fprintf(&b, "I was introduced to you by %s, who mentioned your interest in %s.\n\n", introSource, rec.Interests)
	} else {
		fmt.Fprintf(&b, "I came across your work at %s and noted your focus on %s.\n\n", rec.Firm, rec.Interests)
	}
	fmt.Fprintf(&b, "Our fund, %s, specializes in %s. We'd love to discuss how this aligns with your portfolio.\n\n", fundName, valueProp)
	b.WriteString("Best regards,\nYour Name\nYour Fund")
	return b.String()
}
