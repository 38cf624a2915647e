package analytics

import (
	"fmt"
	"strings"

	"github.com/cmlabs-hris/hris-insights-go/internal/domain/analytics"
)

// RenderReportSummary renders the narrative HR summary as markdown.
func RenderReportSummary(data analytics.ReportData) string {
	var b strings.Builder

	b.WriteString("### HR Analytics Summary\n\n")
	fmt.Fprintf(&b, "The organization currently has **%d employees**. ", data.TotalEmployees)
	fmt.Fprintf(&b, "The average employee tenure is **%.1f years**, indicating a stable workforce. ", data.AverageTenureYears)

	rating := fmt.Sprintf("%.2f", data.AverageSatisfaction)
	switch {
	case data.AverageSatisfaction > 4.0:
		fmt.Fprintf(&b, "Employee satisfaction is **very high**, with an average rating of **%s out of 5**. ", rating)
	case data.AverageSatisfaction > 3.0:
		fmt.Fprintf(&b, "Employee satisfaction is **good**, with an average rating of **%s out of 5**. ", rating)
	default:
		fmt.Fprintf(&b, "Attention may be needed to improve employee satisfaction, which currently has an average rating of **%s out of 5**. ", rating)
	}

	fmt.Fprintf(&b, "\n\nRegarding attendance, there are currently **%d employees on leave**. ", data.TotalOnLeave)
	fmt.Fprintf(&b, "The most frequently cited reason for absence is **\"%s\"**. ", data.MostCommonReason)

	b.WriteString("\n\n**Key Insights:**\n")
	b.WriteString("- **Workforce Stability:** The average tenure suggests good employee retention.\n")
	b.WriteString("- **Satisfaction Levels:** Overall satisfaction is positive, but continuous monitoring is advised.\n")
	fmt.Fprintf(&b, "- **Leave Trends:** Monitoring the reasons for leave, especially \"%s\", could highlight areas for employee support initiatives.", data.MostCommonReason)

	return b.String()
}
