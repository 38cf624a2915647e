package analytics

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-insights-go/internal/config"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/analytics"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/stats"
)

const recommendHighLeaveBalance = "Encourage employee to take leave to prevent burnout."

// ScanLeaveBalances flags accrued balances strictly above the population mean
// times the configured multiplier. Populations smaller than the configured
// floor yield nothing.
func ScanLeaveBalances(balances []leave.Balance, cfg config.AnalyticsConfig, now time.Time) []analytics.Anomaly {
	if len(balances) < cfg.MinBalanceRecords {
		return nil
	}

	accrued := make([]float64, len(balances))
	for i, b := range balances {
		accrued[i] = b.Accrued.InexactFloat64()
	}
	summary := stats.Compute(accrued)
	threshold := summary.Mean * cfg.BalanceMultiplier

	var anomalies []analytics.Anomaly
	for i, b := range balances {
		if accrued[i] <= threshold {
			continue
		}
		anomalies = append(anomalies, analytics.Anomaly{
			ID:   "high-leave-" + b.ID,
			Type: analytics.TypeHighLeaveBalance,
			Description: fmt.Sprintf("%s has an accrued leave balance of %s, well above the average of %.1f.",
				b.EmployeeName, b.Accrued.String(), summary.Mean),
			EmployeeID:     b.EmployeeID,
			EmployeeName:   b.EmployeeName,
			Severity:       analytics.SeverityWarning,
			Date:           analytics.FormatDate(now),
			Recommendation: recommendHighLeaveBalance,
		})
	}
	return anomalies
}
