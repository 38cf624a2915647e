package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-insights-go/internal/config"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/analytics"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/stats"
)

const (
	recommendLateClockIn    = "Monitor for repeated occurrences."
	recommendHoursDeviation = "Manager to verify reason for deviation."
)

// ScanAttendance applies the late clock-in rule to every qualifying record and
// the hours-deviation rule per employee. Non-qualifying records are ignored.
func ScanAttendance(records []attendance.Record, cfg config.AnalyticsConfig) []analytics.Anomaly {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	var (
		anomalies  []analytics.Anomaly
		order      []string
		byEmployee = make(map[string][]attendance.Record)
	)

	for _, r := range records {
		if !r.Qualifies() {
			continue
		}

		if lateClockIn(r, cfg, loc) {
			anomalies = append(anomalies, analytics.Anomaly{
				ID:   "late-" + r.ID,
				Type: analytics.TypeLateClockIn,
				Description: fmt.Sprintf("Clocked in at %s on %s",
					r.CheckIn.In(loc).Format("15:04:05"), r.Date.Format("2006-01-02")),
				EmployeeID:     r.EmployeeID,
				EmployeeName:   r.EmployeeName,
				Severity:       analytics.SeverityLow,
				Date:           analytics.FormatDate(r.Date),
				Recommendation: recommendLateClockIn,
			})
		}

		if _, seen := byEmployee[r.EmployeeID]; !seen {
			order = append(order, r.EmployeeID)
		}
		byEmployee[r.EmployeeID] = append(byEmployee[r.EmployeeID], r)
	}

	for _, employeeID := range order {
		anomalies = append(anomalies, hoursDeviations(byEmployee[employeeID], cfg)...)
	}

	return anomalies
}

// lateClockIn compares the check-in against the record's own calendar day at
// start hour plus grace, evaluated in loc.
func lateClockIn(r attendance.Record, cfg config.AnalyticsConfig, loc *time.Location) bool {
	y, m, d := r.Date.Date()
	threshold := time.Date(y, m, d, cfg.WorkdayStartHour, cfg.LateGraceMinutes, 0, 0, loc)
	return r.CheckIn.After(threshold)
}

func hoursDeviations(records []attendance.Record, cfg config.AnalyticsConfig) []analytics.Anomaly {
	if len(records) < cfg.MinSamples {
		return nil
	}

	hours := make([]float64, len(records))
	for i, r := range records {
		hours[i] = *r.TotalHours
	}
	summary := stats.Compute(hours)

	var anomalies []analytics.Anomaly
	for _, r := range records {
		worked := *r.TotalHours
		if !summary.IsOutlier(worked, cfg.ZScoreThreshold) {
			continue
		}

		anomalyType := analytics.TypeShortHours
		if worked > summary.Mean {
			anomalyType = analytics.TypeLongHours
		}

		anomalies = append(anomalies, analytics.Anomaly{
			ID:   slug(anomalyType) + "-" + r.ID,
			Type: anomalyType,
			Description: fmt.Sprintf("Worked %.1f hours on %s, average is %.1f hours.",
				worked, r.Date.Format("2006-01-02"), summary.Mean),
			EmployeeID:     r.EmployeeID,
			EmployeeName:   r.EmployeeName,
			Severity:       analytics.SeverityMedium,
			Date:           analytics.FormatDate(r.Date),
			Recommendation: recommendHoursDeviation,
		})
	}
	return anomalies
}

// slug turns "Unusually Long Hours" into "unusually-long-hours".
func slug(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), "-")
}
