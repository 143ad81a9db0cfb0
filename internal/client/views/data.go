package views

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/physiofit/clinic/internal/client/models"
)

type listView struct {
	api      Fetcher
	title    string
	endpoint string
	columns  []Column
}

func (v *listView) Title() string { return v.title }

func (v *listView) Render(ctx context.Context, w io.Writer) error {
	var body any
	if err := v.api.Get(ctx, v.endpoint, nil, &body); err != nil {
		return fmt.Errorf("load %s: %w", v.endpoint, err)
	}
	rows, err := rowsOf(body)
	if err != nil {
		return fmt.Errorf("load %s: %w", v.endpoint, err)
	}
	return renderRows(w, v.columns, rows)
}

// dashboardStats is the analytics/dashboard/ payload.
type dashboardStats struct {
	TotalPatients     int    `json:"total_patients"`
	TodayAppointments int    `json:"today_appointments"`
	MonthlyRevenue    any    `json:"monthly_revenue"`
	PendingInvoices   int    `json:"pending_invoices"`
	Role              string `json:"role"`
}

// forecast is the analytics/forecast/ payload.
type forecast struct {
	Clinic []any `json:"clinic_forecast"`
	Mine   []any `json:"my_forecast"`
}

type dashboardView struct {
	api Fetcher
}

func (v *dashboardView) Title() string { return "Dashboard" }

// Render shows the headline figures and the clinic-wide demand forecast.
// Revenue and pending invoices are only shown to administrators.
func (v *dashboardView) Render(ctx context.Context, w io.Writer) error {
	var stats dashboardStats
	if err := v.api.Get(ctx, "analytics/dashboard/", nil, &stats); err != nil {
		return fmt.Errorf("load dashboard: %w", err)
	}

	pairs := [][2]string{
		{"Total patients", fmt.Sprint(stats.TotalPatients)},
		{"Appointments today", fmt.Sprint(stats.TodayAppointments)},
	}
	if models.ParseRole(stats.Role) == models.RoleAdmin {
		pairs = append(pairs,
			[2]string{"Monthly revenue", "€" + formatCell(stats.MonthlyRevenue)},
			[2]string{"Pending invoices", fmt.Sprint(stats.PendingInvoices)},
		)
	}
	if err := renderPairs(w, pairs); err != nil {
		return err
	}

	var fc forecast
	if err := v.api.Get(ctx, "analytics/forecast/", nil, &fc); err != nil {
		return fmt.Errorf("load forecast: %w", err)
	}
	return renderForecast(w, "Clinic demand, next 7 days", fc.Clinic)
}

type analyticsView struct {
	api Fetcher
}

func (v *analyticsView) Title() string { return "Analytics" }

func (v *analyticsView) Render(ctx context.Context, w io.Writer) error {
	var fc forecast
	if err := v.api.Get(ctx, "analytics/forecast/", nil, &fc); err != nil {
		return fmt.Errorf("load forecast: %w", err)
	}
	if err := renderForecast(w, "Clinic demand, next 7 days", fc.Clinic); err != nil {
		return err
	}
	if fc.Mine == nil {
		return nil
	}
	return renderForecast(w, "My appointments, next 7 days", fc.Mine)
}

func renderForecast(w io.Writer, heading string, points []any) error {
	if _, err := fmt.Fprintln(w, heading); err != nil {
		return err
	}
	rows, err := rowsOf(points)
	if err != nil {
		return fmt.Errorf("forecast: %w", err)
	}
	return renderRows(w, forecastColumns, rows)
}

type profileView struct {
	api     Fetcher
	session SessionReader
}

func (v *profileView) Title() string { return "My profile" }

// Render prints the identity from the access token followed by the patient
// record matching the user's email, when the backend has one.
func (v *profileView) Render(ctx context.Context, w io.Writer) error {
	user, ok := v.session.CurrentUser()
	if !ok {
		return fmt.Errorf("profile: not logged in")
	}

	if err := renderPairs(w, [][2]string{
		{"Name", user.DisplayName()},
		{"Email", user.Email},
		{"Role", user.Role().String()},
	}); err != nil {
		return err
	}

	var body any
	if err := v.api.Get(ctx, "patients/", url.Values{"search": {user.Email}}, &body); err != nil {
		return fmt.Errorf("load patient record: %w", err)
	}
	rows, err := rowsOf(body)
	if err != nil {
		return fmt.Errorf("load patient record: %w", err)
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No patient record is linked to this account yet.")
		return err
	}
	return renderRows(w, patientColumns, rows[:1])
}
