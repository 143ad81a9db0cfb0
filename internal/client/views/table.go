package views

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
)

// Column picks a field out of a JSON object. Field may be a dotted path into
// nested objects, e.g. "service_detail.name".
type Column struct {
	Header string
	Field  string
}

var (
	patientColumns = []Column{
		{"ID", "id"}, {"First name", "first_name"}, {"Last name", "last_name"},
		{"Age", "age"}, {"Gender", "gender"}, {"Email", "email"}, {"Phone", "phone_number"},
	}
	appointmentColumns = []Column{
		{"ID", "id"}, {"Patient", "patient_name"}, {"Service", "service_detail.name"},
		{"Start", "start_time"}, {"End", "end_time"}, {"Status", "status"},
	}
	serviceColumns = []Column{
		{"ID", "id"}, {"Name", "name"}, {"Minutes", "duration_minutes"},
		{"Price", "price"}, {"Active", "is_active"},
	}
	inventoryColumns = []Column{
		{"ID", "id"}, {"Name", "name"}, {"Stock", "current_stock"},
		{"Reorder at", "reorder_threshold"}, {"Unit", "unit"}, {"Unit price", "unit_price"}, {"Supplier", "supplier"},
	}
	invoiceColumns = []Column{
		{"ID", "id"}, {"Patient", "patient"}, {"Status", "status"},
		{"Issued", "issue_date"}, {"Due", "due_date"}, {"Total", "total_amount"},
	}
	userColumns = []Column{
		{"ID", "id"}, {"Email", "email"}, {"First name", "first_name"}, {"Last name", "last_name"}, {"Role", "role"},
	}
	forecastColumns = []Column{
		{"Date", "date"}, {"Day", "weekday"}, {"Predicted", "predicted_count"},
	}
)

// rowsOf accepts either a JSON array or a paginated {"results": [...]} page.
func rowsOf(v any) ([]map[string]any, error) {
	if page, ok := v.(map[string]any); ok {
		results, found := page["results"]
		if !found {
			return nil, fmt.Errorf("expected a list, got an object")
		}
		v = results
	}
	if v == nil {
		return nil, nil
	}
	list, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("expected a list, got %T", v)
	}
	rows := make([]map[string]any, 0, len(list))
	for i, item := range list {
		row, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("item %d: expected an object, got %T", i, item)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func lookup(row map[string]any, field string) any {
	var cur any = row
	for _, part := range strings.Split(field, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = m[part]
	}
	return cur
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return "-"
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		if x {
			return "yes"
		}
		return "no"
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return fmt.Sprint(x)
		}
		return string(b)
	}
}

func renderRows(w io.Writer, columns []Column, rows []map[string]any) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "(no records)")
		return err
	}

	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.Header
	}

	table := tablewriter.NewWriter(w)
	table.Header(headers)
	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, c := range columns {
			cells[i] = formatCell(lookup(row, c.Field))
		}
		if err := table.Append(cells); err != nil {
			return err
		}
	}
	return table.Render()
}

// renderPairs prints a two-column label/value table.
func renderPairs(w io.Writer, pairs [][2]string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Field", "Value"})
	for _, p := range pairs {
		if err := table.Append([]string{p[0], p[1]}); err != nil {
			return err
		}
	}
	return table.Render()
}
