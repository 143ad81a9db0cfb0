package views

import (
	"context"
	"io"
	"net/url"
	"slices"
	"strings"

	"github.com/physiofit/clinic/internal/client/models"
)

// Fetcher is the read side of the REST client.
type Fetcher interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
}

// SessionReader exposes the logged-in user's claims.
type SessionReader interface {
	CurrentUser() (*models.Claims, bool)
}

// View is one renderable page.
type View interface {
	Title() string
	Render(ctx context.Context, w io.Writer) error
}

const servicePrefix = "/service/"

// Registry maps application paths to views.
type Registry struct {
	views    map[string]View
	services map[string]serviceInfo
}

// NewRegistry builds the route table.
func NewRegistry(api Fetcher, session SessionReader) *Registry {
	r := &Registry{
		views:    make(map[string]View),
		services: serviceCatalogue,
	}

	r.views["/"] = homeView{}
	r.views["/about"] = textView{title: "About PhysioFitness", body: aboutText}
	r.views["/login"] = textView{title: "Sign in", body: "Type 'login' to sign in with your email and password."}
	r.views["/register"] = textView{title: "Create an account", body: "Type 'register' to create a patient account."}

	r.views["/dashboard"] = &dashboardView{api: api}
	r.views["/calendar"] = &listView{api: api, title: "Appointments", endpoint: "scheduling/appointments/", columns: appointmentColumns}
	r.views["/patients"] = &listView{api: api, title: "Patients", endpoint: "patients/", columns: patientColumns}
	r.views["/analytics"] = &analyticsView{api: api}
	r.views["/services"] = &listView{api: api, title: "Services", endpoint: "scheduling/services/", columns: serviceColumns}
	r.views["/inventory"] = &listView{api: api, title: "Inventory", endpoint: "inventory/items/", columns: inventoryColumns}
	r.views["/billing"] = &listView{api: api, title: "Invoices", endpoint: "billing/invoices/", columns: invoiceColumns}
	r.views["/users"] = &listView{api: api, title: "Users", endpoint: "users/", columns: userColumns}
	r.views["/profile"] = &profileView{api: api, session: session}

	return r
}

// Lookup returns the view for path. Any /service/<type> path resolves to a
// service page; unknown types show the physiotherapy page.
func (r *Registry) Lookup(path string) (View, bool) {
	if v, ok := r.views[path]; ok {
		return v, true
	}
	if kind, ok := strings.CutPrefix(path, servicePrefix); ok && kind != "" && !strings.Contains(kind, "/") {
		info, known := r.services[kind]
		if !known {
			info = r.services[defaultService]
		}
		return serviceView{info: info}, true
	}
	return nil, false
}

// Paths lists the registered paths in lexical order, with the service page
// shown in its pattern form.
func (r *Registry) Paths() []string {
	out := make([]string, 0, len(r.views)+1)
	for p := range r.views {
		out = append(out, p)
	}
	out = append(out, servicePrefix+":type")
	slices.Sort(out)
	return out
}
