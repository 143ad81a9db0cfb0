package views

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
)

const aboutText = `At PhysioFitness we believe that movement is life. We provide physiotherapy
and rehabilitation using current technology and evidence-based practice, for
elite athletes and for people recovering from surgery alike.`

const defaultService = "physio"

type serviceInfo struct {
	Title       string
	Description string
}

var serviceCatalogue = map[string]serviceInfo{
	"physio": {Title: "Physiotherapy", Description: "Expert manual therapy to restore movement."},
	"sport":  {Title: "Sports Massage", Description: "Deep tissue release for athletes."},
	"rehab":  {Title: "Rehabilitation", Description: "Post-surgery recovery programs."},
}

type textView struct {
	title string
	body  string
}

func (v textView) Title() string { return v.title }

func (v textView) Render(_ context.Context, w io.Writer) error {
	_, err := fmt.Fprintln(w, v.body)
	return err
}

type homeView struct{}

func (homeView) Title() string { return "PhysioFitness" }

func (homeView) Render(_ context.Context, w io.Writer) error {
	var b strings.Builder
	b.WriteString("Welcome to PhysioFitness.\n\nOur services:\n")
	kinds := make([]string, 0, len(serviceCatalogue))
	for k := range serviceCatalogue {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	for _, k := range kinds {
		fmt.Fprintf(&b, "  %-16s open %s%s\n", serviceCatalogue[k].Title, servicePrefix, k)
	}
	b.WriteString("\nOpen /about to learn more, or type 'login' to sign in.\n")
	_, err := io.WriteString(w, b.String())
	return err
}

type serviceView struct {
	info serviceInfo
}

func (v serviceView) Title() string { return v.info.Title }

func (v serviceView) Render(_ context.Context, w io.Writer) error {
	_, err := fmt.Fprintln(w, v.info.Description)
	return err
}
