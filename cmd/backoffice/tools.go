package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/sitecrew/erpui/erpui/dom"
	"github.com/sitecrew/erpui/erpui/form"
	"github.com/sitecrew/erpui/erpui/hours"
	"github.com/sitecrew/erpui/erpui/validation"
	"github.com/sitecrew/erpui/erpui/visibility"
)

const dateLayout = "2006-01-02"

// worklogLine is one entry of a work log file.
type worklogLine struct {
	Date  string `yaml:"date"`
	Entry string `yaml:"entry"`
	Exit  string `yaml:"exit"`
	Lunch string `yaml:"lunch"`
}

// readWorklog reads a YAML list of work log entries.
func readWorklog(r io.Reader) ([]hours.Entry, error) {
	var lines []worklogLine
	if err := yaml.NewDecoder(r).Decode(&lines); err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading work log: %w", err)
	}
	entries := make([]hours.Entry, 0, len(lines))
	for idx, l := range lines {
		d, err := time.Parse(dateLayout, strings.TrimSpace(l.Date))
		if err != nil {
			return nil, fmt.Errorf("entry %d: invalid date %q", idx+1, l.Date)
		}
		entries = append(entries, hours.Entry{
			Date:  d,
			Entry: l.Entry,
			Exit:  l.Exit,
			Lunch: hours.ParseLunch(l.Lunch),
		})
	}
	return entries, nil
}

// payrollReport sums the entries of the week containing week and formats
// the result as printed by the payroll command.
func payrollReport(entries []hours.Entry, rate float64, week time.Time) (string, error) {
	sum, err := hours.Payroll(entries, rate, week)
	if err != nil {
		return "", err
	}
	start, end := hours.WeekOf(week)
	return fmt.Sprintf("%s to %s: %s hours, %.2f due",
		start.Format(dateLayout), end.Format(dateLayout), hours.Format(sum.Hours), sum.AmountDue), nil
}

func runPayroll(path string, rate float64, week string) error {
	day := time.Now()
	if week != "" {
		var err error
		if day, err = time.Parse(dateLayout, week); err != nil {
			return fmt.Errorf("invalid week %q", week)
		}
	}
	day = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	fp, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	entries, err := readWorklog(fp)
	if err != nil {
		return err
	}
	report, err := payrollReport(entries, rate, day)
	if err != nil {
		return err
	}
	fmt.Println(report)
	return nil
}

// checkPage validates the first form of a saved page with the values it
// carries, the way the service validates a submission.
func checkPage(r io.Reader) (form.Form, validation.Result, error) {
	doc, err := dom.Parse(r)
	if err != nil {
		return form.Form{}, validation.Result{}, err
	}
	f, ok := doc.ReadForm("form", visibility.CheckDetails.Group)
	if !ok {
		return form.Form{}, validation.Result{}, fmt.Errorf("no form in page")
	}
	visibility.ApplyAll(&f, visibility.CheckDetails)
	return f, validation.Form(f), nil
}

func runCheck(path string) error {
	fp, err := os.Open(path)
	if err != nil {
		return err
	}
	defer fp.Close()
	f, res, err := checkPage(fp)
	if err != nil {
		return err
	}
	if res.Valid() {
		fmt.Printf("%s (%s): valid\n", f.ID, f.Kind)
		return nil
	}
	for _, failure := range res.Failures {
		fmt.Printf("%s: %s\n", failure.Field, failure.Message)
	}
	return fmt.Errorf("%s (%s): %d invalid field(s)", f.ID, f.Kind, len(res.Failures))
}
