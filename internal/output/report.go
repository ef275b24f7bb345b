package output

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/finplan/financial-simulator/internal/domain"
)

// GenerateReport resolves the formatter by name and writes a timestamped
// report file. The console format additionally prints to stdout.
func GenerateReport(report *domain.PlanReport, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format,
			strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}

	ext := f.Name()
	if ext == "console" {
		data, err := f.Format(report)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	filename, err := WriteFormatted(f, report, ext)
	if err != nil {
		return err
	}
	fmt.Printf("Report written to %s\n", filename)
	return nil
}

// SavePlan writes a plan back out as YAML, used by the example generator.
func SavePlan(plan *domain.Plan, filename string) error {
	b, err := yaml.Marshal(plan)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
