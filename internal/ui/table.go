package ui

import (
	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/salarystats/internal/models"
	"github.com/fr4nk3nst1ner/salarystats/internal/utils"
)

const maxLanguageWidth = 24

// Header is the first row of every report table
var Header = []string{"Language", "Vacancies found", "Vacancies processed", "Average salary"}

// ColorizeSalary colors a monthly salary by band
func ColorizeSalary(salary int) string {
	formatted := utils.FormatSalary(salary)

	switch {
	case salary >= 300000:
		return pterm.Green(formatted)
	case salary >= 200000:
		return pterm.LightGreen(formatted)
	case salary >= 100000:
		return pterm.Yellow(formatted)
	case salary > 0:
		return pterm.Red(formatted)
	default:
		return pterm.Gray(formatted)
	}
}

// Rows converts stats into table rows, header first
func Rows(stats []models.LanguageStat) pterm.TableData {
	data := pterm.TableData{Header}
	for _, stat := range stats {
		data = append(data, []string{
			utils.TruncateString(stat.Language, maxLanguageWidth),
			utils.FormatCount(stat.Found),
			utils.FormatCount(stat.Processed),
			ColorizeSalary(stat.AverageSalary),
		})
	}
	return data
}

// RenderStats renders one provider's report as a titled box around a table
func RenderStats(title string, stats []models.LanguageStat) (string, error) {
	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithRightAlignment().
		WithData(Rows(stats)).
		Srender()
	if err != nil {
		return "", err
	}

	return pterm.DefaultBox.WithTitle(title).Sprint(table), nil
}
