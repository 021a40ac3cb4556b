package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/ashujumbo12/FitnessApp/internal/db"
	"github.com/ashujumbo12/FitnessApp/internal/importer"
	"github.com/ashujumbo12/FitnessApp/internal/services"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"gorm.io/gorm"
)

// RunImportCommand imports a Progress Sheet CSV straight into the database
// file, printing the report the way the HTTP handler would return it.
func RunImportCommand(dbPath string, csvPath string, email string, dryRun bool, policyName string) error {
	policy, err := importer.ParseConflictPolicy(policyName)
	if err != nil {
		return fmt.Errorf("invalid conflict policy: %w", err)
	}

	data, err := os.ReadFile(csvPath)
	if err != nil {
		return fmt.Errorf("read csv file: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	repositories := db.NewRepositories(database)
	user, err := repositories.Users.FindByNormalizedEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("user %s not found", email)
		}
		return fmt.Errorf("load user: %w", err)
	}

	importService := services.NewImportService(repositories.Dailies, repositories.Weeklies)
	report, err := importService.ImportFile(context.Background(), user.ID, data, importer.Options{
		DryRun:         dryRun,
		ConflictPolicy: policy,
	})
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	printReport(report)
	return nil
}

func printReport(report *importer.Report) {
	header := color.New(color.FgCyan, color.Bold)
	header.Printf("Import %s", report.BatchID)
	if report.DryRun {
		color.Yellow(" (dry run)")
	}
	fmt.Println()

	fmt.Printf("Rows: %d\n", report.TotalRows)
	color.Green("Accepted:    %d", report.Accepted)
	color.Cyan("Overwritten: %d", report.Overwritten)
	color.Yellow("Skipped:     %d", report.Skipped)
	color.Red("Rejected:    %d", report.Rejected)

	if len(report.Entries) > 0 {
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Line", "Kind", "Key", "Outcome", "Reason"})
		for _, entry := range report.Entries {
			table.Append([]string{
				strconv.Itoa(entry.Line),
				entry.Kind,
				entry.Key,
				string(entry.Outcome),
				entry.Reason,
			})
		}
		table.Render()
	}

	for _, conflict := range report.Conflicts {
		color.Yellow("conflict: %s", conflict)
	}
	for _, warning := range report.Warnings {
		color.Yellow("warning: %s", warning)
	}
}
