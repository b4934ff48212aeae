package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"academia-backend/lib/browser"
	scraper "academia-backend/lib/scrapers/academia"
	"academia-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	scrapeBaseUrl    *string
	scrapeBrowserBin *string
	scrapeHeadful    *bool
	scrapeTable      *bool
	scrapeTimeout    *time.Duration
)

func init() {
	scrapeBaseUrl = scrapeCmd.Flags().String("base-url", scraper.DefaultBaseUrl, "The portal to log into.")
	scrapeBrowserBin = scrapeCmd.Flags().String("browser-bin", "", "Path to a chromium binary, resolved automatically when empty.")
	scrapeHeadful = scrapeCmd.Flags().Bool("headful", false, "Run the browser with a visible window.")
	scrapeTable = scrapeCmd.Flags().Bool("table", false, "Also render the attendance as a table on stderr.")
	scrapeTimeout = scrapeCmd.Flags().Duration("timeout", 3*time.Minute, "Give up on the whole run after this long.")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Logs into the portal and prints the student record as JSON.",
	Long: `Logs into the portal and prints the student record as JSON.

Credentials come from the ACADEMIA_USER and ACADEMIA_PASSWORD environment
variables, a .env file in the working directory is honored.`,
	Run: func(cmd *cobra.Command, args []string) {
		// missing .env is fine, the variables may come from the shell
		godotenv.Load()

		identifier := os.Getenv("ACADEMIA_USER")
		secret := os.Getenv("ACADEMIA_PASSWORD")
		if identifier == "" || secret == "" {
			serviceutil.Fatal(
				"missing credentials",
				errors.New("set ACADEMIA_USER and ACADEMIA_PASSWORD"),
			)
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), *scrapeTimeout)
		defer cancel()

		record, err := scraper.Run(ctx, scraper.RunOptions{
			BaseUrl: *scrapeBaseUrl,
			Browser: browser.Options{
				Bin:      *scrapeBrowserBin,
				Headless: !*scrapeHeadful,
			},
		}, scraper.Credentials{
			Identifier: identifier,
			Secret:     secret,
		})
		if err != nil {
			serviceutil.Fatal("scrape failed", err)
		}

		if *scrapeTable {
			renderAttendance(record)
		}

		out, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			serviceutil.Fatal("failed to marshal record", err)
		}
		fmt.Println(string(out))
	},
}

func renderAttendance(record *scraper.StudentRecord) {
	codes := make([]string, 0, len(record.Attendance.Courses))
	for code := range record.Attendance.Courses {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stderr)
	t.AppendHeader(table.Row{"Course", "Title", "Conducted", "Absent", "%"})
	for _, code := range codes {
		c := record.Attendance.Courses[code]
		t.AppendRow(table.Row{
			code, c.CourseTitle, c.HoursConducted, c.HoursAbsent, c.AttendancePercentage,
		})
	}
	t.AppendFooter(table.Row{
		"overall", "",
		record.Attendance.TotalHoursConducted,
		record.Attendance.TotalHoursAbsent,
		record.Attendance.OverallAttendance,
	})
	t.Render()
}
