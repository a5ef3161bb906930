package output

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/chefstream/cli/internal/api"
)

// JSON prints v as indented JSON to stdout.
func JSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// SessionTable prints active sessions as a human-readable table.
func SessionTable(sessions []api.Session) {
	if len(sessions) == 0 {
		fmt.Println("No active sessions.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDEVICE\tBROWSER\tIP\tLOCATION\tLAST ACTIVE\t")

	for _, s := range sessions {
		id := s.ID
		if s.IsCurrent {
			id += " (current)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t\n",
			id,
			orDash(s.DeviceType),
			browser(s),
			orDash(s.IPAddress),
			location(s),
			RelativeTime(s.LastActiveAt))
	}
	w.Flush()
}

// RecipeTable prints recipes as a table.
func RecipeTable(recipes []api.Recipe) {
	if len(recipes) == 0 {
		fmt.Println("No recipes found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSERVINGS\tPREP\tCOOK\tPUBLIC")

	for _, r := range recipes {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%v\n",
			r.ID,
			r.Title,
			orDashInt(r.Servings),
			minutes(r.PrepTimeMinutes),
			minutes(r.CookTimeMinutes),
			r.IsPublic)
	}
	w.Flush()
}

// RecipeDetail prints a full recipe: header, ingredients, steps.
func RecipeDetail(r api.Recipe) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Title:\t%s\n", r.Title)
	if r.ID != 0 {
		fmt.Fprintf(w, "ID:\t%d\n", r.ID)
	}
	if r.Description != nil {
		fmt.Fprintf(w, "Description:\t%s\n", *r.Description)
	}
	fmt.Fprintf(w, "Video:\t%s\n", r.VideoURL)
	if r.Servings != nil {
		fmt.Fprintf(w, "Servings:\t%d\n", *r.Servings)
	}
	if r.PrepTimeMinutes != nil {
		fmt.Fprintf(w, "Prep:\t%dm\n", *r.PrepTimeMinutes)
	}
	if r.CookTimeMinutes != nil {
		fmt.Fprintf(w, "Cook:\t%dm\n", *r.CookTimeMinutes)
	}
	if len(r.DietaryTags) > 0 {
		fmt.Fprintf(w, "Tags:\t%v\n", r.DietaryTags)
	}
	w.Flush()

	if len(r.Ingredients) > 0 {
		fmt.Println("\nIngredients:")
		for _, ing := range r.Ingredients {
			line := "  - "
			if ing.Quantity != nil {
				line += *ing.Quantity + " "
			}
			if ing.Unit != nil {
				line += *ing.Unit + " "
			}
			line += ing.Item
			if ing.Notes != nil {
				line += " (" + *ing.Notes + ")"
			}
			fmt.Println(line)
		}
	}

	if len(r.Steps) > 0 {
		fmt.Println("\nSteps:")
		for _, s := range r.Steps {
			fmt.Printf("  %d. %s\n", s.StepNumber, s.Instruction)
		}
	}
}

// UserInfo prints the current user's details.
func UserInfo(u api.User) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Email:\t%s\n", u.Email)
	if u.FullName != nil {
		fmt.Fprintf(w, "Name:\t%s\n", *u.FullName)
	}
	fmt.Fprintf(w, "ID:\t%d\n", u.ID)
	if u.AuthProvider != "" {
		fmt.Fprintf(w, "Provider:\t%s\n", u.AuthProvider)
	}
	fmt.Fprintf(w, "2FA:\t%s\n", onOff(u.TwoFactorEnabled))
	fmt.Fprintf(w, "Security emails:\t%s\n", onOff(u.SecurityNotificationsEnabled))
	if u.LastLoginAt != nil {
		fmt.Fprintf(w, "Last login:\t%s\n", RelativeTime(*u.LastLoginAt))
	}
	w.Flush()
}

// BackupCodes prints one-time recovery codes with a warning. They are
// displayed exactly once and never written anywhere by the CLI.
func BackupCodes(codes []string) {
	fmt.Println("Backup codes (store these somewhere safe — they will not be shown again):")
	for _, c := range codes {
		fmt.Printf("  %s\n", c)
	}
}

// RelativeTime formats a timestamp relative to now (e.g. "2h ago").
func RelativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 30*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return t.Format("2006-01-02")
	}
}

func browser(s api.Session) string {
	if s.BrowserName == nil {
		return "-"
	}
	b := *s.BrowserName
	if s.BrowserVersion != nil {
		b += " " + *s.BrowserVersion
	}
	return b
}

func location(s api.Session) string {
	switch {
	case s.LocationCity != nil && s.LocationCountry != nil:
		return *s.LocationCity + ", " + *s.LocationCountry
	case s.LocationCountry != nil:
		return *s.LocationCountry
	case s.LocationCity != nil:
		return *s.LocationCity
	default:
		return "-"
	}
}

func orDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func orDashInt(n *int) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *n)
}

func minutes(n *int) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprintf("%dm", *n)
}

func onOff(b bool) string {
	if b {
		return "enabled"
	}
	return "disabled"
}
