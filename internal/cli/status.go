package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the status of a running GeoLens server",
	Run:   runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(fmt.Sprintf("http://localhost:%d/healthz", cfg.Server.Port))
	if err != nil {
		slog.Error("Failed to reach server", "port", cfg.Server.Port, "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	var health struct {
		Status    string `json:"status"`
		Countries int    `json:"countries"`
		Cached    int    `json:"cached"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		slog.Error("Failed to decode health response", "error", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.Debug)
	_, _ = fmt.Fprintln(w, "STATUS\tCOUNTRIES\tCACHED")
	_, _ = fmt.Fprintf(w, "%s\t%d\t%d\n", health.Status, health.Countries, health.Cached)
	_ = w.Flush()
}
