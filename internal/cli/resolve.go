package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/geolens-io/geolens/internal/core/domain"
	"github.com/geolens-io/geolens/internal/registry"
	"github.com/geolens-io/geolens/internal/resolve"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [name or ISO3 code]",
	Short: "Resolve a country name or code against the live registry",
	Args:  cobra.MinimumNArgs(1),
	Run:   runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	query := strings.Join(args, " ")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	reg := registry.Load(ctx, &http.Client{Timeout: 15 * time.Second}, cfg.Registry.Endpoints)
	if reg.Len() == 0 {
		slog.Error("Registry failed to load from all endpoints")
		os.Exit(1)
	}

	feature := domain.BoundaryFeature{Properties: map[string]any{
		"ISO_A3": query,
		"ADMIN":  query,
	}}
	rec, ok := resolve.Resolve(feature, reg)
	if !ok {
		fmt.Printf("No country matched %q\n", query)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.Debug)
	_, _ = fmt.Fprintln(w, "CODE\tNAME\tOFFICIAL\tREGION\tPOPULATION")
	_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
		rec.ISO3, rec.CommonName, rec.OfficialName, rec.Region, rec.Population)
	_ = w.Flush()
}
