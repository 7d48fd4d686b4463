package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/Abraxas-365/talentdesk/pkg/config"
	"github.com/Abraxas-365/talentdesk/pkg/export"
	"github.com/Abraxas-365/talentdesk/pkg/filter"
	"github.com/Abraxas-365/talentdesk/pkg/iam/auth"
	"github.com/Abraxas-365/talentdesk/pkg/iam/scopes"
	"github.com/Abraxas-365/talentdesk/pkg/logx"
	"github.com/Abraxas-365/talentdesk/pkg/masterdata"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/candidate"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/interview"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/job"
	"github.com/Abraxas-365/talentdesk/pkg/recruiting/resume"
	"github.com/Abraxas-365/talentdesk/pkg/store"
	"github.com/Abraxas-365/talentdesk/pkg/store/storeinfra"
	"github.com/Abraxas-365/talentdesk/pkg/store/storesrv"
	"github.com/fatih/color"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

// quietContainer builds the container for one-shot commands without the startup chatter
func quietContainer(ctx context.Context) (*Container, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.Server.LogLevel != "debug" {
		logx.SetLevel(logx.LevelWarn)
	}
	return NewContainer(ctx, cfg)
}

// parseCriteria turns "field=a,b" arguments into the criteria of entity,
// exactly as the list endpoints read their query string
func parseCriteria(adapter *filter.Adapter, args []string) (filter.Criteria, error) {
	values := url.Values{}
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return filter.Criteria{}, fmt.Errorf("invalid filter %q, expected field=value", arg)
		}
		values.Add(key, value)
	}
	return adapter.FromQuery(values)
}

func listRecords[T store.Record[T]](ctx context.Context, s *storesrv.Service[T], c filter.Criteria) ([]filter.Record, error) {
	items, err := s.List(ctx, c)
	if err != nil {
		return nil, err
	}
	return filter.Records(items), nil
}

// Records lists the records of entity that match c
func (c *Container) Records(ctx context.Context, entity string, criteria filter.Criteria) ([]filter.Record, error) {
	m := c.MasterData
	switch entity {
	case resume.Entity:
		return listRecords(ctx, c.Resumes.Records(), criteria)
	case job.Entity:
		return listRecords(ctx, c.Jobs.Records(), criteria)
	case candidate.Entity:
		return listRecords(ctx, c.Candidates.Records(), criteria)
	case interview.Entity:
		return listRecords(ctx, c.Interviews.Records(), criteria)
	case masterdata.EntityOrganization:
		return listRecords(ctx, m.Organizations, criteria)
	case masterdata.EntityLocation:
		return listRecords(ctx, m.Locations, criteria)
	case masterdata.EntityBusinessUnit:
		return listRecords(ctx, m.BusinessUnits, criteria)
	case masterdata.EntityDivision:
		return listRecords(ctx, m.Divisions, criteria)
	case masterdata.EntityDepartment:
		return listRecords(ctx, m.Departments, criteria)
	case masterdata.EntityRole:
		return listRecords(ctx, m.Roles, criteria)
	case masterdata.EntityEmployee:
		return listRecords(ctx, m.Employees, criteria)
	}
	return nil, fmt.Errorf("unknown entity %q", entity)
}

// query resolves entity and filter arguments against the container
func query(ctx context.Context, c *Container, entity string, args []string) (*filter.Adapter, []filter.Record, error) {
	adapter, ok := c.Adapter(entity)
	if !ok {
		return nil, nil, fmt.Errorf("unknown entity %q", entity)
	}
	criteria, err := parseCriteria(adapter, args)
	if err != nil {
		return nil, nil, err
	}
	records, err := c.Records(ctx, entity, criteria)
	if err != nil {
		return nil, nil, err
	}
	return adapter, records, nil
}

func newFilterCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "filter <entity> [field=value ...]",
		Short: "List the records of a screen that match the given filters",
		Example: `  talentdesk filter resumes q=java status=NEW,SCREENING
  talentdesk filter jobs jobSource=Arcolab applicants=100-300`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := quietContainer(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Cleanup()

			adapter, records, err := query(cmd.Context(), c, args[0], args[1:])
			if err != nil {
				return err
			}
			printTable(cmd.OutOrStdout(), adapter.ExportColumns(), records, limit)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum rows to print (0 prints all)")
	return cmd
}

func printTable(out io.Writer, cols []filter.Column, records []filter.Record, limit int) {
	header := color.New(color.Bold)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	titles := make([]string, len(cols))
	for i, col := range cols {
		titles[i] = header.Sprint(col.Header)
	}
	fmt.Fprintln(w, strings.Join(titles, "\t"))

	shown := records
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	for _, rec := range shown {
		row := make([]string, len(cols))
		for i, col := range cols {
			row[i] = cellText(rec[col.Field])
		}
		fmt.Fprintln(w, strings.Join(row, "\t"))
	}
	_ = w.Flush()

	summary := fmt.Sprintf("%d record(s)", len(records))
	if len(shown) < len(records) {
		summary += fmt.Sprintf(", showing %d", len(shown))
	}
	fmt.Fprintln(out, color.New(color.FgGreen).Sprint(summary))
}

func cellText(v any) string {
	switch x := v.(type) {
	case nil:
		return "-"
	case string:
		if x == "" {
			return "-"
		}
		return x
	case []string:
		return strings.Join(x, ", ")
	case bool:
		if x {
			return "yes"
		}
		return "no"
	}
	return fmt.Sprint(v)
}

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export <entity> [field=value ...]",
		Short: "Write the matching records of a screen to an .xlsx file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := quietContainer(cmd.Context())
			if err != nil {
				return err
			}
			defer c.Cleanup()

			adapter, records, err := query(cmd.Context(), c, args[0], args[1:])
			if err != nil {
				return err
			}
			data, err := export.Workbook(adapter.Entity(), adapter.ExportColumns(), records)
			if err != nil {
				return err
			}
			if out == "" {
				out = export.FileName(adapter.Entity(), time.Now())
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d record(s) to %s\n",
				color.New(color.FgGreen).Sprint("✓ exported"), len(records), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default <entity>-<date>.xlsx)")
	return cmd
}

func newTokenCmd() *cobra.Command {
	var id auth.Identity

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token carrying the scopes of a role template",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cfg.Auth.JWT.SecretKey == "" {
				return fmt.Errorf("JWT_SECRET_KEY is required to issue tokens")
			}
			token, err := issueToken(cfg, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&id.Subject, "subject", "dev", "Token subject")
	cmd.Flags().StringVar(&id.Name, "name", "Current User", "Display name recorded in audit fields")
	cmd.Flags().StringVar(&id.Email, "email", "", "Email claim")
	cmd.Flags().StringVar(&id.Role, "role", "Recruiter", "Role template: "+strings.Join(scopes.GroupNames(), ", "))
	return cmd
}

func issueToken(cfg *config.Config, id auth.Identity) (string, error) {
	id.Scopes = scopes.TemplateFor(id.Role)
	return auth.NewJWTServiceFromConfig(&cfg.Auth.JWT).GenerateAccessToken(id)
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := sqlx.ConnectContext(cmd.Context(), "postgres", cfg.Database.DSN())
			if err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer db.Close()
			return storeinfra.Migrate(db)
		},
	}
}
