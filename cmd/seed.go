package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DachengChen/paiBI/dataset"
	"github.com/DachengChen/paiBI/db"
)

var (
	seedReset   bool
	seedSchema  bool
	seedStatus  bool
	seedConnOpt connFlags
)

// connFlags override the PostgreSQL settings from config.
type connFlags struct {
	host, user, password, database, sslmode string
	port                                    int

	sshHost, sshUser, sshKey, sshKnownHosts string
	sshPort                                 int
}

func (f *connFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.host, "host", "", "PostgreSQL host")
	fs.IntVar(&f.port, "port", 0, "PostgreSQL port")
	fs.StringVar(&f.user, "user", "", "PostgreSQL user")
	fs.StringVar(&f.password, "password", "", "PostgreSQL password")
	fs.StringVar(&f.database, "database", "", "PostgreSQL database")
	fs.StringVar(&f.sslmode, "sslmode", "", "PostgreSQL sslmode")
	fs.StringVar(&f.sshHost, "ssh-host", "", "tunnel through this SSH bastion")
	fs.IntVar(&f.sshPort, "ssh-port", 22, "SSH port")
	fs.StringVar(&f.sshUser, "ssh-user", "", "SSH user")
	fs.StringVar(&f.sshKey, "ssh-key", "", "SSH private key file")
	fs.StringVar(&f.sshKnownHosts, "ssh-known-hosts", "", "known_hosts file for host key checks")
}

// apply copies set flags onto the loaded config.
func (f *connFlags) apply(cmd *cobra.Command) {
	pg := &appCfg.Postgres
	fs := cmd.Flags()
	set := func(name string, dst *string, v string) {
		if fs.Changed(name) {
			*dst = v
		}
	}
	set("host", &pg.Host, f.host)
	set("user", &pg.User, f.user)
	set("password", &pg.Password, f.password)
	set("database", &pg.Database, f.database)
	set("sslmode", &pg.SSLMode, f.sslmode)
	if fs.Changed("port") {
		pg.Port = f.port
	}
	if fs.Changed("ssh-host") {
		pg.SSH.Enabled = true
		pg.SSH.Host = f.sshHost
		pg.SSH.Port = f.sshPort
	}
	set("ssh-user", &pg.SSH.User, f.sshUser)
	set("ssh-key", &pg.SSH.KeyPath, f.sshKey)
	set("ssh-known-hosts", &pg.SSH.KnownHostsPath, f.sshKnownHosts)
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the sample schema in PostgreSQL and load the dataset",
	Example: `  paibi seed --database paibi --reset
  paibi seed --schema-only
  paibi seed --status
  paibi seed --host db.internal --ssh-host bastion.example.com --ssh-user ops --ssh-key ~/.ssh/id_ed25519`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if seedSchema {
			_, err := fmt.Fprintln(out, dataset.DDL())
			return err
		}

		seedConnOpt.apply(cmd)
		d, err := db.Connect(cmd.Context(), appCfg.Postgres)
		if err != nil {
			return err
		}
		defer d.Close()

		if seedStatus {
			tables, err := d.ListTables(cmd.Context(), "public")
			if err != nil {
				return fmt.Errorf("list tables: %w", err)
			}
			for _, t := range tables {
				fmt.Fprintf(out, "%s.%-10s ~%s rows\n", t.Schema, t.Name, db.FormatRowCount(t.RowCount))
			}
			return nil
		}

		report, err := d.Seed(cmd.Context(), db.SeedOptions{Reset: seedReset})
		if err != nil {
			return err
		}
		for _, name := range report.Tables {
			n, err := d.CountRows(cmd.Context(), name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%-10s copied %-4d now %s rows\n", name, report.Rows[name], db.FormatRowCount(n))
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "truncate the tables before loading")
	seedCmd.Flags().BoolVar(&seedSchema, "schema-only", false, "print the schema script and exit")
	seedCmd.Flags().BoolVar(&seedStatus, "status", false, "list the tables already in the database and exit")
	seedConnOpt.register(seedCmd)
	rootCmd.AddCommand(seedCmd)
}
