package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fragmede/bidcraft/internal/export"
)

func newExportCmd(o *options) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Fetch the backend logs and write them as a PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := o.client.GetLogs(cmd.Context())
			if err != nil {
				return err
			}
			if resp.Failed() {
				return fmt.Errorf("backend: %s", resp.Message)
			}
			path := out
			if path == "" {
				path = filepath.Join(o.cfg.ExportDir, export.FileName)
			}
			if err := export.WriteFile(path, resp.Logs); err != nil {
				if errors.Is(err, export.ErrNoLogs) {
					return fmt.Errorf("no logs available to export")
				}
				return err
			}
			log.Info("exported logs", "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d log entries to %s\n", len(export.Rows(resp.Logs)), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default <export dir>/"+export.FileName+")")
	return cmd
}

func newProcessCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "process",
		Short: "Trigger a comment-processing run",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := o.client.ProcessComments(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Message)
			return nil
		},
	}
}

func newCredentialsCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "credentials",
		Short: "Show the credentials the backend has on file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := o.client.GetCredentials(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Post ID:      %s\n", creds.PostID)
			fmt.Fprintf(w, "Access token: %s\n", maskToken(creds.AccessToken))
			return nil
		},
	}
}

// maskToken keeps the first four characters of a token.
func maskToken(token string) string {
	r := []rune(token)
	switch {
	case len(r) == 0:
		return "(none)"
	case len(r) <= 4:
		return "****"
	default:
		return string(r[:4]) + "****"
	}
}
