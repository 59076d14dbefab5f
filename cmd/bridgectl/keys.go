package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-issue-bridge/internal/service"
	"github.com/MKhiriev/go-issue-bridge/internal/utils"
	"github.com/MKhiriev/go-issue-bridge/models"
	"github.com/spf13/cobra"
)

var errCredentialIndex = errors.New("credential index out of range")

func newKeysCmd(env *cliEnv, opts *rootOptions) *cobra.Command {
	keys := &cobra.Command{
		Use:   "keys",
		Short: "Manage the credentials accepted by the bridge",
	}

	// withRegistry opens the local registry for the duration of fn.
	withRegistry := func(cmd *cobra.Command, fn func(service.KeyRegistry) error) (err error) {
		registry, closeFn, err := env.openRegistry(cmd.Context(), opts.cfg, opts.logger)
		if err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, closeFn())
		}()
		return fn(registry)
	}

	var token string
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a credential; a token is generated unless --token is given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRegistry(cmd, func(registry service.KeyRegistry) error {
				var (
					cred models.Credential
					err  error
				)
				if token != "" {
					if !utils.IsWellFormedToken(token) {
						return service.ErrCredentialTokenInvalid
					}
					cred = models.Credential{Name: strings.TrimSpace(args[0]), Token: token, CreatedAt: time.Now().UTC()}
					err = registry.Add(cmd.Context(), cred)
				} else {
					cred, err = registry.Generate(cmd.Context(), args[0])
				}
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", cred.Name, cred.Token)
				return nil
			})
		},
	}
	add.Flags().StringVar(&token, "token", "", "use this token instead of generating one")

	list := &cobra.Command{
		Use:   "list",
		Short: "List credentials with masked tokens",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRegistry(cmd, func(registry service.KeyRegistry) error {
				return printCredentials(cmd, registry.List(cmd.Context()))
			})
		},
	}

	remove := &cobra.Command{
		Use:   "remove <index>",
		Short: "Remove the credential at index (see keys list)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", errCredentialIndex, args[0])
			}

			return withRegistry(cmd, func(registry service.KeyRegistry) error {
				creds := registry.List(cmd.Context())
				if index < 0 || index >= len(creds) {
					return fmt.Errorf("%w: %d", errCredentialIndex, index)
				}
				if err := registry.RemoveAt(cmd.Context(), index); err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "removed %s (%s)\n", creds[index].Name, creds[index].Masked())
				return nil
			})
		},
	}

	keys.AddCommand(add, list, remove)
	return keys
}

func printCredentials(cmd *cobra.Command, creds []models.Credential) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tNAME\tTOKEN\tCREATED\tLAST USED")
	for i, c := range creds {
		lastUsed := "never"
		if c.LastUsedAt != nil {
			lastUsed = c.LastUsedAt.Format(time.RFC3339)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i, c.Name, c.Masked(), c.CreatedAt.Format(time.RFC3339), lastUsed)
	}
	return w.Flush()
}
