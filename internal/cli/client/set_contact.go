package client

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orderbook/internal/cli"
	"github.com/thenoetrevino/orderbook/internal/cli/styles"
	clientservice "github.com/thenoetrevino/orderbook/internal/services/client"
	"github.com/thenoetrevino/orderbook/internal/store"
)

// SetContactCmd returns the client set-contact subcommand
func SetContactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-contact",
		Short: "Change the contact person of a client",
		Long: `Change the contact person of the first organization whose name matches
(ignoring case and surrounding spaces). The book is saved immediately.

Examples:
  orderbook client set-contact --org "ACME" --contact "Jane Doe"
  orderbook client set-contact --org acme --contact "Jane Doe" --json
`,
		RunE: runSetContact,
	}

	// Required flags
	cmd.Flags().String("org", "", "Organization name (required)")
	cmd.Flags().String("contact", "", "New contact person (required)")
	for _, name := range []string{"org", "contact"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			log.Printf("Error marking flag as required: %v", err)
		}
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (code only)")

	return cmd
}

func runSetContact(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	orgName, _ := cmd.Flags().GetString("org")
	contact, _ := cmd.Flags().GetString("contact")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return cli.ReportError(formatter, "INITIALIZATION_ERROR", err)
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	org, err := cliInstance.App.ClientService.UpdateContact(ctx, clientservice.UpdateContactRequest{
		Organization: orgName,
		Contact:      contact,
	})

	var persistErr *store.PersistError
	switch {
	case errors.Is(err, clientservice.ErrEmptyOrganization), errors.Is(err, clientservice.ErrEmptyContact):
		return cli.ReportError(formatter, "INVALID_INPUT", err)
	case errors.Is(err, clientservice.ErrClientNotFound):
		return cli.ReportErrorWithSuggestion(formatter, "CLIENT_NOT_FOUND", err,
			"use 'orderbook client list' to see all clients")
	case errors.As(err, &persistErr):
		return cli.ReportErrorWithSuggestion(formatter, "SAVE_FAILED", err,
			fmt.Sprintf("check that %s is writable and not open in another program", persistErr.Location))
	case err != nil:
		return cli.ReportError(formatter, "CONTACT_UPDATE_ERROR", err)
	}

	if quietMode || jsonOutput {
		return formatter.Success(org)
	}

	fmt.Println(styles.SuccessStyle.Render("✓ Contact updated"))
	fmt.Println(styles.RenderField(org.Name, org.ContactPerson))
	return nil
}
