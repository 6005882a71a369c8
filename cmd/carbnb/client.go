// Client commands manage the people records of the fleet.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carbnb/carbnb/pkg/types"
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage client records",
}

var clientAddCmd = &cobra.Command{
	Use:   "add <id> <first-name> <last-name> <age> <email> <phone>",
	Short: "Add a client",
	Long: `Add validates every field and stores a new client record.

Example:
  carbnb client add 1234567 john smith 25 john@mail.com 0888123456`,
	Args: cobra.ExactArgs(6),
	RunE: runClientAdd,
}

var clientShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a client",
	Args:  cobra.ExactArgs(1),
	RunE:  runClientShow,
}

var clientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all clients",
	Args:  cobra.NoArgs,
	RunE:  runClientList,
}

var clientEditCmd = &cobra.Command{
	Use:   "edit <id> --set field=value [--set field=value ...]",
	Short: "Edit fields of a client",
	Long: `Edit validates each new value and updates the stored record.

Editable fields: first_name, last_name, age, email, phone.

Example:
  carbnb client edit 1234567 --set email=new@mail.com --set phone=0888000111`,
	Args: cobra.ExactArgs(1),
	RunE: runClientEdit,
}

var clientDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a client",
	Long: `Delete removes a client record. A client referenced by any rental
order with a pickup time in the future cannot be deleted.`,
	Args: cobra.ExactArgs(1),
	RunE: runClientDelete,
}

var clientSetFlags []string

func init() {
	clientEditCmd.Flags().StringArrayVar(&clientSetFlags, "set", nil, "field=value pair to change (repeatable)")

	clientCmd.AddCommand(clientAddCmd)
	clientCmd.AddCommand(clientShowCmd)
	clientCmd.AddCommand(clientListCmd)
	clientCmd.AddCommand(clientEditCmd)
	clientCmd.AddCommand(clientDeleteCmd)
}

func runClientAdd(cmd *cobra.Command, args []string) error {
	svc, detach, err := attachService()
	if err != nil {
		return err
	}
	defer detach()

	in := types.PersonInput{
		ID:        args[0],
		FirstName: args[1],
		LastName:  args[2],
		Age:       args[3],
		Email:     args[4],
		Phone:     args[5],
	}

	person, err := svc.AddClient(in)
	if err != nil {
		return err
	}

	printPerson(cmd, person)
	return nil
}

func runClientShow(cmd *cobra.Command, args []string) error {
	svc, detach, err := attachService()
	if err != nil {
		return err
	}
	defer detach()

	person, err := svc.GetClient(args[0])
	if err != nil {
		return err
	}

	printPerson(cmd, person)
	return nil
}

func runClientList(cmd *cobra.Command, args []string) error {
	svc, detach, err := attachService()
	if err != nil {
		return err
	}
	defer detach()

	people, err := svc.ListClients()
	if err != nil {
		return err
	}

	for _, p := range people {
		printPerson(cmd, p)
	}
	return nil
}

func runClientEdit(cmd *cobra.Command, args []string) error {
	changes, err := parseSetFlags(clientSetFlags)
	if err != nil {
		return err
	}

	svc, detach, err := attachService()
	if err != nil {
		return err
	}
	defer detach()

	if err := svc.EditClient(args[0], changes); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "client %s updated\n", args[0])
	return nil
}

func runClientDelete(cmd *cobra.Command, args []string) error {
	svc, detach, err := attachService()
	if err != nil {
		return err
	}
	defer detach()

	if err := svc.DeleteClient(args[0]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "client %s deleted\n", args[0])
	return nil
}

func printPerson(cmd *cobra.Command, p *types.Person) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s  %s %s  age=%s  %s  %s\n",
		p.ID, p.FirstName, p.LastName, p.Age, p.Email, p.Phone)
}
