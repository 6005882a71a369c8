// Order commands manage rental orders and the availability check.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/carbnb/carbnb/pkg/fleet"
	"github.com/carbnb/carbnb/pkg/types"
)

var orderCmd = &cobra.Command{
	Use:   "order",
	Short: "Manage rental orders",
}

var orderCreateCmd = &cobra.Command{
	Use:     "create <pickup-time> <return-time> <client-id> <car-serial>",
	Aliases: []string{"add"},
	Short:   "Create a rental order",
	Long: `Create validates the times, resolves the client and car, checks that
the car is free over the requested interval, and stores the order under
the next sequential ID.

Times use the format "2006-01-02 15:04:05".

Example:
  carbnb order create "2024-06-01 10:00:00" "2024-06-05 10:00:00" 1234567 7654321`,
	Args: cobra.ExactArgs(4),
	RunE: runOrderCreate,
}

var orderShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a rental order",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrderShow,
}

var orderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all rental orders",
	Args:  cobra.NoArgs,
	RunE:  runOrderList,
}

var orderEditCmd = &cobra.Command{
	Use:   "edit <id> --set field=value [--set field=value ...]",
	Short: "Edit fields of a rental order",
	Long: `Edit validates each new value and updates the stored record.
Changing the client or car resolves the new reference.

Editable fields: pickup_time, return_time, client, car.`,
	Args: cobra.ExactArgs(1),
	RunE: runOrderEdit,
}

var orderDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a rental order",
	Args:  cobra.ExactArgs(1),
	RunE:  runOrderDelete,
}

var orderSetFlags []string

func init() {
	orderEditCmd.Flags().StringArrayVar(&orderSetFlags, "set", nil, "field=value pair to change (repeatable)")

	orderCmd.AddCommand(orderCreateCmd)
	orderCmd.AddCommand(orderShowCmd)
	orderCmd.AddCommand(orderListCmd)
	orderCmd.AddCommand(orderEditCmd)
	orderCmd.AddCommand(orderDeleteCmd)
}

// parseOrderID converts a CLI argument into an order ID.
func parseOrderID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: order id %q is not a number", types.ErrValidation, arg)
	}
	return id, nil
}

func runOrderCreate(cmd *cobra.Command, args []string) error {
	svc, detach, err := attachService()
	if err != nil {
		return err
	}
	defer detach()

	in := fleet.OrderInput{
		PickupTime: args[0],
		ReturnTime: args[1],
		Client:     args[2],
		Car:        args[3],
	}

	order, err := svc.CreateOrder(in)
	if err != nil {
		return err
	}

	printOrder(cmd, order)
	return nil
}

func runOrderShow(cmd *cobra.Command, args []string) error {
	id, err := parseOrderID(args[0])
	if err != nil {
		return err
	}

	svc, detach, err := attachService()
	if err != nil {
		return err
	}
	defer detach()

	order, err := svc.GetOrder(id)
	if err != nil {
		return err
	}

	printOrder(cmd, order)
	return nil
}

func runOrderList(cmd *cobra.Command, args []string) error {
	svc, detach, err := attachService()
	if err != nil {
		return err
	}
	defer detach()

	orders, err := svc.ListOrders()
	if err != nil {
		return err
	}

	for _, o := range orders {
		printOrder(cmd, o)
	}
	return nil
}

func runOrderEdit(cmd *cobra.Command, args []string) error {
	id, err := parseOrderID(args[0])
	if err != nil {
		return err
	}

	changes, err := parseSetFlags(orderSetFlags)
	if err != nil {
		return err
	}

	svc, detach, err := attachService()
	if err != nil {
		return err
	}
	defer detach()

	if err := svc.EditOrder(id, changes); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "order %d updated\n", id)
	return nil
}

func runOrderDelete(cmd *cobra.Command, args []string) error {
	id, err := parseOrderID(args[0])
	if err != nil {
		return err
	}

	svc, detach, err := attachService()
	if err != nil {
		return err
	}
	defer detach()

	if err := svc.DeleteOrder(id); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "order %d deleted\n", id)
	return nil
}

func printOrder(cmd *cobra.Command, o *types.RentalOrder) {
	fmt.Fprintf(cmd.OutOrStdout(), "%d  %s -> %s  client=%s (%s %s)  car=%s (%s %s)  cost=%d\n",
		o.ID,
		o.PickupTime.Format(types.TimeLayout),
		o.ReturnTime.Format(types.TimeLayout),
		o.Client.ID, o.Client.FirstName, o.Client.LastName,
		o.Car.Serial, o.Car.Brand, o.Car.Model,
		o.RentCost())
}
