// Car commands manage the vehicle records of the fleet.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/carbnb/carbnb/pkg/types"
)

var carCmd = &cobra.Command{
	Use:   "car",
	Short: "Manage car records",
}

var carAddCmd = &cobra.Command{
	Use:   "add <serial> <brand> <model> <year> <engine> <day-cost> <km> <owner-id>",
	Short: "Add a car",
	Long: `Add validates every field, resolves the owner by ID, and stores a
new car record. The owner must already exist.

Example:
  carbnb car add 7654321 toyota corolla 2019 1800 200 54000 1234567`,
	Args: cobra.ExactArgs(8),
	RunE: runCarAdd,
}

var carShowCmd = &cobra.Command{
	Use:   "show <serial>",
	Short: "Show a car",
	Args:  cobra.ExactArgs(1),
	RunE:  runCarShow,
}

var carListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all cars",
	Args:  cobra.NoArgs,
	RunE:  runCarList,
}

var carListByOwnerCmd = &cobra.Command{
	Use:   "list-by-owner <owner-id>",
	Short: "List cars owned by a client",
	Args:  cobra.ExactArgs(1),
	RunE:  runCarListByOwner,
}

var carEditCmd = &cobra.Command{
	Use:   "edit <serial> --set field=value [--set field=value ...]",
	Short: "Edit fields of a car",
	Long: `Edit validates each new value and updates the stored record.
Changing the owner resolves the new owner ID and embeds a fresh copy.

Editable fields: brand, model, year, engine, day_cost, km, owner.

Example:
  carbnb car edit 7654321 --set km=60000 --set day_cost=220`,
	Args: cobra.ExactArgs(1),
	RunE: runCarEdit,
}

var carDeleteCmd = &cobra.Command{
	Use:   "delete <serial>",
	Short: "Delete a car",
	Long: `Delete removes a car record. A car referenced by any rental order
with a pickup time in the future cannot be deleted.`,
	Args: cobra.ExactArgs(1),
	RunE: runCarDelete,
}

var carSetFlags []string

func init() {
	carEditCmd.Flags().StringArrayVar(&carSetFlags, "set", nil, "field=value pair to change (repeatable)")

	carCmd.AddCommand(carAddCmd)
	carCmd.AddCommand(carShowCmd)
	carCmd.AddCommand(carListCmd)
	carCmd.AddCommand(carListByOwnerCmd)
	carCmd.AddCommand(carEditCmd)
	carCmd.AddCommand(carDeleteCmd)
}

func runCarAdd(cmd *cobra.Command, args []string) error {
	svc, detach, err := attachService()
	if err != nil {
		return err
	}
	defer detach()

	in := types.CarInput{
		Serial:  args[0],
		Brand:   args[1],
		Model:   args[2],
		Year:    args[3],
		Engine:  args[4],
		DayCost: args[5],
		KM:      args[6],
		Owner:   args[7],
	}

	car, err := svc.AddCar(in)
	if err != nil {
		return err
	}

	printCar(cmd, car)
	return nil
}

func runCarShow(cmd *cobra.Command, args []string) error {
	svc, detach, err := attachService()
	if err != nil {
		return err
	}
	defer detach()

	car, err := svc.GetCar(args[0])
	if err != nil {
		return err
	}

	printCar(cmd, car)
	return nil
}

func runCarList(cmd *cobra.Command, args []string) error {
	svc, detach, err := attachService()
	if err != nil {
		return err
	}
	defer detach()

	cars, err := svc.ListCars()
	if err != nil {
		return err
	}

	for _, c := range cars {
		printCar(cmd, c)
	}
	return nil
}

func runCarListByOwner(cmd *cobra.Command, args []string) error {
	svc, detach, err := attachService()
	if err != nil {
		return err
	}
	defer detach()

	cars, err := svc.ListCarsByOwner(args[0])
	if err != nil {
		return err
	}

	for _, c := range cars {
		printCar(cmd, c)
	}
	return nil
}

func runCarEdit(cmd *cobra.Command, args []string) error {
	changes, err := parseSetFlags(carSetFlags)
	if err != nil {
		return err
	}

	svc, detach, err := attachService()
	if err != nil {
		return err
	}
	defer detach()

	if err := svc.EditCar(args[0], changes); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "car %s updated\n", args[0])
	return nil
}

func runCarDelete(cmd *cobra.Command, args []string) error {
	svc, detach, err := attachService()
	if err != nil {
		return err
	}
	defer detach()

	if err := svc.DeleteCar(args[0]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "car %s deleted\n", args[0])
	return nil
}

func printCar(cmd *cobra.Command, c *types.Car) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s  %s %s  year=%d  engine=%d  day_cost=%d  km=%d  owner=%s (%s %s)\n",
		c.Serial, c.Brand, c.Model, c.Year, c.Engine, c.DayCost, c.KM,
		c.Owner.ID, c.Owner.FirstName, c.Owner.LastName)
}
