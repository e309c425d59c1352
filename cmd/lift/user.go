// ABOUTME: CLI commands for the user profile.
// ABOUTME: Create, show, update, and delete the single profile, with body metrics.
package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/storage"
)

var (
	userWeight float64
	userHeight float64
	userAge    int
	userSex    string
	userImage  string
	userName   string
	userYes    bool
)

var userCmd = &cobra.Command{
	Use:     "user",
	Aliases: []string{"u", "profile"},
	Short:   "Manage the user profile",
}

var userShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the profile with BMI, ideal weight, and BMR",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := store.GetUser(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}
		out := cmd.OutOrStdout()
		if u == nil {
			fmt.Fprintln(out, "No profile yet. Create one with 'lift user create <name>'.")
			return nil
		}
		printUser(out, u)
		return nil
	},
}

var userCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create the profile",
	Long: `Create the user profile. Only one profile can exist per store.

EXAMPLES:

  lift user create Ana
  lift user create Ana --weight 70 --height 175 --age 30 --sex female`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		u := models.NewUser(args[0])
		if err := applyUserFlags(cmd, u); err != nil {
			return err
		}

		if _, err := store.CreateUser(cmd.Context(), u); err != nil {
			if errors.Is(err, storage.ErrUserExists) {
				return fmt.Errorf("a profile already exists; use 'lift user update'")
			}
			return fmt.Errorf("failed to create user: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Created profile for %s", u.Name))
		return nil
	},
}

var userUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update profile fields",
	Long: `Update the profile. Only the flags you pass are changed.

EXAMPLES:

  lift user update --weight 71.5
  lift user update --name "Ana María" --age 31`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := store.GetUser(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get user: %w", err)
		}
		if u == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No profile to update.")
			return nil
		}

		if cmd.Flags().Changed("name") {
			u.Name = userName
		}
		if err := applyUserFlags(cmd, u); err != nil {
			return err
		}

		if err := store.UpdateUser(cmd.Context(), u); err != nil {
			return fmt.Errorf("failed to update user: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Updated profile"))
		return nil
	},
}

var userDeleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete the profile and all training data",
	Long: `Delete the profile. This wipes the whole store: workouts, custom
exercises, and the profile. The catalog is re-seeded on next use.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !userYes {
			return fmt.Errorf("refusing to delete without --yes")
		}
		if err := store.DeleteUser(cmd.Context()); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("✗ Deleted profile and all data"))
		return nil
	},
}

// applyUserFlags copies the optional profile flags that were set onto u.
func applyUserFlags(cmd *cobra.Command, u *models.User) error {
	flags := cmd.Flags()
	if flags.Changed("weight") {
		u.WithWeight(userWeight)
	}
	if flags.Changed("height") {
		u.WithHeight(userHeight)
	}
	if flags.Changed("age") {
		u.WithAge(userAge)
	}
	if flags.Changed("sex") {
		if !models.IsValidSex(userSex) {
			return fmt.Errorf("invalid sex: %s (use male or female)", userSex)
		}
		u.WithSex(models.Sex(userSex))
	}
	if flags.Changed("image") {
		u.WithImageURI(userImage)
	}
	return nil
}

func printUser(w io.Writer, u *models.User) {
	faint := color.New(color.Faint)

	fmt.Fprintf(w, "%s\n", color.New(color.Bold).Sprint(u.Name))
	if u.Weight != nil {
		fmt.Fprintf(w, "  %s %.1f kg\n", faint.Sprint("weight"), *u.Weight)
	}
	if u.Height != nil {
		fmt.Fprintf(w, "  %s %.0f cm\n", faint.Sprint("height"), *u.Height)
	}
	if u.Age != nil {
		fmt.Fprintf(w, "  %s %d\n", faint.Sprint("age   "), *u.Age)
	}
	if u.Sex != nil {
		fmt.Fprintf(w, "  %s %s\n", faint.Sprint("sex   "), *u.Sex)
	}

	if bmi, ok := u.BMI(); ok {
		category, _ := u.BMICategory()
		fmt.Fprintf(w, "  %s %.1f (%s)\n", faint.Sprint("BMI   "), bmi, category)
	}
	if ideal, ok := u.IdealWeight(); ok {
		fmt.Fprintf(w, "  %s %.1f kg\n", faint.Sprint("ideal "), ideal)
	}
	if bmr, ok := u.BasalMetabolicRate(); ok {
		fmt.Fprintf(w, "  %s %.0f kcal/day\n", faint.Sprint("BMR   "), bmr)
	}
}

func init() {
	for _, c := range []*cobra.Command{userCreateCmd, userUpdateCmd} {
		c.Flags().Float64Var(&userWeight, "weight", 0, "body weight in kg")
		c.Flags().Float64Var(&userHeight, "height", 0, "height in cm")
		c.Flags().IntVar(&userAge, "age", 0, "age in years")
		c.Flags().StringVar(&userSex, "sex", "", "male or female")
		c.Flags().StringVar(&userImage, "image", "", "profile image URI")
	}
	userUpdateCmd.Flags().StringVar(&userName, "name", "", "display name")
	userDeleteCmd.Flags().BoolVar(&userYes, "yes", false, "confirm deletion")

	userCmd.AddCommand(userShowCmd, userCreateCmd, userUpdateCmd, userDeleteCmd)
	rootCmd.AddCommand(userCmd)
}
