package client

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/eat-around/models"
)

func (a *App) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the API is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.api.Health(cmd.Context()); err != nil {
				return err
			}
			return a.print(models.HealthResponse{OK: true})
		},
	}
}

func (a *App) registerCmd() *cobra.Command {
	var req models.RegisterRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and print the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.api.Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.print(out)
		},
	}

	cmd.Flags().StringVarP(&req.Username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "account password")
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.FavouriteBook, "book", "", "recovery answer: favourite book")
	cmd.Flags().StringVar(&req.BestSubject, "subject", "", "recovery answer: best subject")

	return cmd
}

func (a *App) loginCmd() *cobra.Command {
	var req models.LoginRequest

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.api.Login(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.print(out)
		},
	}

	cmd.Flags().StringVarP(&req.Username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&req.Password, "password", "p", "", "account password")

	return cmd
}

func (a *App) meCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the profile of the session token holder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := a.api.Me(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(profile)
		},
	}
}

func (a *App) foodsCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "foods",
		Short: "List the food catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			foods, err := a.api.Foods(cmd.Context(), category)
			if err != nil {
				return err
			}
			return a.print(foods)
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "only list this category")

	return cmd
}

func (a *App) recoveryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recovery",
		Short: "Password recovery through security questions",
	}

	var lookup models.QuestionsRequest
	questions := &cobra.Command{
		Use:   "questions",
		Short: "Show whether an account has recovery answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.api.RecoveryQuestions(cmd.Context(), lookup)
			if err != nil {
				return err
			}
			return a.print(out)
		},
	}
	questions.Flags().StringVarP(&lookup.Username, "username", "u", "", "account username")
	questions.Flags().StringVar(&lookup.Email, "email", "", "account email")

	var answers models.VerifyAnswersRequest
	verify := &cobra.Command{
		Use:   "verify",
		Short: "Exchange recovery answers for a reset token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := a.api.VerifyAnswers(cmd.Context(), answers)
			if err != nil {
				return err
			}
			return a.print(models.ResetTokenResponse{Success: true, ResetToken: token})
		},
	}
	verify.Flags().StringVarP(&answers.Username, "username", "u", "", "account username")
	verify.Flags().StringVar(&answers.Email, "email", "", "account email")
	verify.Flags().StringVar(&answers.FavouriteBook, "book", "", "favourite book")
	verify.Flags().StringVar(&answers.BestSubject, "subject", "", "best subject")

	var reset models.ResetPasswordRequest
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Set a new password with a reset token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.api.ResetPassword(cmd.Context(), reset); err != nil {
				return err
			}
			return a.print(models.SuccessResponse{Success: true})
		},
	}
	resetCmd.Flags().StringVar(&reset.Token, "token", "", "reset token from verify")
	resetCmd.Flags().StringVarP(&reset.NewPassword, "password", "p", "", "new password")

	var security models.SecurityAnswersRequest
	securityCmd := &cobra.Command{
		Use:   "security",
		Short: "Store recovery answers for the session token holder",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.api.SetSecurityAnswers(cmd.Context(), security); err != nil {
				return err
			}
			return a.print(models.SuccessResponse{Success: true})
		},
	}
	securityCmd.Flags().StringVar(&security.FavouriteBook, "book", "", "favourite book")
	securityCmd.Flags().StringVar(&security.BestSubject, "subject", "", "best subject")

	cmd.AddCommand(questions, verify, resetCmd, securityCmd)
	return cmd
}

func (a *App) ordersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "Place and inspect orders",
	}

	var (
		items []string
		req   models.CreateOrderRequest
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Place an order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.Items = req.Items[:0]
			for _, raw := range items {
				item, err := parseItem(raw)
				if err != nil {
					return err
				}
				req.Items = append(req.Items, item)
			}

			out, err := a.api.CreateOrder(cmd.Context(), req)
			if err != nil {
				return err
			}
			return a.print(out)
		},
	}
	create.Flags().StringArrayVarP(&items, "item", "i", nil, "order line as name[:quantity[:price]], repeatable")
	create.Flags().StringVar(&req.ShopLocation, "shop", "", "shop location")
	create.Flags().StringVar(&req.CustomerNotes, "notes", "", "customer notes")

	get := &cobra.Command{
		Use:   "get <code-or-id>",
		Short: "Show one order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := a.api.Order(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.print(order)
		},
	}

	mine := &cobra.Command{
		Use:   "mine",
		Short: "List your orders, or every order without a session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.api.MyOrders(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(out)
		},
	}

	summary := &cobra.Command{
		Use:   "summary",
		Short: "List every order in compact form with the grand total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.api.OrdersSummary(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(out)
		},
	}

	var confirm bool
	deleteAll := &cobra.Command{
		Use:   "delete-all",
		Short: "Delete every order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirm {
				return ErrNotConfirmed
			}
			deleted, err := a.api.DeleteOrders(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(models.DeletedResponse{Success: true, Deleted: deleted})
		},
	}
	deleteAll.Flags().BoolVar(&confirm, "yes", false, "confirm deleting every order")

	cmd.AddCommand(create, get, mine, summary, deleteAll)
	return cmd
}

// parseItem reads "name[:quantity[:price]]". Quantity defaults to 1 and
// price to 0; the server sanitizes both again.
func parseItem(raw string) (models.RawOrderItem, error) {
	parts := strings.SplitN(raw, ":", 3)

	name := strings.TrimSpace(parts[0])
	if name == "" {
		return models.RawOrderItem{}, fmt.Errorf("%w: %q", ErrInvalidItem, raw)
	}

	item := models.RawOrderItem{
		Name:     models.FlexString(name),
		Quantity: models.NewFlexNumber(1),
		Price:    models.NewFlexNumber(0),
	}

	if len(parts) > 1 {
		qty, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return models.RawOrderItem{}, fmt.Errorf("%w: quantity of %q", ErrInvalidItem, raw)
		}
		item.Quantity = models.NewFlexNumber(qty)
	}
	if len(parts) > 2 {
		price, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			return models.RawOrderItem{}, fmt.Errorf("%w: price of %q", ErrInvalidItem, raw)
		}
		item.Price = models.NewFlexNumber(price)
	}

	return item, nil
}
