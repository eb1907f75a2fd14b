package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sellerdesk/fulfillment/internal/server"
	"github.com/sellerdesk/fulfillment/pkg/shipping"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "0.0.1"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "fulfillment",
	Short:         "Sellerdesk Fulfillment Bridge - Amazon FBA outbound shipping service",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

var shipCmd = &cobra.Command{
	Use:   "ship",
	Short: "Ship an order through the FBA gateway",
	RunE:  runShip,
}

var shipOrderCmd = &cobra.Command{
	Use:   "ship-order",
	Short: "Ship a stored order to its buyer using fixture data",
	RunE:  runShipOrder,
}

var shipFlags struct {
	orderID    string
	items      []string
	name       string
	line1      string
	line2      string
	city       string
	state      string
	postalCode string
	country    string
	phone      string
}

var shipOrderFlags struct {
	orderID int
	buyerID int
	dataDir string
}

func init() {
	shipCmd.Flags().StringVar(&shipFlags.orderID, "order-id", "", "seller order id")
	shipCmd.Flags().StringSliceVar(&shipFlags.items, "item", nil, "item as SKU:QUANTITY (repeatable)")
	shipCmd.Flags().StringVar(&shipFlags.name, "name", "", "recipient name")
	shipCmd.Flags().StringVar(&shipFlags.line1, "line1", "", "address line 1")
	shipCmd.Flags().StringVar(&shipFlags.line2, "line2", "", "address line 2")
	shipCmd.Flags().StringVar(&shipFlags.city, "city", "", "city")
	shipCmd.Flags().StringVar(&shipFlags.state, "state", "", "state or region")
	shipCmd.Flags().StringVar(&shipFlags.postalCode, "postal-code", "", "postal code")
	shipCmd.Flags().StringVar(&shipFlags.country, "country", "", "country code")
	shipCmd.Flags().StringVar(&shipFlags.phone, "phone", "", "recipient phone")

	shipOrderCmd.Flags().IntVar(&shipOrderFlags.orderID, "order", 0, "order id")
	shipOrderCmd.Flags().IntVar(&shipOrderFlags.buyerID, "buyer", 0, "buyer id")
	shipOrderCmd.Flags().StringVar(&shipOrderFlags.dataDir, "data-dir", "", "fixture directory (defaults to DATA_DIR)")

	rootCmd.AddCommand(serveCmd, shipCmd, shipOrderCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := initLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	tracer, tracerShutdown, err := initTracer(ctx, cfg)
	if err != nil {
		logger.Warn("Failed to initialize tracer", zap.Error(err))
	} else {
		defer tracerShutdown(ctx)
	}

	service := initService(cfg, logger, tracer)

	logger.Info("Starting Sellerdesk Fulfillment Bridge",
		zap.Int("port", cfg.Port),
		zap.String("version", cfg.Version),
	)

	srv := server.New(server.Config{Port: cfg.Port}, service, logger)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func runShip(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := initLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	items, err := parseItems(shipFlags.items)
	if err != nil {
		return err
	}

	address := shipping.Address{
		Name:        shipFlags.name,
		Line1:       shipFlags.line1,
		Line2:       shipFlags.line2,
		City:        shipFlags.city,
		State:       shipFlags.state,
		PostalCode:  shipFlags.postalCode,
		CountryCode: shipFlags.country,
		Phone:       shipFlags.phone,
	}

	service := initService(cfg, logger, nil)

	trackingNumber, err := service.Ship(ctx, shipFlags.orderID, items, address)
	if err != nil {
		fmt.Printf("Shipping failed: %s\n", err.Error())
		return err
	}

	fmt.Printf("Tracking Number: %s\n", trackingNumber)
	return nil
}

func runShipOrder(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := initLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	store := initStore(cfg, shipOrderFlags.dataDir)

	buyer, err := store.LoadBuyer(shipOrderFlags.buyerID)
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return err
	}
	order := shipping.NewOrder(shipOrderFlags.orderID, store)

	service := initService(cfg, logger, nil)

	trackingNumber, err := service.ShipOrder(ctx, order, buyer)
	if err != nil {
		fmt.Printf("Error: %s\n", err.Error())
		return err
	}

	fmt.Printf("Tracking number: %s\n", trackingNumber)
	return nil
}
