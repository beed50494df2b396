package cmd

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"os-project/api"
	"os-project/config"
	"os-project/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scheduler over HTTP.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.GetSchedulerConfig()
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}

		runStore, err := store.NewSQLiteRunStore(cfg.StoragePath)
		if err != nil {
			log.Fatalln(err)
		}
		atexit.Register(func() { runStore.Close() })

		app := fiber.New()
		api.RegisterRoutes(app, api.NewSchedulerHandlerImpl(cfg, runStore))

		if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
			log.Println(err)
			atexit.Exit(1)
		}
		atexit.Exit(0)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 9095, "port to listen on, overrides the config file")
	rootCmd.AddCommand(serveCmd)
}
