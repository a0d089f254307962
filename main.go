package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/filmstash/filmstash/config"
	"github.com/filmstash/filmstash/database"
	"github.com/filmstash/filmstash/database/model"
	"github.com/filmstash/filmstash/logger"
	"github.com/filmstash/filmstash/util/random"
	"github.com/filmstash/filmstash/web"
	"github.com/filmstash/filmstash/web/service"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}

	server := web.NewServer()
	err = server.Start()
	if err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			err = server.Start()
			if err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			if err := database.CloseDB(); err != nil {
				logger.Warning("close database err:", err)
			}
			logger.CloseLogger()
			return
		}
	}
}

func resetAdminPassword() {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	userService := service.UserService{}
	newPassword := random.Seq(10)
	err = userService.ResetPassword(model.PrimaryAdminID, newPassword)
	if err != nil {
		fmt.Println("reset admin password failed:", err)
		return
	}
	fmt.Println("admin password reset to:", newPassword)
}

func showSetting() {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	userService := service.UserService{}
	user, err := userService.GetUser(model.PrimaryAdminID)
	if err != nil {
		fmt.Println("get admin account failed:", err)
		return
	}
	fmt.Println("admin username:", user.Username)
	fmt.Println("listen:", config.GetListen())
	fmt.Println("port:", config.GetPort())
	fmt.Println("video folder:", config.GetVideoFolderPath())
}

func main() {
	_ = godotenv.Load()

	var reset bool
	var show bool

	rootCmd := &cobra.Command{
		Use:   config.GetName(),
		Short: "movie library web panel",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	settingCmd := &cobra.Command{
		Use:   "setting",
		Short: "inspect or reset panel settings",
		Run: func(cmd *cobra.Command, args []string) {
			if reset {
				resetAdminPassword()
			}
			if show {
				showSetting()
			}
		},
	}
	settingCmd.Flags().BoolVar(&reset, "reset", false, "reset the primary admin password")
	settingCmd.Flags().BoolVar(&show, "show", false, "show current settings")
	rootCmd.AddCommand(settingCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
