package main

import (
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/CaptianCoder/Imposter-good/internal/config"
	"github.com/CaptianCoder/Imposter-good/internal/server"
)

const releaseVersion = "1.0.0"

type flags struct {
	configPath    string
	host          string
	port          int
	publicURL     string
	redisAddr     string
	adminPassword string
}

func main() {
	cobra.CheckErr(newCmd().Execute())
}

func newCmd() *cobra.Command {
	f := &flags{}

	v := viper.New()
	v.SetEnvPrefix("IMPOSTER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "imposter-server",
		Short:         "Party imposter game server: one shared lobby over WebSocket.",
		Args:          cobra.ExactArgs(0),
		Version:       releaseVersion,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(f)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "configs/config.yaml", "path to config file (env: IMPOSTER_CONFIG)")
	fs.StringVar(&f.host, "host", "", "address to bind to, overrides config (env: IMPOSTER_HOST)")
	fs.IntVarP(&f.port, "port", "p", 0, "port to listen on, overrides config (env: IMPOSTER_PORT)")
	fs.StringVar(&f.publicURL, "public-url", "", "public join URL for the QR code (env: IMPOSTER_PUBLIC_URL)")
	fs.StringVar(&f.redisAddr, "redis-addr", "", "redis address for stats, overrides config (env: IMPOSTER_REDIS_ADDR)")
	fs.StringVar(&f.adminPassword, "admin-password", "", "admin password, overrides config (env: IMPOSTER_ADMIN_PASSWORD)")

	fs.VisitAll(func(fl *pflag.Flag) {
		_ = v.BindPFlag(fl.Name, fl)
		_ = v.BindEnv(fl.Name)
		if !fl.Changed && v.IsSet(fl.Name) {
			_ = fs.Set(fl.Name, v.GetString(fl.Name))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("imposter-server v{{.Version}}\n")

	return cmd
}

func run(f *flags) error {
	// 本地开发用 .env，缺失时忽略
	_ = godotenv.Load()

	cfg, err := config.Load(f.configPath)
	if err != nil {
		log.Printf("加载配置文件失败，使用默认配置: %v", err)
		cfg = config.Default()
	}

	// 命令行覆盖配置文件
	if f.host != "" {
		cfg.Server.Host = f.host
	}
	if f.port != 0 {
		cfg.Server.Port = f.port
	}
	if f.publicURL != "" {
		cfg.Server.PublicURL = f.publicURL
	}
	if f.redisAddr != "" {
		cfg.Redis.Addr = f.redisAddr
	}
	if f.adminPassword != "" {
		cfg.Game.AdminPassword = f.adminPassword
	}

	srv, err := server.NewServer(cfg)
	if err != nil {
		return err
	}

	// 优雅关闭：等待进行中的回合结束
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("正在关闭服务器...")
		srv.GracefulShutdown(cfg.Game.ShutdownTimeoutDuration())
		os.Exit(0)
	}()

	log.Println("🎮 卧底游戏服务器启动中...")
	return srv.Start()
}
